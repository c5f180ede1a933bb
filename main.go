package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iburimskiy/neon-visualizer/internal/config"
	"github.com/iburimskiy/neon-visualizer/internal/game"
)

var opts = config.Default()

func main() {
	rootCmd := &cobra.Command{
		Use:   "neonviz",
		Short: "Neon audio visualizer",
		Long: `neonviz listens to the microphone (or plays an audio file) and draws a
retro neon visualization of its spectrum, cycling through radial bars, an
oscilloscope, a particle field, orbiting polygons and a tunnel.

Use --source demo to run without any audio hardware.`,
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.Source, "source", opts.Source, "Audio source: mic, file or demo")
	flags.StringVar(&opts.File, "file", "", "Audio file to play with --source file (wav, mp3, flac); prompts when empty")
	flags.IntVar(&opts.Width, "width", opts.Width, "Surface width in pixels")
	flags.IntVar(&opts.Height, "height", opts.Height, "Surface height in pixels")
	flags.BoolVar(&opts.Fullscreen, "fullscreen", false, "Size the surface to the monitor and go fullscreen")
	flags.Int64Var(&opts.Seed, "seed", 0, "Particle random seed (0 picks one from the clock)")
	flags.BoolVar(&opts.Debug, "debug", false, "Log spectrum statistics every second")
	flags.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file, rotating it as it grows")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if opts.LogFile != "" {
		logger := &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
		defer logger.Close()
		log.SetOutput(logger)
	}

	if opts.Fullscreen {
		opts.Width, opts.Height = ebiten.Monitor().Size()
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("Neon Visualizer - Enter: start, Esc/Q: quit")
	ebiten.SetFullscreen(opts.Fullscreen)
	ebiten.SetTPS(config.TargetFPS)

	g := game.New(opts, game.OpenSource(opts))
	defer func() {
		if err := g.Close(); err != nil {
			log.Printf("closing audio source: %v", err)
		}
	}()

	log.Printf("neonviz starting: source=%s size=%dx%d", opts.Source, opts.Width, opts.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		if !g.Running() {
			game.ReportStartupError(err)
			return fmt.Errorf("startup failed: %w", err)
		}
		return err
	}
	return nil
}
