// Package app builds the command line programs that open a surface with nui.
package app

import (
	"fmt"
	"os"

	"dasa.cc/dlwin/internal/config"
	"dasa.cc/dlwin/nui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Program describes one command.
type Program struct {
	Use   string
	Short string
	// Defaults returns the configuration before the config file, the
	// environment and flags are applied.
	Defaults func() *config.Config
	// Scene returns what to draw; nil keeps a bare window open.
	Scene func() nui.Scene
}

type flags struct {
	configPath string
	verbose    bool

	library string
	width   int
	height  int
	title   string
	frames  int
	vsync   int
}

// Command returns the cobra command running p.
func Command(p Program) *cobra.Command {
	var f flags
	defaults := p.Defaults()

	cmd := &cobra.Command{
		Use:   p.Use,
		Short: p.Short,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError(cmd, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(f.verbose)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			defer logger.Sync() //nolint:errcheck

			cfg, err := resolve(cmd, p, &f)
			if err == nil {
				var scene nui.Scene
				if p.Scene != nil {
					scene = p.Scene()
				}
				err = runFunc(cfg, logger, scene)
			}
			if err != nil {
				logger.Error("exiting", zap.Error(err))
			}
			return err
		},
	}

	cmd.SetFlagErrorFunc(usageError)

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	fs.StringVar(&f.library, "lib", "", "path to the GLFW shared library (also $"+config.LibraryEnv+")")
	fs.IntVar(&f.width, "width", defaults.Width, "window width")
	fs.IntVar(&f.height, "height", defaults.Height, "window height")
	fs.StringVar(&f.title, "title", defaults.Title, "window title")
	fs.IntVar(&f.frames, "frames", defaults.Frames, "stop after this many frames; 0 runs until closed")
	fs.IntVar(&f.vsync, "vsync", defaults.VSync, "swap interval")
	return cmd
}

// usageError prints err to the command's stderr. Errors from RunE are
// logged there instead, so cobra's own printing stays silenced.
func usageError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln("Error:", err)
	cmd.PrintErrf("Run '%s --help' for usage.\n", cmd.CommandPath())
	return err
}

// resolve layers defaults, the config file, the environment and flags that
// were set, in that order.
func resolve(cmd *cobra.Command, p Program, f *flags) (*config.Config, error) {
	cfg := p.Defaults()
	if err := config.Load(f.configPath, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	fs := cmd.Flags()
	if fs.Changed("lib") {
		cfg.Library = f.library
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("title") {
		cfg.Title = f.title
	}
	if fs.Changed("frames") {
		cfg.Frames = f.frames
	}
	if fs.Changed("vsync") {
		cfg.VSync = f.vsync
	}
	return cfg, cfg.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// runFunc is replaced in tests.
var runFunc = run

func run(cfg *config.Config, logger *zap.Logger, scene nui.Scene) error {
	w, done, err := openWindowing(cfg, logger)
	if err != nil {
		return err
	}
	defer done()

	return nui.Run(w, nui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Title:        cfg.Title,
		Major:        cfg.GL.Major,
		Minor:        cfg.GL.Minor,
		Core:         cfg.GL.Core,
		SwapInterval: cfg.VSync,
		FrameLimit:   cfg.Frames,
		Logger:       logger,
	}, scene)
}

// Main runs cmd and exits non-zero on error. The calling goroutine must be
// locked to the main thread.
func Main(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
