package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/magus/ecs"
	"github.com/milk9111/magus/ecs/system"
	"github.com/milk9111/magus/prefabs"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	complex    bool
	watch      bool
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "magus",
		Short: "Player animation layers demo",
		Long:  "Runs a window with one local player; bound keys fade animation clips onto its layer.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.SilenceUsage = true
	addFlags(cmd, opts)

	return cmd
}

func addFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", prefabs.DefaultConfigName, "config file")
	cmd.Flags().BoolVar(&opts.complex, "complex", false, "use the complex/ clip variants")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload clips and easing scripts when they change on disk")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "log format (text|json)")
}

// loadConfig reads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command, opts *options) (prefabs.Config, error) {
	cfg, err := prefabs.LoadConfig(opts.configPath)
	if err != nil {
		return prefabs.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("complex") {
		cfg.ComplexVariant = opts.complex
	}
	if flags.Changed("watch") {
		cfg.Watch = opts.watch
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return prefabs.Config{}, err
	}
	return cfg, nil
}

func run(cfg prefabs.Config) error {
	logger := newLogger(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	lib, err := prefabs.LoadLibrary(prefabs.AnimationsFS())
	if err != nil {
		return fmt.Errorf("load animations: %w", err)
	}
	logger.Info("animation library loaded", "clips", lib.Len())

	ease, err := cfg.Easing()
	if err != nil {
		return err
	}

	layers := ecs.NewLayerRegistry()
	trigger, err := system.NewTriggerBinding(system.TriggerConfig{
		Namespace:      cfg.Namespace,
		ComplexVariant: cfg.ComplexVariant,
		Ease:           ease,
	}, lib, layers, logger)
	if err != nil {
		return err
	}

	game, err := NewGame(ecs.NewWorld(), layers, cfg.Bindings, logger)
	if err != nil {
		return err
	}
	if err := system.Bind(game, layers, trigger, bindings(cfg.Bindings), logger); err != nil {
		return err
	}

	if cfg.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.AnimationsDir(), prefabs.ScriptsDir())
		if err != nil {
			return fmt.Errorf("watch prefabs: %w", err)
		}
		defer watcher.Close()
		game.reload = newReloader(watcher, trigger, cfg, logger)
		logger.Info("watching prefabs", "dir", prefabs.AnimationsDir())
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("magus")
	return ebiten.RunGame(game)
}

func bindings(cfgs []prefabs.BindingConfig) []system.Binding {
	out := make([]system.Binding, 0, len(cfgs))
	for _, b := range cfgs {
		out = append(out, system.Binding{Action: b.Action, Clip: b.Clip})
	}
	return out
}
