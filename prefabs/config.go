package prefabs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/milk9111/magus/component"
	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the embedded configuration file.
const DefaultConfigName = "magus.yaml"

// Config is the runtime configuration read from magus.yaml.
type Config struct {
	Namespace      string          `yaml:"namespace"`
	ComplexVariant bool            `yaml:"complex_variant"`
	Fade           FadeConfig      `yaml:"fade"`
	Bindings       []BindingConfig `yaml:"bindings"`
	Log            LogConfig       `yaml:"log"`
	Watch          bool            `yaml:"watch"`
}

type FadeConfig struct {
	Ease string `yaml:"ease"`
	// Script names a tengo easing script under scripts/; it wins over Ease.
	Script string `yaml:"script"`
}

type BindingConfig struct {
	Action string `yaml:"action"`
	Key    string `yaml:"key"`
	Clip   string `yaml:"clip"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig mirrors the embedded magus.yaml.
// ParseConfig does not inherit Bindings: a file lists its own.
func DefaultConfig() Config {
	return Config{
		Namespace: "magus",
		Fade:      FadeConfig{Ease: "in_out_sine"},
		Bindings: []BindingConfig{
			{Action: "play_animation", Key: "R", Clip: "air_gather_hands"},
			{Action: "push", Key: "F", Clip: "air_push"},
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads a config file. A path that exists on disk is read
// directly; otherwise name is looked up like any other prefab.
func LoadConfig(name string) (Config, error) {
	if name == "" {
		name = DefaultConfigName
	}
	data, err := os.ReadFile(name)
	if err != nil {
		data, err = Load(name)
	}
	if err != nil {
		return Config{}, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig, minus its bindings, and
// validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	cfg.Bindings = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("prefabs: unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields that startup depends on.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Namespace) == "" {
		errs = append(errs, errors.New("namespace is required"))
	}
	if c.Fade.Script == "" {
		if _, err := component.ParseEase(c.Fade.Ease); err != nil {
			errs = append(errs, err)
		}
	}
	seen := make(map[string]bool, len(c.Bindings))
	for i, b := range c.Bindings {
		if b.Action == "" || b.Clip == "" {
			errs = append(errs, fmt.Errorf("binding %d: action and clip are required", i))
			continue
		}
		if seen[b.Action] {
			errs = append(errs, fmt.Errorf("binding %d: duplicate action %q", i, b.Action))
		}
		seen[b.Action] = true
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("prefabs: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Easing builds the configured fade curve.
func (c Config) Easing() (component.Easing, error) {
	if c.Fade.Script != "" {
		src, err := LoadScript(c.Fade.Script)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s: %w", c.Fade.Script, err)
		}
		return component.CompileScriptEase(c.Fade.Script, src)
	}
	return component.ParseEase(c.Fade.Ease)
}
