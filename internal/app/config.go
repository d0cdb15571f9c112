package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"cascade-ca/internal/sims/cascade"

	"gopkg.in/yaml.v3"
)

// ViewerConfig holds the interactive viewer settings.
type ViewerConfig struct {
	Sim            string `yaml:"sim"`
	Scale          int    `yaml:"scale"`
	TPS            int    `yaml:"tps"`
	StepsPerSecond int    `yaml:"steps_per_second"`
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	Seed           int64  `yaml:"seed"`
}

// Config represents the command-line and config-file parameters shared by
// the binaries.
type Config struct {
	ConfigFile string `yaml:"-"`

	Input    string `yaml:"input"`
	Steps    int    `yaml:"steps"`
	MaxSync  int    `yaml:"max_sync"`
	Chart    string `yaml:"chart"`
	LogLevel string `yaml:"log_level"`

	Viewer ViewerConfig `yaml:"viewer"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Input:    "-",
		Steps:    100,
		MaxSync:  cascade.DefaultMaxSyncSteps,
		LogLevel: "info",
		Viewer: ViewerConfig{
			Sim:            "cascade",
			Scale:          24,
			TPS:            60,
			StepsPerSecond: 8,
			Width:          10,
			Height:         10,
			Seed:           42,
		},
	}
}

// Bind attaches the solver parameters to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML config file")
	fs.StringVar(&c.Input, "input", c.Input, "grid file, - for stdin")
	fs.IntVar(&c.Steps, "steps", c.Steps, "steps counted for the flash total")
	fs.IntVar(&c.MaxSync, "max-sync", c.MaxSync, "give up synchronizing after this many steps")
	fs.StringVar(&c.Chart, "chart", c.Chart, "write a flash history PNG to this path")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// BindViewer attaches the viewer parameters to the provided FlagSet.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML config file")
	fs.StringVar(&c.Input, "input", "", "grid file to display instead of a random grid")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.Viewer.Sim, "sim", c.Viewer.Sim, "simulation to run")
	fs.IntVar(&c.Viewer.Scale, "scale", c.Viewer.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Viewer.TPS, "tps", c.Viewer.TPS, "frames per second")
	fs.IntVar(&c.Viewer.StepsPerSecond, "sps", c.Viewer.StepsPerSecond, "simulation steps per second")
	fs.IntVar(&c.Viewer.Width, "w", c.Viewer.Width, "random grid width")
	fs.IntVar(&c.Viewer.Height, "h", c.Viewer.Height, "random grid height")
	fs.Int64Var(&c.Viewer.Seed, "seed", c.Viewer.Seed, "seed for simulation reset")
}

// Load applies c.ConfigFile, if any, underneath the flags that were set
// explicitly on fs, then validates the result.
func (c *Config) Load(fs *flag.FlagSet) error {
	if c.ConfigFile != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })

		data, err := os.ReadFile(c.ConfigFile)
		if err != nil {
			return fmt.Errorf("app: read config: %w", err)
		}
		if err := c.Overlay(data); err != nil {
			return err
		}
		for name, v := range explicit {
			if err := fs.Set(name, v); err != nil {
				return fmt.Errorf("app: reapply -%s: %w", name, err)
			}
		}
	}
	return c.Validate()
}

// Overlay applies YAML settings onto c.
func (c *Config) Overlay(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("app: parse config: %w", err)
	}
	return nil
}

// Validate reports settings that cannot run.
func (c *Config) Validate() error {
	var errs []error
	if c.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps must be >= 0, got %d", c.Steps))
	}
	if c.MaxSync <= 0 {
		errs = append(errs, fmt.Errorf("max_sync must be > 0, got %d", c.MaxSync))
	}
	if c.Viewer.Scale <= 0 {
		errs = append(errs, fmt.Errorf("viewer.scale must be > 0, got %d", c.Viewer.Scale))
	}
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewer size must be positive, got %dx%d", c.Viewer.Width, c.Viewer.Height))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("app: invalid config: %w", err)
	}
	return nil
}

// SimConfig renders the viewer settings in the registry's key/value form.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":        strconv.Itoa(c.Viewer.Width),
		"h":        strconv.Itoa(c.Viewer.Height),
		"seed":     strconv.FormatInt(c.Viewer.Seed, 10),
		"max_sync": strconv.Itoa(c.MaxSync),
	}
}
