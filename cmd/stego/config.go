package main

import (
	"errors"
	"fmt"
	"os"

	stego "github.com/yyyoichi/stego_lsb"
	"github.com/yyyoichi/stego_lsb/imageio"
	"gopkg.in/yaml.v3"
)

// Config is read from the file given by --config. Flags override it.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Codec  CodecConfig  `yaml:"codec"`
	Output OutputConfig `yaml:"output"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type CodecConfig struct {
	Shuffle bool  `yaml:"shuffle"`
	Seed    int64 `yaml:"seed"`
	// Passphrase derives the shuffle seed. It cannot be combined with Shuffle.
	Passphrase string `yaml:"passphrase"`
	Golay      bool   `yaml:"golay"`
}

type OutputConfig struct {
	// Format is used when the output path has no known extension.
	Format imageio.Format `yaml:"format"`
}

func DefaultConfig() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Format: imageio.PNG},
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !imageio.Lossless(c.Output.Format) {
		return fmt.Errorf("output.format: %w: %q", imageio.ErrLossyFormat, c.Output.Format)
	}
	if c.Codec.Shuffle && c.Codec.Passphrase != "" {
		return errors.New("codec.seed and codec.passphrase are mutually exclusive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// Options converts the codec section into codec options.
func (c Config) Options() []stego.Option {
	var opts []stego.Option
	if c.Codec.Shuffle {
		opts = append(opts, stego.WithShuffle(c.Codec.Seed))
	}
	if c.Codec.Passphrase != "" {
		opts = append(opts, stego.WithPassphrase(c.Codec.Passphrase))
	}
	if c.Codec.Golay {
		opts = append(opts, stego.WithGolay())
	}
	return opts
}
