package imwidgets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rprtr258/imwidgets/internal/ctxlog"
)

// Config holds server settings. Zero fields are not defaulted, start from
// DefaultConfig.
type Config struct {
	Addr string `yaml:"addr"`
	// Debug enables debug logging, in-page callback errors and page reload
	// when the server restarts.
	Debug     bool   `yaml:"debug"`
	FPS       int    `yaml:"fps"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func DefaultConfig() Config {
	return Config{
		Addr:      ":4040",
		FPS:       20,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.FPS < 1 || c.FPS > 1000 {
		return fmt.Errorf("fps must be in [1, 1000], got %d", c.FPS)
	}
	if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}
