package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/webdev100/internal/llm"
)

// Config is the complete program configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
	Content ContentConfig `yaml:"content"`
	LLM     llm.Config    `yaml:"llm"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `yaml:"level"`
	// Mode is "dev" or "prod".
	Mode string `yaml:"mode"`
	// File receives TUI logs. Empty keeps the TUI silent.
	File string `yaml:"file"`
}

// ServerConfig controls `webdev100 serve`.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	Tracing        bool     `yaml:"tracing"`
	// OTLPEndpoint sends traces to a collector instead of stderr.
	OTLPEndpoint    string        `yaml:"otlp_endpoint"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ContentConfig points at an on-disk lesson directory. Empty uses the
// lessons compiled into the binary.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
			Mode:  "dev",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8100",
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
				"http://127.0.0.1:5173",
			},
			ShutdownTimeout: 5 * time.Second,
		},
		LLM: llm.DefaultConfig(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/webdev100/config.yaml, falling back
// to ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "webdev100", "config.yaml")
}

// Load reads path over the defaults and then applies environment
// overrides. A missing file is not an error; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := cfg.decode(data); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnvOverrides layers WEBDEV100_* variables, then the LLM variables
// and finally vendor API key discovery.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("WEBDEV100_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("WEBDEV100_LOG_MODE"); v != "" {
		c.Log.Mode = v
	}
	if v := os.Getenv("WEBDEV100_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("WEBDEV100_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("WEBDEV100_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("WEBDEV100_TRACING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Server.Tracing = b
		}
	}
	if v := os.Getenv("WEBDEV100_OTLP_ENDPOINT"); v != "" {
		c.Server.OTLPEndpoint = v
	}
	if v := os.Getenv("WEBDEV100_CONTENT_DIR"); v != "" {
		c.Content.Dir = v
	}

	c.LLM = llm.ConfigFromEnv(c.LLM)
	c.LLM, _ = llm.DiscoverConfig(c.LLM)
}

// Validate reports configuration that cannot work.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Log.Mode) {
	case "", "dev", "development", "prod", "production":
	default:
		errs = append(errs, fmt.Errorf("log.mode %q: want dev or prod", c.Log.Mode))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server.shutdown_timeout is negative"))
	}
	if err := c.LLM.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("llm: %w", err))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
