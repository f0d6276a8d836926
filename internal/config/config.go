package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHistoryBackend  = "file"
	DefaultHistoryLimit    = 50
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
	FileName               = ".physcalc.yaml"
)

type Config struct {
	DataDir string        `yaml:"data_dir"`
	History HistoryConfig `yaml:"history"`
	Server  ServerConfig  `yaml:"server"`
	TUI     TUIConfig     `yaml:"tui"`
}

type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
	// Backend is "file" or "sqlite".
	Backend string `yaml:"backend"`
	Limit   int    `yaml:"limit"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type TUIConfig struct {
	AltScreen bool `yaml:"alt_screen"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		History: HistoryConfig{
			Enabled: true,
			Backend: DefaultHistoryBackend,
			Limit:   DefaultHistoryLimit,
		},
		Server: ServerConfig{
			Addr:            DefaultAddr,
			CORSOrigins:     []string{"http://localhost:3000"},
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		TUI: TUIConfig{AltScreen: true},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".physcalc"
	}
	return filepath.Join(home, ".physcalc")
}

// DefaultPath is $HOME/.physcalc.yaml, or the working directory when the
// home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads a YAML config over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
