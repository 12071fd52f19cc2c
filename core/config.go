package core

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "demos.config.yml"
	DefaultOutputDir  = "./cache"
	DefaultPort       = 8080
)

type Config struct {
	TemplatesDir string `yaml:"templatesDir"`
	OutputDir    string `yaml:"outputDir"`
	DebugHeaders bool   `yaml:"debugHeaders"`
	DebugLogs    bool   `yaml:"debugLogs"`
	Minify       bool   `yaml:"minify"`
	Port         int    `yaml:"port"`
}

func DefaultConfig() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Port:      DefaultPort,
	}
}

// LoadConfig reads the YAML config at path. A missing or unreadable file
// yields the defaults. A relative templatesDir is resolved against the
// directory holding the config file.
func LoadConfig(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.TemplatesDir != "" && !filepath.IsAbs(cfg.TemplatesDir) {
		base, err := filepath.Abs(filepath.Dir(path))
		if err == nil {
			cfg.TemplatesDir = filepath.Join(base, cfg.TemplatesDir)
		}
	}

	return cfg
}

// ApplyEnv overlays DEMOS_* environment variables onto cfg.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("DEMOS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := os.Getenv("DEMOS_TEMPLATES_DIR"); v != "" {
		if abs, err := filepath.Abs(v); err == nil {
			cfg.TemplatesDir = abs
		}
	}
	cfg.DebugLogs = envBool("DEMOS_DEBUG_LOGS", cfg.DebugLogs)
	cfg.DebugHeaders = envBool("DEMOS_DEBUG_HEADERS", cfg.DebugHeaders)
	cfg.Minify = envBool("DEMOS_MINIFY", cfg.Minify)
	return cfg
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
