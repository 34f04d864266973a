package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// defaultInput is the workbook converted when no argument is given.
const defaultInput = "황금경로.xlsx"

// AppCfg holds CLI settings that may come from a YAML file.
type AppCfg struct {
	Input        string   `yaml:"input"`
	Output       string   `yaml:"output"`
	RoundNumbers bool     `yaml:"round_numbers"`
	NAValues     []string `yaml:"na_values,omitempty"`
	LogLevel     string   `yaml:"log_level"`
}

// Default fills a with the reference settings.
func (a *AppCfg) Default() *AppCfg {
	a.Input = defaultInput
	a.Output = ""
	a.RoundNumbers = false
	a.NAValues = nil
	a.LogLevel = zapcore.InfoLevel.String()

	return a
}

func (a *AppCfg) validate() error {
	if a.Input == "" {
		return errors.New("input must not be empty")
	}
	if _, err := zapcore.ParseLevel(a.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// LoadConfig reads the YAML file at path over the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (*AppCfg, error) {
	cfg := new(AppCfg).Default()
	if path == "" {
		return cfg, cfg.validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
