// Package config handles extraction tool configuration.
package config

import (
	"fmt"
	"runtime"

	"github.com/MalekBael/FFXIV-LGB-Parser/pkg/lgb"
)

// Config holds all tool settings.
type Config struct {
	Decode  DecodeConfig  `yaml:"decode"`
	Export  ExportConfig  `yaml:"export"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// DecodeConfig holds decoder options.
type DecodeConfig struct {
	// Rotation selects how object rotations are read: "quaternion" or
	// "euler". Older layout exports stored three Euler components.
	Rotation string `yaml:"rotation"`
}

// ExportConfig holds output rendering settings.
type ExportConfig struct {
	Pretty    bool   `yaml:"pretty"`     // indent JSON output
	OutputDir string `yaml:"output_dir"` // batch export target, empty for stdout
}

// BatchConfig holds batch extraction settings.
type BatchConfig struct {
	Workers int    `yaml:"workers"` // concurrent decodes, 0 = NumCPU
	Pattern string `yaml:"pattern"` // file glob matched against base names
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Decode: DecodeConfig{
			Rotation: "quaternion",
		},
		Export: ExportConfig{
			Pretty:    false,
			OutputDir: "",
		},
		Batch: BatchConfig{
			Workers: runtime.NumCPU(),
			Pattern: "*.lgb",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DecodeOptions converts the decode section into parser options.
func (c *Config) DecodeOptions() (lgb.Options, error) {
	switch c.Decode.Rotation {
	case "", "quaternion":
		return lgb.Options{Rotation: lgb.RotationQuaternion}, nil
	case "euler":
		return lgb.Options{Rotation: lgb.RotationEuler}, nil
	default:
		return lgb.Options{}, fmt.Errorf("unknown rotation format %q (want quaternion or euler)", c.Decode.Rotation)
	}
}
