// Package config handles xpstool configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/xps-import/pkg/bonenames"
	"github.com/Faultbox/xps-import/pkg/xps"
)

// Config holds all tool settings.
type Config struct {
	Import  ImportConfig  `yaml:"import"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// ImportConfig holds decode settings.
type ImportConfig struct {
	FlipUV         bool   `yaml:"flip_uv"`
	ReverseWinding bool   `yaml:"reverse_winding"`
	BoneNaming     string `yaml:"bone_naming"` // default | mecanim
	Encoding       string `yaml:"encoding"`    // charmap name for stored strings
}

// ExportConfig holds glTF export settings.
type ExportConfig struct {
	Binary      bool   `yaml:"binary"` // .glb instead of .gltf
	DoubleSided bool   `yaml:"double_sided"`
	OutputDir   string `yaml:"output_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	Format  string `yaml:"format"` // console | json
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			FlipUV:         true,
			ReverseWinding: true,
			BoneNaming:     bonenames.Default.String(),
			Encoding:       DefaultEncoding,
		},
		Export: ExportConfig{
			Binary:      true,
			DoubleSided: false,
			OutputDir:   "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
			Format:  "console",
		},
	}
}

// DecodeOptions resolves the import section into decoder options.
func (c ImportConfig) DecodeOptions() (xps.Options, error) {
	cs, err := Charset(c.Encoding)
	if err != nil {
		return xps.Options{}, err
	}
	return xps.Options{
		FlipUV:         c.FlipUV,
		ReverseWinding: c.ReverseWinding,
		Charset:        cs,
	}, nil
}

// Naming resolves the bone naming convention.
func (c ImportConfig) Naming() (bonenames.Naming, error) {
	return bonenames.ParseNaming(c.BoneNaming)
}

// Validate checks every value that has a closed set of choices.
func (c *Config) Validate() error {
	if _, err := c.Import.DecodeOptions(); err != nil {
		return fmt.Errorf("import.encoding: %w", err)
	}
	if _, err := c.Import.Naming(); err != nil {
		return fmt.Errorf("import.bone_naming: %w", err)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	return nil
}
