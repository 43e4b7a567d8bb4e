// Package config handles obj2js configuration loading and management.
package config

import (
	"github.com/manvscode/obj2js/pkg/jsexport"
	"github.com/manvscode/obj2js/pkg/obj"
)

// Config holds all converter settings.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Parse   ParseConfig   `yaml:"parse"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig holds JavaScript output settings.
type ConvertConfig struct {
	VariableName     string `yaml:"variable_name"` // Empty = input file name
	ExcludeTexCoords bool   `yaml:"exclude_texcoords"`
	ExcludeNormals   bool   `yaml:"exclude_normals"`
	Precision        int    `yaml:"precision"`
	Width            int    `yaml:"width"`
}

// ParseConfig holds OBJ parsing settings.
type ParseConfig struct {
	Strict          bool   `yaml:"strict"`
	SkipMalformed   bool   `yaml:"skip_malformed"`
	ExactDirectives bool   `yaml:"exact_directives"`
	Encoding        string `yaml:"encoding"`
	Verbose         bool   `yaml:"verbose"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Precision: 10,
			Width:     16,
		},
		Parse: ParseConfig{
			Encoding: "utf-8",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ParseOptions converts the parse settings to loader options.
func (c *Config) ParseOptions() obj.Options {
	return obj.Options{
		Verbose:         c.Parse.Verbose,
		Strict:          c.Parse.Strict,
		SkipMalformed:   c.Parse.SkipMalformed,
		ExactDirectives: c.Parse.ExactDirectives,
		Encoding:        c.Parse.Encoding,
	}
}

// ExportOptions converts the output settings to writer options.
// An empty variable name falls back to the input file name.
func (c *Config) ExportOptions(inputPath string) jsexport.Options {
	name := c.Convert.VariableName
	if name == "" {
		name = jsexport.VariableName(inputPath)
	}
	return jsexport.Options{
		VariableName:     name,
		ExcludeTexCoords: c.Convert.ExcludeTexCoords,
		ExcludeNormals:   c.Convert.ExcludeNormals,
		Precision:        c.Convert.Precision,
		Width:            c.Convert.Width,
	}
}
