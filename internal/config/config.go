// Package config loads and validates mdtidy configuration. The core
// formatter assumes a validated config; everything checked here never
// needs re-checking downstream.
package config

import (
	"fmt"
	"os"

	"github.com/samsaffron/mdtidy/internal/markdown"
	"github.com/spf13/viper"
)

// FileName is the config file mdtidy looks for in the working directory
// and the home directory.
const FileName = ".mdtidy.toml"

type Config struct {
	Tables   TablesConfig   `mapstructure:"tables"`
	Headings HeadingsConfig `mapstructure:"headings"`
	Lists    ListsConfig    `mapstructure:"lists"`
	Code     CodeConfig     `mapstructure:"code"`
}

type TablesConfig struct {
	Align          bool `mapstructure:"align"`            // Reflow and align table columns
	MinColumnWidth int  `mapstructure:"min_column_width"` // Minimum rendered column width
	Padding        int  `mapstructure:"padding"`          // Spaces on each side of cell content
}

type HeadingsConfig struct {
	BlankLinesBefore int  `mapstructure:"blank_lines_before"`
	BlankLinesAfter  int  `mapstructure:"blank_lines_after"`
	SpaceAfterHash   bool `mapstructure:"space_after_hash"`
}

type ListsConfig struct {
	IndentSize       int    `mapstructure:"indent_size"`
	Marker           string `mapstructure:"marker"` // "-", "*" or "+"
	NormalizeNumbers bool   `mapstructure:"normalize_numbers"`
}

type CodeConfig struct {
	EnsureLanguageTag bool   `mapstructure:"ensure_language_tag"`
	FenceStyle        string `mapstructure:"fence_style"` // "```" or "~~~"
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")

	v.SetDefault("tables.align", true)
	v.SetDefault("tables.min_column_width", 3)
	v.SetDefault("tables.padding", 1)
	v.SetDefault("headings.blank_lines_before", 2)
	v.SetDefault("headings.blank_lines_after", 1)
	v.SetDefault("headings.space_after_hash", true)
	v.SetDefault("lists.indent_size", 2)
	v.SetDefault("lists.marker", "-")
	v.SetDefault("lists.normalize_numbers", true)
	v.SetDefault("code.ensure_language_tag", false)
	v.SetDefault("code.fence_style", "```")

	return v
}

// Load reads configuration from path, or when path is empty, from
// .mdtidy.toml in the working directory then the home directory. A
// missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".mdtidy")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	if err := newViper().Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("built-in config defaults are broken: %v", err))
	}
	return &cfg
}

// Validate checks the field values the core relies on.
func (c *Config) Validate() error {
	if c.Tables.MinColumnWidth < 0 {
		return fmt.Errorf("tables.min_column_width must be non-negative, got %d", c.Tables.MinColumnWidth)
	}
	if c.Tables.Padding < 0 {
		return fmt.Errorf("tables.padding must be non-negative, got %d", c.Tables.Padding)
	}
	if c.Headings.BlankLinesBefore < 0 {
		return fmt.Errorf("headings.blank_lines_before must be non-negative, got %d", c.Headings.BlankLinesBefore)
	}
	if c.Headings.BlankLinesAfter < 0 {
		return fmt.Errorf("headings.blank_lines_after must be non-negative, got %d", c.Headings.BlankLinesAfter)
	}
	if c.Lists.IndentSize < 1 {
		return fmt.Errorf("lists.indent_size must be positive, got %d", c.Lists.IndentSize)
	}
	switch c.Lists.Marker {
	case "-", "*", "+":
	default:
		return fmt.Errorf("lists.marker must be one of \"-\", \"*\" or \"+\", got %q", c.Lists.Marker)
	}
	switch c.Code.FenceStyle {
	case "```", "~~~":
	default:
		return fmt.Errorf("code.fence_style must be \"```\" or \"~~~\", got %q", c.Code.FenceStyle)
	}
	return nil
}

// Markdown converts to the core pipeline's config value.
func (c *Config) Markdown() markdown.Config {
	return markdown.Config{
		Tables: markdown.TableConfig{
			Align:          c.Tables.Align,
			MinColumnWidth: c.Tables.MinColumnWidth,
			Padding:        c.Tables.Padding,
		},
		Headings: markdown.HeadingConfig{
			BlankLinesBefore: c.Headings.BlankLinesBefore,
			BlankLinesAfter:  c.Headings.BlankLinesAfter,
			SpaceAfterHash:   c.Headings.SpaceAfterHash,
		},
		Lists: markdown.ListConfig{
			IndentSize:       c.Lists.IndentSize,
			Marker:           c.Lists.Marker,
			NormalizeNumbers: c.Lists.NormalizeNumbers,
		},
		Code: markdown.CodeConfig{
			EnsureLanguageTag: c.Code.EnsureLanguageTag,
			FenceStyle:        c.Code.FenceStyle,
		},
	}
}

// defaultTOML is written by `mdtidy config init`.
const defaultTOML = `[tables]
align = true
min_column_width = 3
padding = 1

[headings]
blank_lines_before = 2
blank_lines_after = 1
space_after_hash = true

[lists]
indent_size = 2
marker = "-"
normalize_numbers = true

[code]
ensure_language_tag = false
fence_style = "` + "```" + `"
`

// WriteDefault writes the default configuration file to path.
func WriteDefault(path string) error {
	if err := os.WriteFile(path, []byte(defaultTOML), 0644); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", path, err)
	}
	return nil
}
