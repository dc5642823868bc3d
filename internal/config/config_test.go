package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if !cfg.Tables.Align {
		t.Error("tables.align should default to true")
	}
	if cfg.Tables.MinColumnWidth != 3 {
		t.Errorf("min_column_width default = %d, want 3", cfg.Tables.MinColumnWidth)
	}
	if cfg.Headings.BlankLinesBefore != 2 || cfg.Headings.BlankLinesAfter != 1 {
		t.Errorf("heading blank line defaults wrong: %+v", cfg.Headings)
	}
	if cfg.Lists.Marker != "-" || cfg.Lists.IndentSize != 2 {
		t.Errorf("list defaults wrong: %+v", cfg.Lists)
	}
	if cfg.Code.FenceStyle != "```" {
		t.Errorf("fence_style default = %q", cfg.Code.FenceStyle)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mdtidy.toml")
	content := `[lists]
marker = "*"
indent_size = 4

[tables]
padding = 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Lists.Marker != "*" || cfg.Lists.IndentSize != 4 {
		t.Errorf("file values not applied: %+v", cfg.Lists)
	}
	if cfg.Tables.Padding != 2 {
		t.Errorf("tables.padding = %d, want 2", cfg.Tables.Padding)
	}
	// Unset keys keep defaults.
	if !cfg.Tables.Align || cfg.Headings.BlankLinesBefore != 2 {
		t.Errorf("defaults lost for unset keys: %+v", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicit missing config file should error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad marker",
			mutate:  func(c *Config) { c.Lists.Marker = "x" },
			wantErr: "lists.marker",
		},
		{
			name:    "zero indent",
			mutate:  func(c *Config) { c.Lists.IndentSize = 0 },
			wantErr: "lists.indent_size",
		},
		{
			name:    "bad fence style",
			mutate:  func(c *Config) { c.Code.FenceStyle = "''''" },
			wantErr: "code.fence_style",
		},
		{
			name:    "negative padding",
			mutate:  func(c *Config) { c.Tables.Padding = -1 },
			wantErr: "tables.padding",
		},
		{
			name:    "negative blank lines",
			mutate:  func(c *Config) { c.Headings.BlankLinesAfter = -1 },
			wantErr: "headings.blank_lines_after",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".mdtidy.toml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("generated config differs from defaults:\n%+v\n%+v", cfg, Default())
	}
}

func TestMarkdownConversion(t *testing.T) {
	cfg := Default()
	cfg.Lists.Marker = "+"
	core := cfg.Markdown()
	if core.Lists.Marker != "+" || core.Tables.MinColumnWidth != 3 {
		t.Errorf("conversion lost values: %+v", core)
	}
}
