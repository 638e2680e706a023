// Package config provides configuration management for uhexmgr.
// It reads settings from uhexmgr.ini using multiple search paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Config holds the CLI defaults read from uhexmgr.ini.
type Config struct {
	// Layout is the default composition layout: "sections" or "blocks".
	Layout string

	// Output is the default output file for the join command.
	Output string

	// OutputDir is the default directory the split command writes to.
	OutputDir string
}

// Load reads configuration from uhexmgr.ini in the following search order:
// 1. Current directory (./uhexmgr.ini)
// 2. $UHEXMGR directory ($UHEXMGR/uhexmgr.ini)
// 3. Home directory (~/uhexmgr.ini)
// A missing file is not an error; the built-in defaults apply.
func Load() (*Config, error) {
	cfg := &Config{
		Layout:    "sections",
		Output:    "universal.hex",
		OutputDir: ".",
	}

	// Build list of paths to search
	var searchPaths []string
	searchPaths = append(searchPaths, filepath.Join(".", "uhexmgr.ini"))
	if uhexDir := os.Getenv("UHEXMGR"); uhexDir != "" {
		searchPaths = append(searchPaths, filepath.Join(uhexDir, "uhexmgr.ini"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, "uhexmgr.ini"))
	}

	var iniFile *ini.File
	for _, path := range searchPaths {
		if _, statErr := os.Stat(path); statErr == nil {
			f, err := ini.Load(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			iniFile = f
			break
		}
	}
	if iniFile == nil {
		return cfg, nil
	}

	section := iniFile.Section("DEFAULT")
	cfg.Layout = section.Key("layout").In(cfg.Layout, []string{"sections", "blocks"})
	cfg.Output = section.Key("output").MustString(cfg.Output)
	cfg.OutputDir = section.Key("output_dir").MustString(cfg.OutputDir)

	return cfg, nil
}

// Blocks reports whether the configured default layout is the block
// layout.
func (c *Config) Blocks() bool {
	return c.Layout == "blocks"
}
