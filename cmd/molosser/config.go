package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"molosser/internal/diagfmt"
)

const configFileName = "molosser.toml"

type fileConfig struct {
	Lower       lowerConfig       `toml:"lower"`
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
}

type lowerConfig struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

type diagnosticsConfig struct {
	Max    int    `toml:"max"`
	Format string `toml:"format"`
	Color  string `toml:"color"`
	Notes  bool   `toml:"notes"`
}

// settings are the effective options of a run: defaults, then
// molosser.toml, then explicit flags.
type settings struct {
	Jobs           int
	Cache          bool
	MaxDiagnostics int
	Format         diagfmt.Format
	Color          string
	Notes          bool
}

func defaultSettings() settings {
	return settings{
		MaxDiagnostics: 100,
		Format:         diagfmt.FormatPretty,
		Color:          "auto",
		Notes:          true,
	}
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// applyConfigFile decodes path and overrides the keys it defines.
func (s *settings) applyConfigFile(path string) error {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("lower", "jobs") {
		if cfg.Lower.Jobs < 0 {
			return fmt.Errorf("%s: [lower].jobs must not be negative", path)
		}
		s.Jobs = cfg.Lower.Jobs
	}
	if meta.IsDefined("lower", "cache") {
		s.Cache = cfg.Lower.Cache
	}
	if meta.IsDefined("diagnostics", "max") {
		if cfg.Diagnostics.Max < 0 {
			return fmt.Errorf("%s: [diagnostics].max must not be negative", path)
		}
		s.MaxDiagnostics = cfg.Diagnostics.Max
	}
	if meta.IsDefined("diagnostics", "format") {
		f, err := diagfmt.ParseFormat(cfg.Diagnostics.Format)
		if err != nil {
			return fmt.Errorf("%s: [diagnostics].format: %w", path, err)
		}
		s.Format = f
	}
	if meta.IsDefined("diagnostics", "color") {
		if _, err := colorEnabled(cfg.Diagnostics.Color, os.Stdout); err != nil {
			return fmt.Errorf("%s: [diagnostics].color: %w", path, err)
		}
		s.Color = cfg.Diagnostics.Color
	}
	if meta.IsDefined("diagnostics", "notes") {
		s.Notes = cfg.Diagnostics.Notes
	}
	return nil
}

// applyFlags overrides settings with the flags set on the command line.
func (s *settings) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("jobs") {
		if s.Jobs, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}
	if flags.Changed("cache") {
		if s.Cache, err = flags.GetBool("cache"); err != nil {
			return err
		}
	}
	if flags.Changed("max-diagnostics") {
		if s.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return err
		}
	}
	if flags.Changed("diag-format") {
		v, err := flags.GetString("diag-format")
		if err != nil {
			return err
		}
		if s.Format, err = diagfmt.ParseFormat(v); err != nil {
			return err
		}
	}
	if flags.Changed("color") {
		if s.Color, err = flags.GetString("color"); err != nil {
			return err
		}
	}
	if flags.Changed("with-notes") {
		if s.Notes, err = flags.GetBool("with-notes"); err != nil {
			return err
		}
	}
	return nil
}

// resolveSettings returns the effective settings and the config file used,
// if any.
func resolveSettings(cmd *cobra.Command) (settings, string, error) {
	s := defaultSettings()
	path, ok, err := findConfig(".")
	if err != nil {
		return s, "", err
	}
	if ok {
		if err := s.applyConfigFile(path); err != nil {
			return s, path, err
		}
	}
	if err := s.applyFlags(cmd); err != nil {
		return s, path, err
	}
	return s, path, nil
}
