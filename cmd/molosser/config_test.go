package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"molosser/internal/diagfmt"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, configFileName)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok, err := findConfig(nested)
	if err != nil || !ok {
		t.Fatalf("findConfig = %q, %v, %v", got, ok, err)
	}
	wantAbs, _ := filepath.Abs(want)
	if got != wantAbs {
		t.Errorf("findConfig = %q, want %q", got, wantAbs)
	}
}

func TestApplyConfigFileOverridesDefinedKeysOnly(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[lower]
jobs = 4

[diagnostics]
format = "json"
notes = false
`)
	s := defaultSettings()
	if err := s.applyConfigFile(path); err != nil {
		t.Fatalf("applyConfigFile: %v", err)
	}
	want := defaultSettings()
	want.Jobs = 4
	want.Format = diagfmt.FormatJSON
	want.Notes = false
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyConfigFileRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", "[lower]\nthreads = 2\n", "unknown keys: lower.threads"},
		{"negative jobs", "[lower]\njobs = -1\n", "[lower].jobs"},
		{"negative max", "[diagnostics]\nmax = -5\n", "[diagnostics].max"},
		{"bad format", "[diagnostics]\nformat = \"sarif\"\n", "[diagnostics].format"},
		{"bad color", "[diagnostics]\ncolor = \"rainbow\"\n", "[diagnostics].color"},
		{"bad toml", "[lower\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			s := defaultSettings()
			err := s.applyConfigFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyFlagsWinsOverFile(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("jobs", 0, "")
	cmd.Flags().String("diag-format", "pretty", "")
	cmd.Flags().String("color", "auto", "")
	cmd.Flags().Int("max-diagnostics", 100, "")
	if err := cmd.Flags().Set("jobs", "2"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("diag-format", "pretty"); err != nil {
		t.Fatal(err)
	}

	s := defaultSettings()
	s.Jobs = 8
	s.Format = diagfmt.FormatJSON
	s.MaxDiagnostics = 7
	if err := s.applyFlags(cmd); err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if s.Jobs != 2 || s.Format != diagfmt.FormatPretty {
		t.Errorf("explicit flags not applied: %+v", s)
	}
	if s.MaxDiagnostics != 7 || s.Color != "auto" {
		t.Errorf("unset flags must keep file values: %+v", s)
	}
}

func TestColorEnabled(t *testing.T) {
	for mode, want := range map[string]bool{"on": true, "always": true, "off": false, "never": false} {
		got, err := colorEnabled(mode, os.Stdout)
		if err != nil || got != want {
			t.Errorf("colorEnabled(%q) = %v, %v", mode, got, err)
		}
	}
	if _, err := colorEnabled("sometimes", os.Stdout); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}
