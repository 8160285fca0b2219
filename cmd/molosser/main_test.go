package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestReportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"fatal diagnostics", errFatalDiagnostics, ""},
		{"wrapped fatal diagnostics", fmt.Errorf("lower: %w", errFatalDiagnostics), ""},
		{"command failure", errors.New("open tree cache: denied"), "Error: open tree cache: denied\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tt.err)
			if got := buf.String(); got != tt.want {
				t.Errorf("reportError() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootSilencesCobraErrors(t *testing.T) {
	if !rootCmd.SilenceErrors {
		t.Fatal("root command must leave error printing to main")
	}
}
