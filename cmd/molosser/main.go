package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"molosser/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "molosser",
	Short: "Lower parsed markup templates into JSX render trees",
	Long: `molosser takes the parse tree of a markup template, lowers it into a
JSX render tree and hoists the template's script content to module level.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errFatalDiagnostics makes the process exit non-zero once the diagnostics
// have been printed.
var errFatalDiagnostics = errors.New("fatal diagnostics reported")

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lowerCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics kept per file (0=unlimited)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "events kept in ring mode")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write Go runtime trace to file")

	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints a command failure. Fatal diagnostics were already
// printed by the command, so only the exit status carries them.
func reportError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errFatalDiagnostics) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves a --color mode for output written to f.
func colorEnabled(mode string, f *os.File) (bool, error) {
	switch strings.ToLower(mode) {
	case "auto", "":
		return os.Getenv("NO_COLOR") == "" && isTerminal(f), nil
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", mode)
	}
}
