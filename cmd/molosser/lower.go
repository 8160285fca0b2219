package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"molosser/internal/diag"
	"molosser/internal/diagfmt"
	"molosser/internal/driver"
	"molosser/internal/jsx"
	"molosser/internal/source"
)

var lowerCmd = &cobra.Command{
	Use:   "lower [flags] <tree.json|tree.msgpack>...",
	Short: "Lower template trees and print the assembled programs",
	Long: `Lower one or more template parse trees. For each file the assembled program
(hoisted statements, then the render tree) is printed, followed by its
diagnostics. Exits non-zero when any file has a fatal diagnostic.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLower,
}

func init() {
	lowerCmd.Flags().String("output", "dump", "what to print per file (dump|none)")
	lowerCmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|json|short)")
	lowerCmd.Flags().Int("jobs", 0, "max files lowered in parallel (0=auto)")
	lowerCmd.Flags().Bool("cache", false, "cache decoded JSON trees on disk")
	lowerCmd.Flags().Bool("with-notes", true, "include diagnostic notes")
	lowerCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

func runLower(cmd *cobra.Command, args []string) (retErr error) {
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() { cleanup(retErr != nil) }()
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	st, cfgPath, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output != "dump" && output != "none" {
		return fmt.Errorf("unsupported output %q (must be dump or none)", output)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}
	useColor, err := colorEnabled(st.Color, os.Stderr)
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	var cache *driver.TreeCache
	if st.Cache {
		if cache, err = driver.OpenTreeCache("molosser"); err != nil {
			return fmt.Errorf("open tree cache: %w", err)
		}
	}

	opts := driver.Options{
		MaxDiagnostics: st.MaxDiagnostics,
		Jobs:           st.Jobs,
		Cache:          cache,
	}
	var results []*driver.Result
	if !quiet && shouldUseTUI(mode, len(args)) {
		results, err = runLowerWithUI(cmd.Context(), "lowering", args, opts)
	} else {
		results, err = driver.LowerFiles(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	if cfgPath != "" {
		// show absolute template paths relative to the project root
		fs.SetBaseDir(filepath.Dir(cfgPath))
	}
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	fatal := false
	for _, res := range results {
		loadSources(fs, res.SourceFiles)
		if res.HasFatal() {
			fatal = true
		}
		if output == "dump" && res.Program != nil {
			if err := printProgram(out, res.Path, res.Program, quiet); err != nil {
				return err
			}
		}
		if err := printDiagnostics(out, errOut, res, fs, st, useColor); err != nil {
			return err
		}
		if showTimings {
			printTimings(errOut, res.Path, res.Timing)
		}
	}
	if fatal {
		return errFatalDiagnostics
	}
	return nil
}

// loadSources loads the template sources diagnostics point into. A missing
// source only costs the quoted line.
func loadSources(fs *source.FileSet, files []string) {
	for _, f := range files {
		if _, ok := fs.GetByPath(f); ok {
			continue
		}
		_, _ = fs.Load(f)
	}
}

func printProgram(out io.Writer, path string, prog *jsx.Program, quiet bool) error {
	if !quiet {
		if _, err := fmt.Fprintf(out, "== %s\n", path); err != nil {
			return err
		}
	}
	return jsx.DumpProgram(out, prog)
}

func printDiagnostics(out, errOut io.Writer, res *driver.Result, fs *source.FileSet, st settings, useColor bool) error {
	if res.Bag.Len() == 0 && res.Bag.Dropped() == 0 {
		return nil
	}
	switch st.Format {
	case diagfmt.FormatJSON:
		return diagfmt.JSON(out, res.Bag, fs, diagfmt.JSONOpts{IncludeNotes: st.Notes})
	case diagfmt.FormatShort:
		_, err := fmt.Fprintln(errOut, diag.FormatShortDiagnostics(res.Bag.Items(), st.Notes))
		return err
	}
	return diagfmt.Pretty(errOut, res.Bag, fs, diagfmt.PrettyOpts{
		Color:      useColor,
		ShowNotes:  st.Notes,
		ShowSource: true,
	})
}
