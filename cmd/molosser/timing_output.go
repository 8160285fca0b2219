package main

import (
	"fmt"
	"io"

	"molosser/internal/observ"
)

func printTimings(out io.Writer, path string, report observ.Report) {
	if out == nil || len(report.Phases) == 0 {
		return
	}
	fmt.Fprintf(out, "timings: %s\n", path)
	for _, p := range report.Phases {
		fmt.Fprintf(out, "  %-10s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(out, "  // %s", p.Note)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "  %-10s %7.2f ms\n", "total", report.TotalMS)
}
