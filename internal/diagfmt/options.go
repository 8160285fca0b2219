package diagfmt

import (
	"fmt"
	"path/filepath"
	"strings"

	"molosser/internal/source"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto prints the path as the parser recorded it, except that
	// absolute paths of loaded files are shown relative to the base dir.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// Format selects the diagnostic renderer.
type Format uint8

const (
	FormatPretty Format = iota
	FormatJSON
	// FormatShort prints one line per diagnostic, for scripts and goldens.
	FormatShort
)

// ParseFormat converts a string to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	case "short":
		return FormatShort, nil
	default:
		return FormatPretty, fmt.Errorf("invalid diagnostics format: %q (expected: pretty|json|short)", s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatShort:
		return "short"
	default:
		return "pretty"
	}
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// ShowSource prints the offending line with a caret under the column.
	ShowSource bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode     PathMode
	Max          int // output cap, independent of the Bag's
	IncludeNotes bool
}

func formatPath(file string, fs *source.FileSet, mode PathMode) string {
	if file == "" {
		return ""
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(file); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		base := ""
		if fs != nil {
			base = fs.BaseDir()
		}
		if base == "" {
			return file
		}
		abs, err := filepath.Abs(file)
		if err != nil {
			return file
		}
		if rel, err := filepath.Rel(base, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	case PathModeBasename:
		return filepath.Base(file)
	default:
		if fs != nil {
			if f, ok := fs.GetByPath(file); ok {
				return f.DisplayPath(fs.BaseDir())
			}
		}
	}
	return file
}

// displayPos renders pos with its path rewritten for mode.
func displayPos(pos source.Pos, fs *source.FileSet, mode PathMode) string {
	pos.File = formatPath(pos.File, fs, mode)
	return pos.String()
}
