package diag

import (
	"strings"

	"molosser/internal/source"
)

type Note struct {
	Pos source.Pos
	Msg string
}

// Diagnostic is one finding of the lowering pass.
//
// IsFatal means the node it is attached to produced no output. It never stops
// the walk over the node's siblings. MaybeBug separates gaps in the compiler
// (an unknown node kind) from deliberate limitations.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Reasons  []string
	MaybeBug bool
	IsFatal  bool
	Pos      source.Pos
	Notes    []Note
}

// Message joins the reasons into a single line.
func (d Diagnostic) Message() string {
	return strings.Join(d.Reasons, "; ")
}
