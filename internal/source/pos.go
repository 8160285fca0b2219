package source

import (
	"strconv"
	"strings"
)

// Pos is a position reported by the template parser.
// Line and Column are 1-based; zero means the parser did not record it.
type Pos struct {
	File   string
	Line   uint32
	Column uint32
}

// IsKnown reports whether the position carries at least a line.
func (p Pos) IsKnown() bool {
	return p.Line != 0
}

// String renders file:line:col, leaving out the parts that are unknown.
func (p Pos) String() string {
	var sb strings.Builder
	if p.File != "" {
		sb.WriteString(p.File)
	} else {
		sb.WriteString("<template>")
	}
	if p.Line == 0 {
		return sb.String()
	}
	sb.WriteByte(':')
	sb.WriteString(strconv.FormatUint(uint64(p.Line), 10))
	if p.Column != 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(uint64(p.Column), 10))
	}
	return sb.String()
}

// Before orders positions by file, line and column.
func (p Pos) Before(other Pos) bool {
	if p.File != other.File {
		return p.File < other.File
	}
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}
