package diag

import "molosser/internal/source"

func New(sev Severity, code Code, pos source.Pos, reasons ...string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Reasons:  reasons,
		Pos:      pos,
	}
}

func NewError(code Code, pos source.Pos, reasons ...string) Diagnostic {
	return New(SevError, code, pos, reasons...)
}

func (d Diagnostic) WithNote(pos source.Pos, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Pos: pos, Msg: msg})
	return d
}
