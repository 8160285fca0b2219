package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Syntax the lowering pass recognises but cannot translate.
	SynInfo                Code = 2000
	UnsupportedSyntaxError Code = 2001

	// I/O and decoding of template trees.
	IOLoadFileError Code = 4001
	IODecodeError   Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	SynInfo:                "Syntax information",
	UnsupportedSyntaxError: "Unsupported syntax",
	IOLoadFileError:        "I/O load file error",
	IODecodeError:          "Template tree decode error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
