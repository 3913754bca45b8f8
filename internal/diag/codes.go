package diag

import (
	"fmt"
)

// Code is a stable numeric diagnostic identifier.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                  Code = 1000
	LexUnknownChar           Code = 1001
	LexUnterminatedString    Code = 1002
	LexBadNumber             Code = 1003
	LexUnmatchedCloseBracket Code = 1004
	LexTabInconsistency      Code = 1005

	// I/O and project plumbing
	IOLoadFileError Code = 4001
	IONoSources     Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:              "unknown error",
	LexInfo:                  "lexical note",
	LexUnknownChar:           "unknown character",
	LexUnterminatedString:    "unterminated string literal",
	LexBadNumber:             "malformed numeric literal",
	LexUnmatchedCloseBracket: "unmatched closing bracket",
	LexTabInconsistency:      "inconsistent whitespace",
	IOLoadFileError:          "failed to load file",
	IONoSources:              "no source files found",
}

// ID returns the short categorized identifier, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable short description of the code.
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
