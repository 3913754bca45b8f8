package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Willie169/bython/internal/diag"
	"github.com/Willie169/bython/internal/source"
)

// Pretty renders diagnostics in a human-readable form. It walks bag.Items()
// in order (call bag.Sort() first for stable output) and prints, per
// diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~ underline of the primary span
//
// followed by notes in the same shape. Color is applied per severity when
// enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, fs, d.Severity, d.Code, d.Primary, d.Message, opts)
		printSourceLine(w, fs, d.Primary, opts)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				printHeader(w, fs, diag.SevInfo, diag.UnknownCode, note.Span, note.Msg, opts)
				printSourceLine(w, fs, note.Span, opts)
			}
		}
	}
}

func printHeader(w io.Writer, fs *source.FileSet, sev diag.Severity, code diag.Code, sp source.Span, msg string, opts PrettyOpts) {
	file := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)

	sevText := sev.String()
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
	}

	if code == diag.UnknownCode {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
			displayPath(file, fs, opts.PathMode), start.Line, start.Col, sevText, msg)
		return
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file, fs, opts.PathMode), start.Line, start.Col, sevText, code.ID(), msg)
}

// printSourceLine shows the first line the span touches with a caret
// underline beneath it.
func printSourceLine(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	file := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	line := file.GetLine(start.Line)
	if line == "" && start.Col > 1 {
		return
	}

	gutter := fmt.Sprintf("%5d | ", start.Line)
	fmt.Fprintf(w, "%s%s\n", gutter, line)

	underStart := int(start.Col) - 1
	underLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		underLen = int(end.Col - start.Col)
	} else if end.Line > start.Line {
		// span continues past this line; underline to the line end
		if rest := len(line) - underStart; rest > underLen {
			underLen = rest
		}
	}
	if underStart > len(line) {
		underStart = len(line)
	}

	underline := "^" + strings.Repeat("~", underLen-1)
	if opts.Color {
		underline = color.New(color.FgGreen, color.Bold).Sprint(underline)
	}
	fmt.Fprintf(w, "%s%s%s\n",
		strings.Repeat(" ", len(gutter)), strings.Repeat(" ", underStart), underline)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
