package lexer

import (
	"github.com/Willie169/bython/internal/diag"
	"github.com/Willie169/bython/internal/source"
)

// Options configures a Lexer or Stream.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil; scanning continues
	// either way.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.opts.Reporter, code, sp, msg)
}
