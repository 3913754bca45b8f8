package lexer

import (
	"strings"

	"github.com/Willie169/bython/internal/diag"
	"github.com/Willie169/bython/internal/source"
	"github.com/Willie169/bython/internal/token"
)

// Scanner is the raw token source a Stream corrects. *Lexer implements it.
type Scanner interface {
	// Next returns the next raw token; after end of input it keeps
	// returning EOF.
	Next() token.Token
	// Lookahead returns up to the next two unconsumed bytes and how many of
	// them exist (0, 1, or 2).
	Lookahead() (b0, b1 byte, n int)
}

// StreamConfig supplies the grammar-specific token kinds the correction
// layer needs. The layer itself carries no knowledge of the bython token
// set beyond what is injected here.
type StreamConfig struct {
	// Newline is the statement-terminator kind, both for classifying raw
	// newline tokens and for emitting significant ones.
	Newline token.Kind
	// EOF is the terminal kind produced by the raw scanner.
	EOF token.Kind
	// Opens and Closes list the bracket kinds that suspend newline
	// significance while any of them is open.
	Opens  []token.Kind
	Closes []token.Kind
	// Comment is the byte that starts a line comment ('#' for bython).
	Comment byte
}

// DefaultStreamConfig returns the bython wiring: parens, square brackets,
// and braces all suspend newline significance, comments start with '#'.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		Newline: token.Newline,
		EOF:     token.EOF,
		Opens:   []token.Kind{token.LParen, token.LBracket, token.LBrace},
		Closes:  []token.Kind{token.RParen, token.RBracket, token.RBrace},
		Comment: '#',
	}
}

// Stream rewrites a raw token sequence so Newline tokens mark exactly the
// ends of logical statements: newlines inside open brackets, blank lines,
// and newlines directly before comment-only lines are dropped, and the
// stream is guaranteed to terminate with one Newline followed by one EOF
// even when the source has no trailing line terminator.
//
// A Stream serves one consumer over one source; it is not safe for
// concurrent use. Reset reinitializes it for a new scanner.
type Stream struct {
	src      Scanner
	cfg      StreamConfig
	opens    map[token.Kind]struct{}
	closes   map[token.Kind]struct{}
	reporter diag.Reporter

	depth    int           // open bracket count, never negative
	queue    []token.Token // re-emission buffer, FIFO
	last     token.Token   // most recently handed-out token
	done     bool          // terminal EOF has been queued
	terminal token.Token   // served forever after done
}

// NewStream wraps src with the newline-correction layer.
func NewStream(src Scanner, cfg StreamConfig, opts Options) *Stream {
	s := &Stream{
		src:      src,
		cfg:      cfg,
		reporter: opts.Reporter,
		opens:    make(map[token.Kind]struct{}, len(cfg.Opens)),
		closes:   make(map[token.Kind]struct{}, len(cfg.Closes)),
	}
	for _, k := range cfg.Opens {
		s.opens[k] = struct{}{}
	}
	for _, k := range cfg.Closes {
		s.closes[k] = struct{}{}
	}
	return s
}

// Next returns the next corrected token. The queue is drained first; only
// when it is empty does the raw scanner advance. Once EOF has been served,
// every further call returns the same EOF token.
func (s *Stream) Next() token.Token {
	for {
		if len(s.queue) > 0 {
			tok := s.queue[0]
			s.queue = s.queue[1:]
			s.last = tok
			return tok
		}
		if s.done {
			s.last = s.terminal
			return s.terminal
		}

		raw := s.src.Next()
		switch {
		case raw.Kind == s.cfg.EOF:
			s.synthesizeEOF(raw)
		case raw.Kind == s.cfg.Newline:
			s.classifyNewline(raw)
			// a discarded newline queues nothing; loop and advance again
		default:
			s.trackBrackets(raw)
			s.queue = append(s.queue, raw)
		}
	}
}

// Last returns the most recently emitted token. Consumers that need "what
// did I just receive" introspection read it here instead of caching pulls.
func (s *Stream) Last() token.Token {
	return s.last
}

// BracketDepth returns the current open-bracket count.
func (s *Stream) BracketDepth() int {
	return s.depth
}

// Reset points the stream at a new scanner and clears all per-source state:
// bracket depth, the re-emission queue, and the terminal latch. Skipping
// this when re-lexing would leak depth across files and corrupt newline
// significance in the next one.
func (s *Stream) Reset(src Scanner) {
	s.src = src
	s.depth = 0
	s.queue = s.queue[:0]
	s.last = token.Token{}
	s.done = false
	s.terminal = token.Token{}
}

func (s *Stream) trackBrackets(tok token.Token) {
	if _, ok := s.opens[tok.Kind]; ok {
		s.depth++
		return
	}
	if _, ok := s.closes[tok.Kind]; ok {
		if s.depth == 0 {
			// clamp rather than going negative; a negative counter would
			// silently suppress every later newline in the file
			diag.ReportWarning(s.reporter, diag.LexUnmatchedCloseBracket, tok.Span,
				"unmatched closing bracket")
			return
		}
		s.depth--
	}
}

// classifyNewline decides the fate of one raw newline run. The run is
// discarded while brackets are open, and when at least two bytes remain and
// the very next one is another line terminator or a comment marker, since
// blank lines and comment-only lines carry no statement boundary. Otherwise
// the run becomes a significant Newline whose text is the captured
// indentation, end-anchored inside the run so offsets stay monotonic.
func (s *Stream) classifyNewline(raw token.Token) {
	if s.depth > 0 {
		return
	}
	b0, _, n := s.src.Lookahead()
	if n >= 2 && (isNewlineByte(b0) || b0 == s.cfg.Comment) {
		return
	}

	text := stripNewlineChars(raw.Text)
	start := raw.Span.End - uint32(len(text))
	s.queue = append(s.queue, token.Token{
		Kind: s.cfg.Newline,
		Span: source.Span{File: raw.Span.File, Start: start, End: raw.Span.End},
		Text: text,
	})
}

// synthesizeEOF guarantees the terminal Newline+EOF pair. Any EOF the raw
// scanner already produced is dropped and re-synthesized so positioning is
// consistent. Runs once per lexing pass.
func (s *Stream) synthesizeEOF(raw token.Token) {
	kept := s.queue[:0]
	for _, tok := range s.queue {
		if tok.Kind != s.cfg.EOF {
			kept = append(kept, tok)
		}
	}
	s.queue = kept

	at := source.Span{File: raw.Span.File, Start: raw.Span.End, End: raw.Span.End}
	if s.last.Kind != s.cfg.Newline {
		s.queue = append(s.queue, token.Token{Kind: s.cfg.Newline, Span: at, Text: ""})
	}
	s.terminal = token.Token{Kind: s.cfg.EOF, Span: at, Text: "<EOF>"}
	s.queue = append(s.queue, s.terminal)
	s.done = true
}

// stripNewlineChars drops \r, \n, and \f from the raw run, leaving the
// captured indentation (often empty).
func stripNewlineChars(text string) string {
	if !strings.ContainsAny(text, "\r\n\f") {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if !isNewlineByte(text[i]) {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}
