package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Willie169/bython/internal/diag"
	"github.com/Willie169/bython/internal/lexer"
	"github.com/Willie169/bython/internal/source"
	"github.com/Willie169/bython/internal/token"
)

// makeStream builds a corrected stream over a test string
func makeStream(input string) (*lexer.Stream, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.by", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	opts := lexer.Options{Reporter: reporter}
	s := lexer.NewStream(lexer.New(file, opts), lexer.DefaultStreamConfig(), opts)
	return s, reporter
}

// collectStream pulls corrected tokens until EOF
func collectStream(s *lexer.Stream) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func streamKinds(input string) []token.Kind {
	s, _ := makeStream(input)
	tokens := collectStream(s)
	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

// ====== terminal Newline+EOF invariant ======

func TestStream_TerminalPair(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"x\n",
		"a b c",
		"a\n\n",
		"(\n)",
		"# just a comment",
		"\n\n\n",
	}
	for _, input := range inputs {
		t.Run(strings.ReplaceAll(input, "\n", "⏎"), func(t *testing.T) {
			s, _ := makeStream(input)
			tokens := collectStream(s)
			require.GreaterOrEqual(t, len(tokens), 2)
			require.Equal(t, token.Newline, tokens[len(tokens)-2].Kind,
				"stream must end with Newline before EOF")
			require.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
		})
	}
}

func TestStream_TerminalEOFIdempotent(t *testing.T) {
	s, _ := makeStream("x")
	tokens := collectStream(s)
	eof := tokens[len(tokens)-1]

	depth := s.BracketDepth()
	for i := 0; i < 5; i++ {
		again := s.Next()
		require.Equal(t, eof, again, "post-EOF pulls must return the same EOF token")
	}
	require.Equal(t, depth, s.BracketDepth(), "post-EOF pulls must not mutate depth")
	require.Equal(t, eof, s.Last())
}

// ====== blank line collapsing ======

func TestStream_BlankLineCollapse(t *testing.T) {
	require.Equal(t, []token.Kind{
		token.Ident, token.Newline, token.Ident, token.Newline, token.EOF,
	}, streamKinds("a\n\nb\n"))
}

func TestStream_ManyBlankLines(t *testing.T) {
	require.Equal(t, []token.Kind{
		token.Ident, token.Newline, token.Ident, token.Newline, token.EOF,
	}, streamKinds("a\n\n\n\n\nb\n"))
}

func TestStream_CommentOnlyLine(t *testing.T) {
	// the newline before a comment-only line is insignificant; the one after
	// the comment terminates the statement
	require.Equal(t, []token.Kind{
		token.Ident, token.Newline, token.Ident, token.Newline, token.EOF,
	}, streamKinds("x\n# note\ny\n"))
}

func TestStream_IndentedContinuationLine(t *testing.T) {
	// indentation is captured as the significant newline's text
	s, _ := makeStream("a\n  b\n")
	tokens := collectStream(s)
	require.Equal(t, []token.Kind{
		token.Ident, token.Newline, token.Ident, token.Newline, token.EOF,
	}, kindsOf(tokens))
	require.Equal(t, "  ", tokens[1].Text)
	require.Equal(t, uint32(2), tokens[1].Span.Start)
	require.Equal(t, uint32(4), tokens[1].Span.End)
}

// ====== bracket suppression ======

func TestStream_NewlinesInsideParens(t *testing.T) {
	require.Equal(t, []token.Kind{
		token.Ident, token.LParen, token.Ident, token.Comma, token.Ident,
		token.RParen, token.Newline, token.EOF,
	}, streamKinds("f(\n  x,\n  y\n)\n"))
}

func TestStream_NewlinesInsideBracketsAndBraces(t *testing.T) {
	require.Equal(t, []token.Kind{
		token.Ident, token.Assign, token.LBracket, token.IntLit, token.Comma,
		token.IntLit, token.RBracket, token.Newline, token.EOF,
	}, streamKinds("v = [\n1,\n2\n]\n"))

	require.Equal(t, []token.Kind{
		token.Ident, token.Assign, token.LBrace, token.StringLit, token.Colon,
		token.IntLit, token.RBrace, token.Newline, token.EOF,
	}, streamKinds("d = {\n'k':\n1\n}\n"))
}

func TestStream_NestedBrackets(t *testing.T) {
	s, _ := makeStream("f(g(\nh[\n1\n]\n),\n2)\n")
	tokens := collectStream(s)
	for _, tok := range tokens[:len(tokens)-2] {
		require.NotEqual(t, token.Newline, tok.Kind,
			"no newline may survive inside open brackets")
	}
	require.Equal(t, token.Newline, tokens[len(tokens)-2].Kind)
	require.Equal(t, 0, s.BracketDepth())
}

// ====== EOF synthesis ======

func TestStream_MissingTrailingNewline(t *testing.T) {
	// the synthetic newline lands right after x's end offset
	s, _ := makeStream("x")
	tokens := collectStream(s)
	require.Equal(t, []token.Kind{token.Ident, token.Newline, token.EOF}, kindsOf(tokens))

	synth := tokens[1]
	require.Equal(t, "", synth.Text)
	require.Equal(t, uint32(1), synth.Span.Start)
	require.Equal(t, uint32(1), synth.Span.End)

	eof := tokens[2]
	require.Equal(t, "<EOF>", eof.Text)
	require.Equal(t, uint32(1), eof.Span.Start)
}

func TestStream_TrailingNewlineNotDoubled(t *testing.T) {
	// a real trailing newline already terminates the last statement; EOF
	// synthesis must not add a second one
	require.Equal(t, []token.Kind{
		token.Ident, token.Newline, token.EOF,
	}, streamKinds("x\n"))
}

func TestStream_EmptyInput(t *testing.T) {
	require.Equal(t, []token.Kind{token.Newline, token.EOF}, streamKinds(""))
}

// ====== unmatched closing brackets ======

func TestStream_UnmatchedCloseClampsAtZero(t *testing.T) {
	s, reporter := makeStream(")\na\n")
	tokens := collectStream(s)

	// depth clamped: the newlines after ')' stay significant
	require.Equal(t, []token.Kind{
		token.RParen, token.Newline, token.Ident, token.Newline, token.EOF,
	}, kindsOf(tokens))

	require.Len(t, reporter.diagnostics, 1)
	require.Equal(t, diag.LexUnmatchedCloseBracket, reporter.diagnostics[0].Code)
	require.Equal(t, diag.SevWarning, reporter.diagnostics[0].Severity)
	require.Equal(t, 0, s.BracketDepth())
}

func TestStream_MismatchedCloseKind(t *testing.T) {
	// the counter is shared across bracket kinds: ']' closes what '(' opened
	s, _ := makeStream("(\na]\n")
	tokens := collectStream(s)
	require.Equal(t, []token.Kind{
		token.LParen, token.Ident, token.RBracket, token.Newline, token.EOF,
	}, kindsOf(tokens))
}

// ====== introspection and reset ======

func TestStream_LastTracksEmitted(t *testing.T) {
	s, _ := makeStream("a b\n")
	require.Equal(t, token.Token{}, s.Last())

	first := s.Next()
	require.Equal(t, first, s.Last())
	second := s.Next()
	require.Equal(t, second, s.Last())
}

func TestStream_ResetClearsState(t *testing.T) {
	s, _ := makeStream("f(\n") // leaves depth at 1 when fully drained
	collectStream(s)

	fs := source.NewFileSet()
	id := fs.AddVirtual("next.by", []byte("a\nb\n"))
	s.Reset(lexer.New(fs.Get(id), lexer.Options{}))

	require.Equal(t, 0, s.BracketDepth(), "Reset must clear bracket depth")
	require.Equal(t, token.Token{}, s.Last())

	tokens := collectStream(s)
	require.Equal(t, []token.Kind{
		token.Ident, token.Newline, token.Ident, token.Newline, token.EOF,
	}, kindsOf(tokens), "stale depth must not leak into the next file")
}

// ====== offset properties ======

func TestStream_OffsetsMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := genBalancedSource(rt)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("prop.by", []byte(input))
		file := fs.Get(fileID)
		s := lexer.NewStream(lexer.New(file, lexer.Options{}), lexer.DefaultStreamConfig(), lexer.Options{})

		var prevEnd uint32
		var tokens []token.Token
		for {
			tok := s.Next()
			tokens = append(tokens, tok)
			if tok.Span.Start > tok.Span.End {
				rt.Fatalf("inverted span %v for %v", tok.Span, tok.Kind)
			}
			if tok.Span.Start < prevEnd {
				rt.Fatalf("overlapping token %v(%q) at %v, previous end %d\ninput: %q",
					tok.Kind, tok.Text, tok.Span, prevEnd, input)
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				break
			}
		}

		if len(tokens) < 2 || tokens[len(tokens)-2].Kind != token.Newline {
			rt.Fatalf("stream did not end with Newline+EOF: %v\ninput: %q", kindsOf(tokens), input)
		}
	})
}

func TestStream_NoNewlineWhileOpen(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		inner := rapid.SliceOfN(rapid.SampledFrom([]string{"a", "\n", ",", " ", "1"}), 0, 12).Draw(rt, "inner")
		input := "f(" + strings.Join(inner, "") + ")\n"

		kinds := streamKinds(input)
		for i, k := range kinds {
			if k == token.Newline && i != len(kinds)-2 {
				rt.Fatalf("interior newline survived in %q: %v", input, kinds)
			}
		}
	})
}

// genBalancedSource draws a small bracket-balanced program text
func genBalancedSource(rt *rapid.T) string {
	var b strings.Builder
	var stack []byte
	steps := rapid.IntRange(0, 40).Draw(rt, "steps")
	for i := 0; i < 40 && steps > 0; i++ {
		steps--
		switch rapid.IntRange(0, 6).Draw(rt, "op") {
		case 0:
			b.WriteString("x")
		case 1:
			b.WriteString(" ")
		case 2:
			b.WriteString("\n")
		case 3:
			b.WriteString("(")
			stack = append(stack, ')')
		case 4:
			b.WriteString("[")
			stack = append(stack, ']')
		case 5:
			if len(stack) > 0 {
				b.WriteByte(stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		case 6:
			b.WriteString("42")
		}
	}
	for len(stack) > 0 {
		b.WriteByte(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return b.String()
}

func kindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}
