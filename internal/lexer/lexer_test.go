package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Willie169/bython/internal/diag"
	"github.com/Willie169/bython/internal/lexer"
	"github.com/Willie169/bython/internal/source"
	"github.com/Willie169/bython/internal/token"
)

// testReporter collects diagnostics emitted by the lexer
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeRawLexer builds a raw scanner over a test string
func makeRawLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.by", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

// collectRawTokens pulls raw tokens until EOF
func collectRawTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectRawKinds checks the raw token kind sequence, EOF excluded
func expectRawKinds(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeRawLexer(input)
	tokens := collectRawTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleRawToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeRawLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== identifiers and keywords ======

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"foo", token.Ident, "foo"},
		{"_bar", token.Ident, "_bar"},
		{"__init__", token.Ident, "__init__"},
		{"x123", token.Ident, "x123"},
		{"camelCase", token.Ident, "camelCase"},
		{"UPPER", token.Ident, "UPPER"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleRawToken(t, tt.input, tt.kind, tt.text)
		})
	}
}

func TestIdentifiers_Unicode(t *testing.T) {
	expectSingleRawToken(t, "приве́т", token.Ident, "приве́т")
	expectSingleRawToken(t, "变量", token.Ident, "变量")
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"def", token.KwDef},
		{"class", token.KwClass},
		{"if", token.KwIf},
		{"elif", token.KwElif},
		{"else", token.KwElse},
		{"while", token.KwWhile},
		{"for", token.KwFor},
		{"in", token.KwIn},
		{"return", token.KwReturn},
		{"import", token.KwImport},
		{"from", token.KwFrom},
		{"pass", token.KwPass},
		{"lambda", token.KwLambda},
		{"True", token.TrueLit},
		{"False", token.FalseLit},
		{"None", token.NoneLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleRawToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestKeywords_CaseSensitive(t *testing.T) {
	// "Def" and "true" are plain identifiers
	expectSingleRawToken(t, "Def", token.Ident, "Def")
	expectSingleRawToken(t, "true", token.Ident, "true")
	expectSingleRawToken(t, "NONE", token.Ident, "NONE")
}

// ====== numbers ======

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"42", token.IntLit},
		{"1_000_000", token.IntLit},
		{"0b1010", token.IntLit},
		{"0o755", token.IntLit},
		{"0xDEADbeef", token.IntLit},
		{"3.14", token.FloatLit},
		{"1.", token.FloatLit},
		{".5", token.FloatLit},
		{"1e10", token.FloatLit},
		{"1.5e-3", token.FloatLit},
		{"2E+8", token.FloatLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleRawToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestNumber_BadExponent(t *testing.T) {
	lx, reporter := makeRawLexer("1e+")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatal("expected a diagnostic for bad exponent")
	}
}

// ====== strings ======

func TestStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{"double", `"hello"`, `"hello"`},
		{"single", `'hi'`, `'hi'`},
		{"empty_double", `""`, `""`},
		{"empty_single", `''`, `''`},
		{"escape", `"a\"b"`, `"a\"b"`},
		{"triple", `"""doc"""`, `"""doc"""`},
		{"triple_multiline", "'''a\nb'''", "'''a\nb'''"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSingleRawToken(t, tt.input, token.StringLit, tt.text)
		})
	}
}

func TestString_Unterminated(t *testing.T) {
	lx, reporter := makeRawLexer(`"abc`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatal("expected a diagnostic for unterminated string")
	}
}

func TestString_NewlineInside(t *testing.T) {
	lx, reporter := makeRawLexer("\"ab\ncd\"")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatal("expected a diagnostic for newline in string")
	}
}

func TestTripleString_SwallowsNewlines(t *testing.T) {
	// the newlines live inside one StringLit token; no Newline tokens leak
	expectRawKinds(t, "x = '''a\nb\nc'''", []token.Kind{
		token.Ident, token.Assign, token.StringLit,
	})
}

// ====== operators ======

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"+", token.Plus},
		{"-", token.Minus},
		{"**", token.StarStar},
		{"//", token.SlashSlash},
		{"**=", token.StarStarAssign},
		{"//=", token.SlashSlashAssign},
		{"<<=", token.ShlAssign},
		{">>=", token.ShrAssign},
		{"...", token.Ellipsis},
		{"==", token.EqEq},
		{"!=", token.BangEq},
		{"<=", token.LtEq},
		{">=", token.GtEq},
		{"->", token.Arrow},
		{":=", token.ColonAssign},
		{"@", token.At},
		{"~", token.Tilde},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleRawToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestOperators_Greedy(t *testing.T) {
	expectRawKinds(t, "a**b", []token.Kind{token.Ident, token.StarStar, token.Ident})
	expectRawKinds(t, "a<<=b", []token.Kind{token.Ident, token.ShlAssign, token.Ident})
	expectRawKinds(t, "a/ /b", []token.Kind{token.Ident, token.Slash, token.Slash, token.Ident})
}

func TestUnknownChar(t *testing.T) {
	lx, reporter := makeRawLexer("$")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatal("expected a diagnostic for unknown char")
	}
}

// ====== trivia handling ======

func TestComments_Skipped(t *testing.T) {
	expectRawKinds(t, "a # trailing comment", []token.Kind{token.Ident})
	expectRawKinds(t, "# only a comment", nil)
}

func TestRawNewlines_Emitted(t *testing.T) {
	expectRawKinds(t, "a\nb", []token.Kind{token.Ident, token.Newline, token.Ident})
	// one raw Newline token per physical newline
	expectRawKinds(t, "a\n\nb", []token.Kind{token.Ident, token.Newline, token.Newline, token.Ident})
}

func TestRawNewline_CapturesIndentation(t *testing.T) {
	lx, _ := makeRawLexer("a\n  b")
	lx.Next() // a
	nl := lx.Next()
	if nl.Kind != token.Newline {
		t.Fatalf("expected Newline, got %v", nl.Kind)
	}
	if nl.Text != "\n  " {
		t.Errorf("Newline text = %q, want %q", nl.Text, "\n  ")
	}
	if nl.Span.Start != 1 || nl.Span.End != 4 {
		t.Errorf("Newline span = %v, want 1..4", nl.Span)
	}
}

func TestBackslashContinuation(t *testing.T) {
	expectRawKinds(t, "a \\\nb", []token.Kind{token.Ident, token.Ident})
}

func TestEOF_Idempotent(t *testing.T) {
	lx, _ := makeRawLexer("a")
	lx.Next() // a
	first := lx.Next()
	second := lx.Next()
	if first.Kind != token.EOF || second.Kind != token.EOF {
		t.Fatalf("expected EOF twice, got %v then %v", first.Kind, second.Kind)
	}
	if first.Span != second.Span {
		t.Errorf("EOF span changed between pulls: %v vs %v", first.Span, second.Span)
	}
}

func TestStatementWithBraces(t *testing.T) {
	expectRawKinds(t, "def f(a, b) { return a }", []token.Kind{
		token.KwDef, token.Ident, token.LParen, token.Ident, token.Comma,
		token.Ident, token.RParen, token.LBrace, token.KwReturn, token.Ident,
		token.RBrace,
	})
}
