package token

import (
	"github.com/Willie169/bython/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, string, or None
// literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case TrueLit, FalseLit, NoneLit, IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwAnd, KwAs, KwAssert, KwAsync, KwAwait, KwBreak, KwClass, KwContinue,
		KwDef, KwDel, KwElif, KwElse, KwExcept, KwFinally, KwFor, KwFrom,
		KwGlobal, KwIf, KwImport, KwIn, KwIs, KwLambda, KwNonlocal, KwNot,
		KwOr, KwPass, KwRaise, KwReturn, KwTry, KwWhile, KwWith, KwYield:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, StarStar, Slash, SlashSlash, Percent, At, Amp,
		Pipe, Caret, Tilde, Shl, Shr, Lt, LtEq, Gt, GtEq, EqEq, BangEq,
		Assign, PlusAssign, MinusAssign, StarAssign, StarStarAssign,
		SlashAssign, SlashSlashAssign, PercentAssign, AtAssign, AmpAssign,
		PipeAssign, CaretAssign, ShlAssign, ShrAssign, ColonAssign, Arrow,
		Colon, Semicolon, Comma, Dot, Ellipsis, LParen, RParen, LBracket,
		RBracket, LBrace, RBrace:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
