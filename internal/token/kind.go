package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline marks the end of a logical statement.
	Newline

	// Ident represents an identifier token.
	Ident

	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwAssert represents the 'assert' keyword.
	KwAssert // assert
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDef represents the 'def' keyword.
	KwDef // def
	// KwDel represents the 'del' keyword.
	KwDel // del
	// KwElif represents the 'elif' keyword.
	KwElif // elif
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwExcept represents the 'except' keyword.
	KwExcept // except
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwGlobal represents the 'global' keyword.
	KwGlobal // global
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwLambda represents the 'lambda' keyword.
	KwLambda // lambda
	// KwNonlocal represents the 'nonlocal' keyword.
	KwNonlocal // nonlocal
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwPass represents the 'pass' keyword.
	KwPass // pass
	// KwRaise represents the 'raise' keyword.
	KwRaise // raise
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwYield represents the 'yield' keyword.
	KwYield // yield

	// TrueLit represents the 'True' literal.
	TrueLit // True
	// FalseLit represents the 'False' literal.
	FalseLit // False
	// NoneLit represents the 'None' literal.
	NoneLit // None
	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// StarStar represents the power operator token.
	StarStar // **
	// Slash represents the slash operator token.
	Slash // /
	// SlashSlash represents the floor-division operator token.
	SlashSlash // //
	// Percent represents the percent operator token.
	Percent // %
	// At represents the at operator token (decorators, matrix product).
	At // @
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// Tilde represents the tilde operator token.
	Tilde // ~
	// Shl represents the shift-left operator token.
	Shl // <<
	// Shr represents the shift-right operator token.
	Shr // >>
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus-assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus-assign operator token.
	MinusAssign // -=
	// StarAssign represents the star-assign operator token.
	StarAssign // *=
	// StarStarAssign represents the power-assign operator token.
	StarStarAssign // **=
	// SlashAssign represents the slash-assign operator token.
	SlashAssign // /=
	// SlashSlashAssign represents the floor-division-assign operator token.
	SlashSlashAssign // //=
	// PercentAssign represents the percent-assign operator token.
	PercentAssign // %=
	// AtAssign represents the at-assign operator token.
	AtAssign // @=
	// AmpAssign represents the amp-assign operator token.
	AmpAssign // &=
	// PipeAssign represents the pipe-assign operator token.
	PipeAssign // |=
	// CaretAssign represents the caret-assign operator token.
	CaretAssign // ^=
	// ShlAssign represents the shift-left-assign operator token.
	ShlAssign // <<=
	// ShrAssign represents the shift-right-assign operator token.
	ShrAssign // >>=
	// ColonAssign represents the walrus operator token.
	ColonAssign // :=
	// Arrow represents the return-annotation arrow token.
	Arrow // ->
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Ellipsis represents the '...' token.
	Ellipsis // ...
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left square bracket token.
	LBracket // [
	// RBracket represents the right square bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
)

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Newline:          "Newline",
	Ident:            "Ident",
	KwAnd:            "KwAnd",
	KwAs:             "KwAs",
	KwAssert:         "KwAssert",
	KwAsync:          "KwAsync",
	KwAwait:          "KwAwait",
	KwBreak:          "KwBreak",
	KwClass:          "KwClass",
	KwContinue:       "KwContinue",
	KwDef:            "KwDef",
	KwDel:            "KwDel",
	KwElif:           "KwElif",
	KwElse:           "KwElse",
	KwExcept:         "KwExcept",
	KwFinally:        "KwFinally",
	KwFor:            "KwFor",
	KwFrom:           "KwFrom",
	KwGlobal:         "KwGlobal",
	KwIf:             "KwIf",
	KwImport:         "KwImport",
	KwIn:             "KwIn",
	KwIs:             "KwIs",
	KwLambda:         "KwLambda",
	KwNonlocal:       "KwNonlocal",
	KwNot:            "KwNot",
	KwOr:             "KwOr",
	KwPass:           "KwPass",
	KwRaise:          "KwRaise",
	KwReturn:         "KwReturn",
	KwTry:            "KwTry",
	KwWhile:          "KwWhile",
	KwWith:           "KwWith",
	KwYield:          "KwYield",
	TrueLit:          "TrueLit",
	FalseLit:         "FalseLit",
	NoneLit:          "NoneLit",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	StringLit:        "StringLit",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	StarStar:         "StarStar",
	Slash:            "Slash",
	SlashSlash:       "SlashSlash",
	Percent:          "Percent",
	At:               "At",
	Amp:              "Amp",
	Pipe:             "Pipe",
	Caret:            "Caret",
	Tilde:            "Tilde",
	Shl:              "Shl",
	Shr:              "Shr",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	EqEq:             "EqEq",
	BangEq:           "BangEq",
	Assign:           "Assign",
	PlusAssign:       "PlusAssign",
	MinusAssign:      "MinusAssign",
	StarAssign:       "StarAssign",
	StarStarAssign:   "StarStarAssign",
	SlashAssign:      "SlashAssign",
	SlashSlashAssign: "SlashSlashAssign",
	PercentAssign:    "PercentAssign",
	AtAssign:         "AtAssign",
	AmpAssign:        "AmpAssign",
	PipeAssign:       "PipeAssign",
	CaretAssign:      "CaretAssign",
	ShlAssign:        "ShlAssign",
	ShrAssign:        "ShrAssign",
	ColonAssign:      "ColonAssign",
	Arrow:            "Arrow",
	Colon:            "Colon",
	Semicolon:        "Semicolon",
	Comma:            "Comma",
	Dot:              "Dot",
	Ellipsis:         "Ellipsis",
	LParen:           "LParen",
	RParen:           "RParen",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// IsEOF reports whether the kind is the terminal EOF marker.
func (k Kind) IsEOF() bool { return k == EOF }

// IsOpenBracket reports whether the kind opens a bracket/brace/paren group.
func (k Kind) IsOpenBracket() bool {
	switch k {
	case LParen, LBracket, LBrace:
		return true
	default:
		return false
	}
}

// IsCloseBracket reports whether the kind closes a bracket/brace/paren group.
func (k Kind) IsCloseBracket() bool {
	switch k {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}
