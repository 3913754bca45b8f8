// Package fuzztests houses Go fuzz harnesses that exercise the lexical
// front end (source -> lexer -> token stream). Its goal is to smoke test
// robustness and guard against panics or runaway loops on arbitrary inputs.
package fuzztests
