// Package token defines lexical token kinds for the bython front end.
// Invariants:
//   - Token.Text matches the bytes covered by Token.Span, except for the
//     synthetic terminal tokens (end-of-file newline, EOF marker) which carry
//     empty spans.
//   - Newline tokens appear in the stream only where a logical statement
//     ends; newlines inside open brackets and blank/comment-only lines are
//     filtered out before the parser sees them.
//   - Built-in type and function names (int, str, print, ...) are plain
//     identifiers; the lexer recognizes only the keyword set.
package token
