package driver

import (
	"github.com/Willie169/bython/internal/diag"
	"github.com/Willie169/bython/internal/lexer"
	"github.com/Willie169/bython/internal/source"
	"github.com/Willie169/bython/internal/token"
)

// TokenizeResult bundles everything one tokenization pass produced.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path, runs the scanner and the newline-correction stream
// over it, and returns the corrected token slice with diagnostics.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource tokenizes in-memory content under a virtual file name.
// Used for stdin and tests.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	opts := lexer.Options{Reporter: diag.BagReporter{Bag: bag}}

	stream := lexer.NewStream(lexer.New(file, opts), lexer.DefaultStreamConfig(), opts)

	var tokens []token.Token
	for {
		tok := stream.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
