package fuzztests

import (
	"testing"

	"github.com/Willie169/bython/internal/diag"
	"github.com/Willie169/bython/internal/lexer"
	"github.com/Willie169/bython/internal/source"
	"github.com/Willie169/bython/internal/testkit"
	"github.com/Willie169/bython/internal/token"
)

// FuzzStreamTokens drives the newline-correction layer over arbitrary bytes
// and checks its terminal contract: every stream ends with a Newline then an
// EOF, the EOF repeats forever, and no span reaches past the file.
func FuzzStreamTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.by", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		opts := lexer.Options{Reporter: diag.BagReporter{Bag: bag}}
		stream := lexer.NewStream(lexer.New(file, opts), lexer.DefaultStreamConfig(), opts)

		limit := 2*len(file.Content) + 16

		var tokens []token.Token
		for i := 0; i < limit; i++ {
			tok := stream.Next()
			tokens = append(tokens, tok)
			if tok.Kind == token.EOF {
				break
			}
		}
		if tokens[len(tokens)-1].Kind != token.EOF {
			t.Fatalf("stream did not reach EOF within %d tokens", limit)
		}

		if err := testkit.CheckTokenInvariants(tokens, file); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 3; i++ {
			if tok := stream.Next(); tok.Kind != token.EOF {
				t.Fatalf("terminal EOF not idempotent, got %s", tok.Kind)
			}
		}
	})
}
