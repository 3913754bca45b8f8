package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/Willie169/bython/internal/source"
	"github.com/Willie169/bython/internal/token"
)

// CheckTokenInvariants runs a minimal set of invariants on a corrected token
// stream:
// 1) every span stays within the file content bounds and points at the file
// 2) token starts never move backwards
// 3) the stream ends with a significant newline followed by the terminal EOF
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevStart uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start {
			return fmt.Errorf("token %d span is inverted: %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevStart {
			return fmt.Errorf("token %d starts before its predecessor: %d < %d", i, sp.Start, prevStart)
		}
		prevStart = sp.Start
	}

	if len(tokens) < 2 {
		return fmt.Errorf("stream too short: %d tokens", len(tokens))
	}
	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF {
		return fmt.Errorf("stream does not end with EOF: %s", last.Kind)
	}
	if last.Text != "<EOF>" {
		return fmt.Errorf("terminal EOF text = %q", last.Text)
	}
	if prev := tokens[len(tokens)-2]; prev.Kind != token.Newline {
		return fmt.Errorf("EOF not preceded by a newline: %s", prev.Kind)
	}
	return nil
}
