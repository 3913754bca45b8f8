package diag

import (
	"testing"

	"github.com/Willie169/bython/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagCapacity(t *testing.T) {
	b := NewBag(2)
	if b.Cap() != 2 {
		t.Errorf("Cap = %d, want 2", b.Cap())
	}

	if !b.Add(NewError(LexUnknownChar, span(0, 0, 1), "one")) {
		t.Error("first Add should succeed")
	}
	if !b.Add(NewError(LexUnknownChar, span(0, 1, 2), "two")) {
		t.Error("second Add should succeed")
	}
	if b.Add(NewError(LexUnknownChar, span(0, 2, 3), "three")) {
		t.Error("Add past capacity should report the drop")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(8)
	if b.HasErrors() || b.HasWarnings() {
		t.Error("empty bag should have neither errors nor warnings")
	}

	b.Add(New(SevInfo, LexInfo, span(0, 0, 0), "note"))
	if b.HasWarnings() {
		t.Error("info-only bag should not report warnings")
	}

	b.Add(New(SevWarning, LexUnmatchedCloseBracket, span(0, 1, 2), "warn"))
	if !b.HasWarnings() {
		t.Error("expected HasWarnings after adding a warning")
	}
	if b.HasErrors() {
		t.Error("warning must not count as error")
	}

	b.Add(NewError(LexUnterminatedString, span(0, 3, 4), "err"))
	if !b.HasErrors() {
		t.Error("expected HasErrors after adding an error")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(8)
	b.Add(NewError(LexBadNumber, span(1, 5, 6), "later file"))
	b.Add(NewError(LexBadNumber, span(0, 9, 10), "later offset"))
	b.Add(New(SevWarning, LexUnmatchedCloseBracket, span(0, 2, 3), "warn"))
	b.Add(NewError(LexUnknownChar, span(0, 2, 3), "same span, higher severity"))

	b.Sort()
	items := b.Items()

	if items[0].Severity != SevError || items[0].Primary != span(0, 2, 3) {
		t.Errorf("expected error at 0:2-3 first, got %+v", items[0])
	}
	if items[1].Severity != SevWarning {
		t.Errorf("expected warning second, got %+v", items[1])
	}
	if items[2].Primary != span(0, 9, 10) {
		t.Errorf("expected 0:9-10 third, got %+v", items[2])
	}
	if items[3].Primary.File != 1 {
		t.Errorf("expected file 1 last, got %+v", items[3])
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(8)
	d := NewError(LexUnknownChar, span(0, 0, 1), "dup")
	b.Add(d)
	b.Add(d)
	b.Add(NewError(LexUnknownChar, span(0, 1, 2), "other span"))

	b.Dedup()
	if b.Len() != 2 {
		t.Errorf("Len after Dedup = %d, want 2", b.Len())
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(LexUnknownChar, span(0, 0, 1), "a"))

	other := NewBag(2)
	other.Add(NewError(LexBadNumber, span(0, 1, 2), "b"))
	other.Add(New(SevWarning, LexUnmatchedCloseBracket, span(0, 2, 3), "c"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Errorf("Len after Merge = %d, want 3", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("Merge must grow capacity, Cap = %d", a.Cap())
	}
}

func TestBagReporter(t *testing.T) {
	b := NewBag(4)
	var r Reporter = BagReporter{Bag: b}

	ReportError(r, LexUnterminatedString, span(0, 0, 4), "unterminated")
	ReportWarning(r, LexUnmatchedCloseBracket, span(0, 5, 6), "unmatched")

	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Error("expected both an error and a warning in the bag")
	}

	// nil reporters are a no-op, not a panic
	ReportError(nil, LexUnknownChar, span(0, 0, 1), "dropped")
	BagReporter{}.Report(LexUnknownChar, SevError, span(0, 0, 1), "dropped", nil)
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{LexUnmatchedCloseBracket, "LEX1004"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCodeTitle(t *testing.T) {
	if got := LexUnterminatedString.Title(); got != "unterminated string literal" {
		t.Errorf("Title = %q", got)
	}
	if got := Code(9999).Title(); got != "unknown error" {
		t.Errorf("unknown code Title = %q", got)
	}
}

func TestWithNote(t *testing.T) {
	d := NewError(LexUnterminatedString, span(0, 0, 4), "unterminated")
	d2 := d.WithNote(span(0, 0, 1), "string starts here")

	if len(d.Notes) != 0 {
		t.Error("WithNote must not mutate the receiver")
	}
	if len(d2.Notes) != 1 || d2.Notes[0].Msg != "string starts here" {
		t.Errorf("Notes = %+v", d2.Notes)
	}
}
