package highlighter

import (
	"errors"
	"testing"
)

const fixture = `{
  name: 'it\'s',
  inputs: [
    insertText('hi'), moveBackward()
  ],
  expectedHTML: '<div>é</div>',
  expectedSelection: {
    anchorPath: [0, 0, 0],
    anchorOffset: 2,
    focusPath: [0, 0, 0],
    focusOffset: 2,
  },
},`

func newHighlighter(t *testing.T) *Highlighter {
	t.Helper()
	h, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(h.Close)
	return h
}

func hasRange(ranges []StyledRange, want StyledRange) bool {
	for _, r := range ranges {
		if r == want {
			return true
		}
	}
	return false
}

func TestHighlight(t *testing.T) {
	h := newHighlighter(t)
	result, err := h.Highlight(fixture)
	if err != nil {
		t.Fatalf("Highlight() error = %v", err)
	}

	tests := []struct {
		line int
		want StyledRange
	}{
		{0, StyledRange{0, 1, "punctuation.bracket"}},
		{1, StyledRange{2, 6, "property"}},
		{1, StyledRange{8, 15, "string"}},
		{1, StyledRange{11, 13, "string.escape"}},
		{3, StyledRange{4, 14, "function.call"}},
		{3, StyledRange{15, 19, "string"}},
		{3, StyledRange{22, 34, "function.call"}},
		{5, StyledRange{16, 30, "string"}},
		{8, StyledRange{18, 19, "number"}},
	}
	for _, tt := range tests {
		if !hasRange(result[tt.line], tt.want) {
			t.Errorf("line %d: missing %+v in %+v", tt.line, tt.want, result[tt.line])
		}
	}
}

func TestValidate(t *testing.T) {
	h := newHighlighter(t)
	if err := h.Validate(fixture); err != nil {
		t.Errorf("Validate(valid) = %v", err)
	}
	if err := h.Validate("{\n  name: 'unterminated,\n},"); !errors.Is(err, ErrSyntax) {
		t.Errorf("Validate(invalid) = %v, want ErrSyntax", err)
	}
}

func TestByteOffsetToRuneIndex(t *testing.T) {
	line := []byte("aé b")
	tests := []struct{ in, want int }{
		{-1, 0}, {0, 0}, {1, 1}, {3, 2}, {5, 4}, {99, 4},
	}
	for _, tt := range tests {
		if got := byteOffsetToRuneIndex(line, tt.in); got != tt.want {
			t.Errorf("byteOffsetToRuneIndex(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
