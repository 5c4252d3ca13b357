package model

import (
	"strings"
	"testing"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		origin Cell
		want   LiveSet
	}{
		{"empty", "", Cell{}, NewLiveSet()},
		{"block", "OO\nOO", Cell{1, 1}, NewLiveSet(Cell{1, 1}, Cell{2, 1}, Cell{1, 2}, Cell{2, 2})},
		{"glider with comment", "!Name: Glider\n.O.\n..O\nOOO\n", Cell{}, NewLiveSet(Cell{1, 0}, Cell{2, 1}, Cell{0, 2}, Cell{1, 2}, Cell{2, 2})},
		{"asterisks and crlf", "*.*\r\n", Cell{-5, 0}, NewLiveSet(Cell{-5, 0}, Cell{-3, 0})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePattern(tt.text, tt.origin)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParsePatternRejectsUnknownRunes(t *testing.T) {
	_, err := ParsePattern(".O.\n.X.", Cell{})
	if err == nil {
		t.Fatal("Expected an error for 'X'")
	}
	if !strings.Contains(err.Error(), "line 2, column 2") {
		t.Errorf("Expected position in error, got %q", err.Error())
	}
}

func TestMustParsePatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on malformed pattern")
		}
	}()
	MustParsePattern("?", Cell{})
}

func TestParsedGliderMoves(t *testing.T) {
	glider := MustParsePattern(".O.\n..O\nOOO", Cell{})
	live := glider
	for range 4 {
		live = Tick(live)
	}
	want := MustParsePattern(".O.\n..O\nOOO", Cell{1, 1})
	if !live.Equal(want) {
		t.Errorf("Expected glider shifted by (1,1), got %v", live)
	}
}
