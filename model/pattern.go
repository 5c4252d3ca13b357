package model

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	patternLive    = 'O'
	patternLiveAlt = '*'
	patternDead    = '.'
	patternComment = "!"
)

// ParsePattern reads a plaintext pattern into a LiveSet. Each line is a row
// (Y grows downwards) and each rune a column; 'O' or '*' marks a live cell
// and '.' a dead one. Lines starting with '!' are comments. Cells are offset
// by origin.
func ParsePattern(text string, origin Cell) (LiveSet, error) {
	var (
		cells []Cell
		row   int64
	)
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, patternComment) {
			continue
		}
		var col int64
		for _, r := range line {
			switch r {
			case patternLive, patternLiveAlt:
				cells = append(cells, Cell{X: origin.X + col, Y: origin.Y + row})
			case patternDead:
			default:
				return LiveSet{}, errors.Errorf("[ParsePattern] unexpected %q at line %d, column %d", r, lineNo+1, col+1)
			}
			col++
		}
		row++
	}
	return NewLiveSet(cells...), nil
}

// MustParsePattern is like ParsePattern but panics on malformed input.
// Intended for fixtures.
func MustParsePattern(text string, origin Cell) LiveSet {
	s, err := ParsePattern(text, origin)
	if err != nil {
		panic(err)
	}
	return s
}
