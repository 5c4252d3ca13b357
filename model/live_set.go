package model

import (
	"cmp"
	"slices"
	"strings"
)

// LiveSet is an immutable set of cells. The zero value is the empty set.
type LiveSet struct {
	cells map[Cell]struct{}
}

// NewLiveSet builds a set from the given cells, dropping duplicates
func NewLiveSet(cells ...Cell) LiveSet {
	m := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		m[c] = struct{}{}
	}
	return LiveSet{cells: m}
}

// fromMap takes ownership of m; callers must not touch it afterwards.
func fromMap(m map[Cell]struct{}) LiveSet {
	return LiveSet{cells: m}
}

// Len returns the number of cells in the set
func (s LiveSet) Len() int {
	return len(s.cells)
}

// Contains reports whether c is in the set
func (s LiveSet) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Cells returns the members ordered by X, then Y.
func (s LiveSet) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells)
	return out
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Union returns the cells in s or other
func (s LiveSet) Union(other LiveSet) LiveSet {
	m := make(map[Cell]struct{}, len(s.cells)+len(other.cells))
	for c := range s.cells {
		m[c] = struct{}{}
	}
	for c := range other.cells {
		m[c] = struct{}{}
	}
	return fromMap(m)
}

// Intersect returns the cells in both s and other
func (s LiveSet) Intersect(other LiveSet) LiveSet {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	m := make(map[Cell]struct{})
	for c := range small.cells {
		if large.Contains(c) {
			m[c] = struct{}{}
		}
	}
	return fromMap(m)
}

// Difference returns the cells in s that are not in other
func (s LiveSet) Difference(other LiveSet) LiveSet {
	m := make(map[Cell]struct{}, len(s.cells))
	for c := range s.cells {
		if !other.Contains(c) {
			m[c] = struct{}{}
		}
	}
	return fromMap(m)
}

// Equal reports whether both sets hold exactly the same cells
func (s LiveSet) Equal(other LiveSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for c := range s.cells {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Bounds is the bounding box of a set of cells
type Bounds struct {
	MinX, MaxX, MinY, MaxY int64
	Valid                  bool
}

// Area returns the number of cells covered by the box
func (b Bounds) Area() int64 {
	if !b.Valid {
		return 0
	}
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}

// Bounds calculates the bounding box of the live cells
func (s LiveSet) Bounds() Bounds {
	var b Bounds
	for c := range s.cells {
		if !b.Valid {
			b = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y, Valid: true}
			continue
		}
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	}
	return b
}

func (s LiveSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, c := range s.Cells() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
