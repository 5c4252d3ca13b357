package model

import "fmt"

// Cell is a position on the unbounded grid.
type Cell struct {
	X, Y int64
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Neighbors returns the 8 Moore neighbors of c, never c itself.
func (c Cell) Neighbors() [8]Cell {
	var (
		out [8]Cell
		i   int
	)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue // Skip the cell itself
			}
			out[i] = Cell{X: c.X + dx, Y: c.Y + dy}
			i++
		}
	}
	return out
}

// Neighborhood returns the Moore neighborhood of c as a set
func Neighborhood(c Cell) LiveSet {
	neighbors := c.Neighbors()
	return NewLiveSet(neighbors[:]...)
}
