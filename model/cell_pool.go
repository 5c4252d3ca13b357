package model

import "sync"

// CellPool recycles the scratch cell buffers used by parallel ticks.
// A nil *CellPool is valid and allocates fresh buffers.
type CellPool struct {
	pool sync.Pool
}

func NewCellPool() *CellPool {
	return &CellPool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]Cell, 0, 64)
				return &buf
			},
		},
	}
}

// Get retrieves an empty buffer with room for at least capacity cells
func (p *CellPool) Get(capacity int) *[]Cell {
	if p == nil {
		buf := make([]Cell, 0, capacity)
		return &buf
	}
	buf := p.pool.Get().(*[]Cell)
	if cap(*buf) < capacity {
		*buf = make([]Cell, 0, capacity)
	}
	return buf
}

// Put returns a buffer to the pool, clearing its contents
func (p *CellPool) Put(buf *[]Cell) {
	if p == nil || buf == nil {
		return
	}
	*buf = (*buf)[:0]
	p.pool.Put(buf)
}
