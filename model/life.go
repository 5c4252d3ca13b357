package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// LiveNeighborCount returns how many of c's neighbors are live. Whether c
// itself is live does not matter.
func LiveNeighborCount(c Cell, live LiveSet) int {
	count := 0
	for _, n := range c.Neighbors() {
		if live.Contains(n) {
			count++
		}
	}
	return count
}

// CandidateDeadCells returns every dead cell adjacent to at least one live
// cell. These are the only cells that can be born on the next tick.
func CandidateDeadCells(live LiveSet) LiveSet {
	m := make(map[Cell]struct{}, live.Len()*2)
	for c := range live.cells {
		for _, n := range c.Neighbors() {
			if !live.Contains(n) {
				m[n] = struct{}{}
			}
		}
	}
	return fromMap(m)
}

// Survivors returns the live cells that stay alive on the next tick
func Survivors(live LiveSet) LiveSet {
	m := make(map[Cell]struct{}, live.Len())
	for c := range live.cells {
		if rules.StayAlive(LiveNeighborCount(c, live)) {
			m[c] = struct{}{}
		}
	}
	return fromMap(m)
}

// Births returns the dead cells that come alive on the next tick
func Births(live LiveSet) LiveSet {
	m := make(map[Cell]struct{})
	for c := range CandidateDeadCells(live).cells {
		if rules.ComeAlive(LiveNeighborCount(c, live)) {
			m[c] = struct{}{}
		}
	}
	return fromMap(m)
}

// Tick returns the next generation of live. The input is left untouched.
func Tick(live LiveSet) LiveSet {
	return Survivors(live).Union(Births(live))
}

// IsStillLife reports whether live is unchanged by a tick
func IsStillLife(live LiveSet) bool {
	return Tick(live).Equal(live)
}

// TickParallel calculates the same generation as Tick, spreading the
// inspected cells over workers goroutines. workers <= 0 uses every CPU.
func TickParallel(live LiveSet, workers int) LiveSet {
	return tickParallel(live, workers, nil)
}

func tickParallel(live LiveSet, workers int, pool *CellPool) LiveSet {
	if live.Len() == 0 {
		return LiveSet{}
	}

	candidates := CandidateDeadCells(live)
	buf := pool.Get(live.Len() + candidates.Len())
	defer pool.Put(buf)

	for c := range live.cells {
		*buf = append(*buf, c)
	}
	for c := range candidates.cells {
		*buf = append(*buf, c)
	}
	cells := *buf

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var (
		eg             errgroup.Group
		cellsPerWorker = (len(cells) + workers - 1) / workers // Ceiling division
		results        = make([]map[Cell]struct{}, workers)
	)

	for i := range workers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(cells))
		)
		if start >= len(cells) {
			break
		}

		eg.Go(func() error {
			next := make(map[Cell]struct{})
			for _, c := range cells[start:end] {
				if rules.ApplyConwayRules(LiveNeighborCount(c, live), live.Contains(c)) {
					next[c] = struct{}{}
				}
			}
			results[i] = next
			return nil
		})
	}

	// Workers only read shared state and never fail.
	_ = eg.Wait()

	merged := make(map[Cell]struct{}, live.Len())
	for _, next := range results {
		for c := range next {
			merged[c] = struct{}{}
		}
	}
	return fromMap(merged)
}

// NextGeneration calculates the next generation based on configuration
func NextGeneration(live LiveSet, config utils.Config, pool *CellPool) LiveSet {
	if config.UseParallel && live.Len() >= config.ParallelThreshold {
		if !config.UseMemoryPool {
			pool = nil
		}
		return tickParallel(live, config.Workers, pool)
	}
	return Tick(live)
}
