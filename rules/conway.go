package rules

// StayAlive reports whether a live cell with the given number of live
// neighbors survives. Fewer than two dies of under-population, more than
// three dies of overcrowding.
func StayAlive(neighbors int) bool {
	return neighbors == 2 || neighbors == 3
}

// ComeAlive reports whether a dead cell with the given number of live
// neighbors is born.
func ComeAlive(neighbors int) bool {
	return neighbors == 3
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return StayAlive(neighbors)
	}
	return ComeAlive(neighbors)
}
