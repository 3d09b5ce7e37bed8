package reversi

// scoreMatrix weighs every slot by its strategic value. Corners dominate
// because a corner tile can never be flipped again; the slots next to a
// corner are dangerous and worth almost nothing.
var scoreMatrix = [Size][Size]int{
	{9999, 5, 500, 200, 200, 500, 5, 9999},
	{5, 1, 50, 150, 150, 50, 1, 5},
	{500, 50, 250, 100, 100, 250, 50, 500},
	{200, 150, 100, 50, 50, 100, 150, 200},
	{200, 150, 100, 50, 50, 100, 150, 200},
	{500, 50, 250, 100, 100, 250, 50, 500},
	{5, 1, 50, 150, 150, 50, 1, 5},
	{9999, 5, 500, 200, 200, 500, 5, 9999},
}

// score rates the board from the machine's point of view: the higher,
// the better for the machine. It combines slot values, mobility and the
// exposure of the opposing frontier.
func score(b Board) float64 {
	return scorePlacement(b) + scoreMobility(b) + scorePotential(b)
}

// scorePlacement sums the matrix values of all occupied slots, counting
// human tiles half as heavy again to punish strong human placements.
func scorePlacement(b Board) float64 {
	machine := 0
	human := 0

	for i := range b.grid {
		for j, cell := range b.grid[i] {
			switch cell {
			case Machine:
				machine += scoreMatrix[i][j]
			case Human:
				human += scoreMatrix[i][j]
			}
		}
	}

	return float64(machine) - 1.5*float64(human)
}

// scoreMobility compares how many moves both players have. The weight
// shrinks as the board fills up: mobility matters most in the opening.
func scoreMobility(b Board) float64 {
	machine := len(b.possibleMoves(Machine))
	human := len(b.possibleMoves(Human))
	stones := b.CountHuman() + b.CountMachine()

	return float64(Size*Size) / float64(stones) * (3.0*float64(machine) - 4.0*float64(human))
}

// scorePotential compares how exposed both frontiers are, counting the
// empty slots around the opposing tiles of each player.
func scorePotential(b Board) float64 {
	machine := b.potential(Machine)
	human := b.potential(Human)
	stones := b.CountHuman() + b.CountMachine()

	return float64(Size*Size) / float64(2*stones) * (2.5*float64(machine) - 3.0*float64(human))
}

// potential counts the empty slots neighboring the tiles of the
// opponent of player.
func (b Board) potential(player Player) int {
	enemy := player.Opponent()

	counter := 0
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			if b.grid[row-1][col-1] != enemy {
				continue
			}

			c := Coordinate{Row: row, Col: col}
			for _, dir := range Directions {
				next := c.Next(dir)
				if next.OnBoard() && b.grid[next.Row-1][next.Col-1] == Nobody {
					counter++
				}
			}
		}
	}
	return counter
}
