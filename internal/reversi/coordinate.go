package reversi

// Direction is one of the 8 compass directions usable from a slot.
type Direction int

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// Directions lists all 8 directions in clockwise order starting at Up.
var Directions = [8]Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// offsets holds the row/col deltas per direction, indexed by Direction.
var offsets = [8][2]int{
	{-1, 0},  // Up
	{-1, 1},  // UpRight
	{0, 1},   // Right
	{1, 1},   // DownRight
	{1, 0},   // Down
	{1, -1},  // DownLeft
	{0, -1},  // Left
	{-1, -1}, // UpLeft
}

// Coordinate is a 1-indexed position on the board.
type Coordinate struct {
	Row int
	Col int
}

// Next returns the neighboring coordinate in the given direction. The
// result may lie outside the board; callers check with OnBoard.
func (c Coordinate) Next(d Direction) Coordinate {
	return Coordinate{
		Row: c.Row + offsets[d][0],
		Col: c.Col + offsets[d][1],
	}
}

// OnBoard reports whether the coordinate lies on the game grid.
func (c Coordinate) OnBoard() bool {
	return c.Row >= 1 && c.Row <= Size && c.Col >= 1 && c.Col <= Size
}
