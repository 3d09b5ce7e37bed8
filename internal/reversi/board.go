package reversi

import (
	"fmt"
	"strings"
)

const (
	// Size is the number of rows and columns of the game grid.
	Size = 8

	// MinLevel is the lowest accepted search level.
	MinLevel = 1

	// MaxLevel is the highest accepted search level.
	MaxLevel = 5

	// DefaultLevel is the search level of a freshly created board.
	DefaultLevel = 3
)

// Board is one immutable state of a Reversi game between a human and the
// machine. Every accepted move returns a new Board value; an existing
// Board never changes after construction.
type Board struct {
	firstPlayer Player
	next        Player
	level       int
	grid        [Size][Size]Player
	gameOver    bool
}

// NewBoard creates a board holding the starting position, with the given
// player to open the game.
func NewBoard(firstPlayer Player) Board {
	b := Board{
		firstPlayer: firstPlayer,
		next:        firstPlayer,
		level:       DefaultLevel,
	}

	middle := Size/2 - 1
	enemy := firstPlayer.Opponent()
	b.grid[middle][middle] = enemy
	b.grid[middle][middle+1] = firstPlayer
	b.grid[middle+1][middle+1] = enemy
	b.grid[middle+1][middle] = firstPlayer

	return b
}

// NewBoardFromString creates a board from a compact textual form: 64
// symbols ('.', 'X' or 'O', whitespace ignored) in row-major order,
// followed by a turn marker "-h" or "-m". The turn holder is also taken
// as the first player, and the level is DefaultLevel. A marker naming a
// player without a legal move is rejected: outside of game over, the
// turn holder can always move. This exists for debugging and tests, it
// is not a save format.
func NewBoardFromString(s string) (Board, error) {
	marker := ""
	if i := strings.LastIndex(s, "-"); i != -1 {
		marker = s[i:]
		s = s[:i]
	}

	var next Player
	switch marker {
	case "-h":
		next = Human
	case "-m":
		next = Machine
	default:
		return Board{}, fmt.Errorf("%w: turn marker must be \"-h\" or \"-m\"", ErrInvalidArgument)
	}

	fields := strings.Fields(s)
	cells := strings.Join(fields, "")
	if len(cells) != Size*Size {
		return Board{}, fmt.Errorf("%w: board must have %d cells, got %d", ErrInvalidArgument, Size*Size, len(cells))
	}

	b := Board{
		firstPlayer: next,
		next:        next,
		level:       DefaultLevel,
	}

	for i, c := range cells {
		var p Player
		switch c {
		case '.':
			p = Nobody
		case 'X':
			p = Human
		case 'O':
			p = Machine
		default:
			return Board{}, fmt.Errorf("%w: invalid cell symbol %q", ErrInvalidArgument, c)
		}
		b.grid[i/Size][i%Size] = p
	}

	humanMoves := len(b.possibleMoves(Human))
	machineMoves := len(b.possibleMoves(Machine))

	switch {
	case humanMoves == 0 && machineMoves == 0:
		b.gameOver = true
		b.next = Nobody
	case next == Human && humanMoves == 0, next == Machine && machineMoves == 0:
		// The turn-advancement rule never hands the turn to a player
		// without a move, so such a marker describes an unreachable state.
		return Board{}, fmt.Errorf("%w: the %s to move has no legal move", ErrInvalidArgument, next)
	}

	return b, nil
}

// FirstPlayer returns the player who opened the game.
func (b Board) FirstPlayer() Player {
	return b.firstPlayer
}

// Next returns the holder of the next turn, or Nobody once the game is
// over.
func (b Board) Next() Player {
	return b.next
}

// Level returns the configured search level.
func (b Board) Level() int {
	return b.level
}

// SetLevel returns a copy of the board with the given search level.
func (b Board) SetLevel(level int) (Board, error) {
	if level < MinLevel || level > MaxLevel {
		return Board{}, fmt.Errorf("%w (%d..%d): %d", ErrLevel, MinLevel, MaxLevel, level)
	}

	b.level = level
	return b, nil
}

// GameOver reports whether neither player can move any more.
func (b Board) GameOver() bool {
	return b.gameOver
}

// Winner returns the player with more tiles, or Nobody on a tie. It must
// only be called once the game is over.
func (b Board) Winner() (Player, error) {
	if !b.gameOver {
		return Nobody, ErrGameNotOver
	}

	human := b.CountHuman()
	machine := b.CountMachine()

	switch {
	case human > machine:
		return Human, nil
	case machine > human:
		return Machine, nil
	default:
		return Nobody, nil
	}
}

// Slot returns the occupant of the given slot, or Nobody if it is empty.
func (b Board) Slot(row, col int) (Player, error) {
	if !(Coordinate{Row: row, Col: col}).OnBoard() {
		return Nobody, fmt.Errorf("%w: (%d, %d)", ErrOffBoard, row, col)
	}

	return b.grid[row-1][col-1], nil
}

// CountHuman returns the number of human tiles on the board.
func (b Board) CountHuman() int {
	return b.count(Human)
}

// CountMachine returns the number of machine tiles on the board.
func (b Board) CountMachine() int {
	return b.count(Machine)
}

func (b Board) count(p Player) int {
	n := 0
	for _, row := range b.grid {
		for _, cell := range row {
			if cell == p {
				n++
			}
		}
	}
	return n
}

// Move executes a human move. If the move breaks the placement rules
// (occupied slot, or no opposing tile enclosed) it is rejected: the
// second return value is false and no board is produced. This is the
// expected answer to a bad guess, not an error.
func (b Board) Move(row, col int) (Board, bool, error) {
	if !(Coordinate{Row: row, Col: col}).OnBoard() {
		return Board{}, false, fmt.Errorf("%w: (%d, %d)", ErrOffBoard, row, col)
	}
	if b.gameOver || b.next != Human {
		return Board{}, false, fmt.Errorf("%w: the game is over or it is not the human's turn", ErrMoveNotAllowed)
	}

	moved, ok := b.makeMove(row, col)
	return moved, ok, nil
}

// MachineMove computes the machine's strongest reply by searching the
// game tree up to the configured level and returns the resulting board.
func (b Board) MachineMove() (Board, error) {
	if b.gameOver || b.next != Machine {
		return Board{}, fmt.Errorf("%w: the game is over or it is not the machine's turn", ErrMoveNotAllowed)
	}

	return searchMove(b), nil
}

// makeMove applies a move of the current turn holder on a copy of the
// board. Rejected moves return ok == false.
func (b Board) makeMove(row, col int) (Board, bool) {
	toFlip := b.tilesToFlip(row, col, b.next)

	if b.grid[row-1][col-1] != Nobody || len(toFlip) == 0 {
		return Board{}, false
	}

	// The receiver is a copy already, the grid is an array value.
	mover := b.next
	b.grid[row-1][col-1] = mover
	for _, c := range toFlip {
		b.grid[c.Row-1][c.Col-1] = mover
	}

	// The turn passes only if the opponent can answer, otherwise the
	// mover keeps it.
	if len(b.possibleMoves(mover.Opponent())) > 0 {
		b.next = mover.Opponent()
	}

	if len(b.possibleMoves(b.next)) == 0 {
		b.gameOver = true
		b.next = Nobody
	}

	return b, true
}

// tilesToFlip scans outward from the given slot in all 8 directions and
// collects the opposing tiles that placing a tile of player there would
// enclose. A run of opposing tiles counts only if it ends on a tile of
// the player.
func (b Board) tilesToFlip(row, col int, player Player) []Coordinate {
	enemy := player.Opponent()
	start := Coordinate{Row: row, Col: col}

	var toFlip []Coordinate
	for _, dir := range Directions {
		var run []Coordinate

		next := start.Next(dir)
		for next.OnBoard() && b.grid[next.Row-1][next.Col-1] == enemy {
			run = append(run, next)
			next = next.Next(dir)
		}

		if next.OnBoard() && b.grid[next.Row-1][next.Col-1] == player {
			toFlip = append(toFlip, run...)
		}
	}

	return toFlip
}

// possibleMoves returns all slots on which player could place a tile, in
// row-major scan order. The order is part of the engine's contract: the
// search breaks score ties by first-generated move.
func (b Board) possibleMoves(player Player) []Coordinate {
	var moves []Coordinate
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			if b.grid[row-1][col-1] == Nobody && len(b.tilesToFlip(row, col, player)) > 0 {
				moves = append(moves, Coordinate{Row: row, Col: col})
			}
		}
	}
	return moves
}

// String returns the grid as a row per line with space-separated cells,
// using '.', 'X' (human) and 'O' (machine).
func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b.grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cell.Symbol())
		}
	}
	return sb.String()
}
