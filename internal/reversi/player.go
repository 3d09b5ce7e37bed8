package reversi

// Player identifies the owner of a tile or the holder of a turn.
type Player int

const (
	// Nobody marks an empty slot. It also serves as the "no player"
	// answer: the winner of a tie, or the turn holder of a finished game.
	Nobody Player = iota

	// Human is the interactive player.
	Human

	// Machine is the engine-controlled player.
	Machine
)

// Opponent returns the opposing player. Nobody has no opponent and maps
// to itself.
func (p Player) Opponent() Player {
	switch p {
	case Human:
		return Machine
	case Machine:
		return Human
	default:
		return Nobody
	}
}

// Symbol returns the fixed board symbol of the player: 'X' for the
// human, 'O' for the machine and '.' for an empty slot.
func (p Player) Symbol() byte {
	switch p {
	case Human:
		return 'X'
	case Machine:
		return 'O'
	default:
		return '.'
	}
}

// String returns the player's name.
func (p Player) String() string {
	switch p {
	case Human:
		return "human"
	case Machine:
		return "machine"
	default:
		return "nobody"
	}
}
