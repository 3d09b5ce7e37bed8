package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"reversi/internal/reversi"
)

// Session is one game between the human and the machine. It owns the
// live board and the history of board states, so that human moves can
// be undone together with the machine replies they triggered.
type Session struct {
	id    string
	level int

	// history holds every board state since the start position, the
	// start position itself included. The last entry is the live board.
	history []reversi.Board

	// movers records which player produced each history entry after the
	// first, parallel to history[1:].
	movers []reversi.Player
}

// New creates a session starting from the given first player.
func New(firstPlayer reversi.Player) *Session {
	return NewWithBoard(reversi.NewBoard(firstPlayer))
}

// NewWithBoard creates a session starting from a custom board. This
// allows starting mid-game for debugging and tests.
func NewWithBoard(board reversi.Board) *Session {
	s := &Session{
		id:    uuid.New().String(),
		level: board.Level(),
	}
	s.history = []reversi.Board{board}

	log.Debug().Str("session", s.id).Stringer("first_player", board.FirstPlayer()).Msg("new game")
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Board returns the live board.
func (s *Session) Board() reversi.Board {
	return s.history[len(s.history)-1]
}

// SetLevel changes the machine's search level for this and all following
// boards of the session.
func (s *Session) SetLevel(level int) error {
	board, err := s.Board().SetLevel(level)
	if err != nil {
		return err
	}

	s.level = level
	s.history[len(s.history)-1] = board
	return nil
}

// Move executes a human move on the live board. ok reports whether the
// move was accepted; a rejected move leaves the session untouched.
func (s *Session) Move(row, col int) (ok bool, err error) {
	board, ok, err := s.Board().Move(row, col)
	if err != nil || !ok {
		return ok, err
	}

	s.push(board, reversi.Human)
	return true, nil
}

// MachineMove lets the machine answer on the live board.
func (s *Session) MachineMove() error {
	board, err := s.Board().MachineMove()
	if err != nil {
		return err
	}

	s.push(board, reversi.Machine)
	return nil
}

// Undo takes back the last human move, including every machine reply
// played since. It fails when no human move has been made yet.
func (s *Session) Undo() error {
	for i := len(s.movers) - 1; i >= 0; i-- {
		if s.movers[i] == reversi.Human {
			s.history = s.history[:i+1]
			s.movers = s.movers[:i]
			return nil
		}
	}

	return fmt.Errorf("%w: no human move to undo", reversi.ErrIllegalState)
}

// Reset starts the session over with the given first player, keeping
// the configured level.
func (s *Session) Reset(firstPlayer reversi.Player) {
	board := reversi.NewBoard(firstPlayer)

	// The level was validated when it was set.
	board, err := board.SetLevel(s.level)
	if err != nil {
		panic(err)
	}

	s.history = []reversi.Board{board}
	s.movers = nil

	log.Debug().Str("session", s.id).Stringer("first_player", firstPlayer).Msg("game reset")
}

func (s *Session) push(board reversi.Board, mover reversi.Player) {
	s.history = append(s.history, board)
	s.movers = append(s.movers, mover)
}
