package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/internal/reversi"
)

func TestNew(t *testing.T) {
	session := New(reversi.Human)

	require.NotEmpty(t, session.ID())
	require.Equal(t, reversi.NewBoard(reversi.Human), session.Board())
}

func TestNewWithBoard(t *testing.T) {
	board, err := reversi.NewBoardFromString("XO......" + strings.Repeat(".", 48) + "XOO.....-h")
	require.NoError(t, err)

	session := NewWithBoard(board)

	require.NotEmpty(t, session.ID())
	require.Equal(t, board, session.Board())

	// The board's level carries over to later resets.
	session.Reset(reversi.Human)
	require.Equal(t, board.Level(), session.Board().Level())
}

func TestSession_IDsAreUnique(t *testing.T) {
	require.NotEqual(t, New(reversi.Human).ID(), New(reversi.Human).ID())
}

func TestSession_SetLevel(t *testing.T) {
	session := New(reversi.Human)

	require.NoError(t, session.SetLevel(5))
	require.Equal(t, 5, session.Board().Level())

	err := session.SetLevel(6)
	require.ErrorIs(t, err, reversi.ErrInvalidArgument)
	require.Equal(t, 5, session.Board().Level())
}

func TestSession_Move(t *testing.T) {
	session := New(reversi.Human)

	t.Run("rejected move leaves the session untouched", func(t *testing.T) {
		before := session.Board()

		ok, err := session.Move(1, 1)
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, before, session.Board())
	})

	t.Run("accepted move advances the board", func(t *testing.T) {
		ok, err := session.Move(4, 3)
		require.NoError(t, err)
		require.True(t, ok)

		require.Equal(t, 4, session.Board().CountHuman())
		require.Equal(t, reversi.Machine, session.Board().Next())
	})

	t.Run("errors pass through", func(t *testing.T) {
		_, err := session.Move(0, 0)
		require.ErrorIs(t, err, reversi.ErrInvalidArgument)
	})
}

func TestSession_MachineMove(t *testing.T) {
	session := New(reversi.Machine)

	require.NoError(t, session.MachineMove())
	require.Equal(t, 4, session.Board().CountMachine())

	// Not the machine's turn any more.
	err := session.MachineMove()
	require.ErrorIs(t, err, reversi.ErrIllegalState)
}

func TestSession_Undo(t *testing.T) {
	session := New(reversi.Human)
	start := session.Board()

	// Nothing to undo yet.
	require.ErrorIs(t, session.Undo(), reversi.ErrIllegalState)

	ok, err := session.Move(4, 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, session.MachineMove())

	// Undo removes the human move and the machine's reply.
	require.NoError(t, session.Undo())
	require.Equal(t, start, session.Board())

	require.ErrorIs(t, session.Undo(), reversi.ErrIllegalState)
}

func TestSession_Reset(t *testing.T) {
	session := New(reversi.Human)
	require.NoError(t, session.SetLevel(5))

	ok, err := session.Move(4, 3)
	require.NoError(t, err)
	require.True(t, ok)

	session.Reset(reversi.Machine)

	board := session.Board()
	require.Equal(t, reversi.Machine, board.FirstPlayer())
	require.Equal(t, reversi.Machine, board.Next())
	require.Equal(t, 2, board.CountHuman())
	require.Equal(t, 2, board.CountMachine())

	// The level survives the reset.
	require.Equal(t, 5, board.Level())

	// And the history starts over.
	require.ErrorIs(t, session.Undo(), reversi.ErrIllegalState)
}
