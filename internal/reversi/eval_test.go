package reversi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreMatrix_Symmetry(t *testing.T) {
	// The matrix must be symmetric under the board's 4-fold symmetry.
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			require.Equal(t, scoreMatrix[i][j], scoreMatrix[j][i])
			require.Equal(t, scoreMatrix[i][j], scoreMatrix[Size-1-i][j])
			require.Equal(t, scoreMatrix[i][j], scoreMatrix[i][Size-1-j])
		}
	}
}

func TestScoreMatrix_CornersDominate(t *testing.T) {
	corner := scoreMatrix[0][0]
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if (i == 0 || i == Size-1) && (j == 0 || j == Size-1) {
				continue
			}
			require.Greater(t, corner, scoreMatrix[i][j])
		}
	}
}

func TestScorePlacement(t *testing.T) {
	t.Run("start position", func(t *testing.T) {
		// All four center slots weigh 50; the human counts 1.5x.
		board := NewBoard(Human)
		require.InDelta(t, 100-1.5*100, scorePlacement(board), 1e-9)
	})

	t.Run("machine corner", func(t *testing.T) {
		board, err := NewBoardFromString("O" + strings.Repeat(".", 63) + "-h")
		require.NoError(t, err)
		require.InDelta(t, 9999, scorePlacement(board), 1e-9)
	})

	t.Run("human corner", func(t *testing.T) {
		board, err := NewBoardFromString("X" + strings.Repeat(".", 63) + "-h")
		require.NoError(t, err)
		require.InDelta(t, -1.5*9999, scorePlacement(board), 1e-9)
	})
}

func TestScoreMobility_StartPosition(t *testing.T) {
	// Both players have 4 moves and 4 stones are on the board:
	// 64/4 * (3*4 - 4*4) = -64.
	board := NewBoard(Human)
	require.InDelta(t, -64, scoreMobility(board), 1e-9)
}

func TestScorePotential_StartPosition(t *testing.T) {
	// Each player's two tiles expose 10 empty neighbors:
	// 64/8 * (2.5*10 - 3*10) = -40.
	board := NewBoard(Human)
	require.Equal(t, 10, board.potential(Machine))
	require.Equal(t, 10, board.potential(Human))
	require.InDelta(t, -40, scorePotential(board), 1e-9)
}

func TestScore_StartPosition(t *testing.T) {
	board := NewBoard(Human)
	require.InDelta(t, -50-64-40, score(board), 1e-9)
}

func TestScore_PrefersMachineTiles(t *testing.T) {
	// A board where the machine flipped a tile scores better for the
	// machine than the mirrored board where the human did.
	machineAhead, err := NewBoardFromString("OOO" + strings.Repeat(".", 61) + "-h")
	require.NoError(t, err)

	humanAhead, err := NewBoardFromString("XXX" + strings.Repeat(".", 61) + "-m")
	require.NoError(t, err)

	require.Greater(t, score(machineAhead), score(humanAhead))
}
