package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell is empty and the game is in progress
	assert.Equal(t, "_________", board.String())
	assert.Len(t, board.FreeCells(), 9)
	assert.Equal(t, StateInProgress, board.State())
}

func TestBoard_Place(t *testing.T) {
	t.Run("Place marks the cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X is placed in the center
		err := board.Place(1, 1, MarkX)

		// Then: the cell is no longer empty
		require.NoError(t, err)
		assert.False(t, board.IsEmpty(1, 1))
		assert.Equal(t, MarkX, board.Cell(1, 1))
		assert.Equal(t, "____X____", board.String())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with X in the corner
		board := NewBoard()
		require.NoError(t, board.Place(0, 0, MarkX))

		// When: O tries to take the same cell
		err := board.Place(0, 0, MarkO)

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, "X________", board.String())
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		board := NewBoard()

		for _, move := range []Move{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}, {Row: 1, Col: -2}} {
			// When: the coordinates are out of range
			err := board.Place(move.Row, move.Col, MarkX)

			// Then: ErrInvalidCell is returned
			require.ErrorIs(t, err, apperror.ErrInvalidCell, move.String())
		}

		assert.Equal(t, "_________", board.String())
	})

	t.Run("Invalid Mark", func(t *testing.T) {
		board := NewBoard()

		err := board.Place(0, 0, Empty)

		require.ErrorIs(t, err, ErrInvalidMark)
		assert.True(t, board.IsEmpty(0, 0))
	})
}

func TestBoard_ValueSemantics(t *testing.T) {
	// Given: a board and a copy of it
	original := NewBoard()
	require.NoError(t, original.Place(0, 0, MarkX))
	hypothetical := original

	// When: the copy is mutated
	require.NoError(t, hypothetical.Place(2, 2, MarkO))

	// Then: the original is untouched
	assert.Equal(t, "X________", original.String())
	assert.Equal(t, "X_______O", hypothetical.String())
}

func TestBoard_FreeCells(t *testing.T) {
	// Given: a board with a few occupied cells
	board, err := ParseBoard("X_O_X___O")
	require.NoError(t, err)

	// When: the free cells are listed
	free := board.FreeCells()

	// Then: they come in row-major order
	assert.Equal(t, []Move{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
		{Row: 1, Col: 2},
		{Row: 2, Col: 0},
		{Row: 2, Col: 1},
	}, free)
}

func TestBoard_State(t *testing.T) {
	t.Run("Every line wins for both marks", func(t *testing.T) {
		for _, mark := range []Mark{MarkX, MarkO} {
			for _, combo := range WinCombos {
				// Given: a board where only this line is filled with the mark
				board := NewBoard()
				for _, index := range combo {
					move := MoveAt(index)
					require.NoError(t, board.Place(move.Row, move.Col, mark))
				}

				// When: the state is evaluated
				state := board.State()

				// Then: the mark is the winner
				assert.Equal(t, stateFor(mark), state, "line %v", combo)
				assert.Equal(t, mark, state.Winner())
				assert.True(t, state.IsTerminal())
			}
		}
	})

	t.Run("Two of a line is not a win", func(t *testing.T) {
		for _, combo := range WinCombos {
			board := NewBoard()
			for _, index := range combo[:2] {
				move := MoveAt(index)
				require.NoError(t, board.Place(move.Row, move.Col, MarkX))
			}

			assert.Equal(t, StateInProgress, board.State(), "line %v", combo)
		}
	})

	t.Run("Mixed line is not a win", func(t *testing.T) {
		board, err := ParseBoard("XOX______")
		require.NoError(t, err)

		assert.Equal(t, StateInProgress, board.State())
	})

	t.Run("Last cell filled by either mark is a draw", func(t *testing.T) {
		// Given: a board with one free cell that completes no line
		for _, mark := range []Mark{MarkX, MarkO} {
			board, err := ParseBoard("XOXOOX_XO")
			require.NoError(t, err)
			require.Equal(t, StateInProgress, board.State())

			// When: the last cell is filled
			require.NoError(t, board.Place(2, 0, mark))

			// Then: the game is a draw
			assert.Equal(t, StateDraw, board.State())
			assert.Equal(t, Empty, board.State().Winner())
		}
	})

	t.Run("Right column already won by O", func(t *testing.T) {
		board, err := ParseBoard("XXOXOO_XO")
		require.NoError(t, err)

		assert.Equal(t, StateOWins, board.State())
	})

	t.Run("Full board with a line is a win, not a draw", func(t *testing.T) {
		board, err := ParseBoard("XXXOOXOXO")
		require.NoError(t, err)

		assert.Equal(t, StateXWins, board.State())
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		board, err := ParseBoard("X_O_X_O_X")

		require.NoError(t, err)
		assert.Equal(t, "X_O_X_O_X", board.String())
		assert.Equal(t, MarkO, board.Cell(0, 2))
		assert.True(t, board.IsEmpty(0, 1))
	})

	t.Run("Wrong length", func(t *testing.T) {
		_, err := ParseBoard("XO")

		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		_, err := ParseBoard("XO?______")

		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestTurn(t *testing.T) {
	// Given: a turn starting with X
	turn := NewTurn(MarkX)
	assert.Equal(t, MarkX, turn.Current())
	assert.Equal(t, MarkO, turn.Next())

	// When: the turn is toggled twice
	turn.Toggle()
	assert.Equal(t, MarkO, turn.Current())
	turn.Toggle()

	// Then: it is back to X
	assert.Equal(t, MarkX, turn.Current())

	// Then: an invalid first mark falls back to X
	fallback := NewTurn(Empty)
	assert.Equal(t, MarkX, fallback.Current())
}
