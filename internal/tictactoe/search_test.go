package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
)

func TestBestMove(t *testing.T) {
	testCases := []struct {
		name     string
		board    string
		mover    entity.Mark
		expected entity.Move
	}{
		{name: "Empty board takes the first corner", board: "_________", mover: entity.MarkX, expected: entity.Move{Row: 0, Col: 0}},
		{name: "Takes the immediate win", board: "XX_OO____", mover: entity.MarkX, expected: entity.Move{Row: 0, Col: 2}},
		{name: "Wins instead of blocking", board: "XX_OO____", mover: entity.MarkO, expected: entity.Move{Row: 1, Col: 2}},
		{name: "Blocks the immediate loss", board: "XX__O____", mover: entity.MarkO, expected: entity.Move{Row: 0, Col: 2}},
		{name: "Prefers the faster win", board: "XXOOX_O__", mover: entity.MarkX, expected: entity.Move{Row: 2, Col: 1}},
		{name: "Prefers the slower loss", board: "XO__X____", mover: entity.MarkO, expected: entity.Move{Row: 2, Col: 2}},
		{name: "Converts a won position", board: "X____O___", mover: entity.MarkX, expected: entity.Move{Row: 0, Col: 2}},
		{name: "Answers an edge opening", board: "_X_______", mover: entity.MarkO, expected: entity.Move{Row: 0, Col: 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a board and the mark to move
			board := suite.Board(t, tc.board)

			// When: the best move is searched
			move, err := BestMove(board, tc.mover)

			// Then: the expected move is returned and the board is untouched
			require.NoError(t, err)
			assert.Equal(t, tc.expected, move)
			assert.Equal(t, tc.board, board.String())
		})
	}
}

func TestBestMove_MarkAgnostic(t *testing.T) {
	// Given: the same position with the marks swapped
	board := suite.Board(t, "XX_OO____")
	swapped := suite.Board(t, "OO_XX____")

	// When: each side to move searches
	move, err := BestMove(board, entity.MarkX)
	require.NoError(t, err)
	swappedMove, err := BestMove(swapped, entity.MarkO)
	require.NoError(t, err)

	// Then: the answer does not depend on the literal mark
	assert.Equal(t, move, swappedMove)
}

func TestBestMove_Errors(t *testing.T) {
	t.Run("Terminal board", func(t *testing.T) {
		for _, notation := range []string{"XXXOO____", "XOXOOX_XO", "XOXOOXXXO"} {
			board := suite.Board(t, notation)
			if !board.State().IsTerminal() {
				require.NoError(t, board.Place(2, 0, entity.MarkX))
			}

			_, err := BestMove(board, entity.MarkO)

			require.ErrorIs(t, err, apperror.ErrGameFinished, notation)
		}
	})

	t.Run("Invalid mover", func(t *testing.T) {
		_, err := BestMove(entity.NewBoard(), entity.Empty)

		require.ErrorIs(t, err, entity.ErrInvalidMark)
	})
}

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name     string
		board    string
		mover    entity.Mark
		expected int
	}{
		{name: "Empty board is a draw", board: "_________", mover: entity.MarkX, expected: 0},
		{name: "Corner opening is a draw", board: "X________", mover: entity.MarkO, expected: 0},
		{name: "Edge reply to a corner loses", board: "X____O___", mover: entity.MarkX, expected: 1},
		{name: "Forced loss", board: "XO__X____", mover: entity.MarkO, expected: -1},
		{name: "Immediate win", board: "XX_OO____", mover: entity.MarkO, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := Evaluate(suite.Board(t, tc.board), tc.mover)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, score)
		})
	}
}

func TestBestMove_SelfPlayIsDraw(t *testing.T) {
	// Given: an empty board and X to move
	board := entity.NewBoard()
	turn := entity.NewTurn(entity.MarkX)

	// When: both sides play the best move until the game ends
	for !board.State().IsTerminal() {
		move, err := BestMove(board, turn.Current())
		require.NoError(t, err)
		require.NoError(t, board.Place(move.Row, move.Col, turn.Current()))
		turn.Toggle()
	}

	// Then: perfect play is a draw
	assert.Equal(t, entity.StateDraw, board.State())
}

// TestBestMove_NeverLoses plays the search against every possible opponent line.
func TestBestMove_NeverLoses(t *testing.T) {
	for _, engineMark := range []entity.Mark{entity.MarkX, entity.MarkO} {
		t.Run("engine plays "+string(engineMark), func(t *testing.T) {
			games := 0
			var explore func(board entity.Board, toMove entity.Mark)
			explore = func(board entity.Board, toMove entity.Mark) {
				if state := board.State(); state.IsTerminal() {
					games++
					require.NotEqual(t, engineMark.Opponent(), state.Winner(), board.String())
					return
				}

				if toMove == engineMark {
					move, err := BestMove(board, toMove)
					require.NoError(t, err)
					require.NoError(t, board.Place(move.Row, move.Col, toMove))
					explore(board, toMove.Opponent())
					return
				}

				for _, move := range board.FreeCells() {
					child := board
					require.NoError(t, child.Place(move.Row, move.Col, toMove))
					explore(child, toMove.Opponent())
				}
			}

			explore(entity.NewBoard(), entity.MarkX)
			assert.Positive(t, games)
		})
	}
}
