package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// winScore is the value of winning on the very next ply. Later wins score less,
// so the search prefers faster wins and slower losses. Any win stays above zero.
const winScore = 10

// side is the mark-agnostic cell content the search works with.
type side int8

const (
	none side = iota
	mine
	theirs
)

// position is a grid seen from the side to move, which always plays "mine".
type position [entity.Size * entity.Size]side

func newPosition(board entity.Board, mover entity.Mark) position {
	var pos position
	for i, cell := range board.Cells() {
		switch cell {
		case mover:
			pos[i] = mine
		case mover.Opponent():
			pos[i] = theirs
		}
	}

	return pos
}

func (that position) wins(s side) bool {
	for _, combo := range entity.WinCombos {
		if that[combo[0]] == s && that[combo[1]] == s && that[combo[2]] == s {
			return true
		}
	}

	return false
}

func (that position) full() bool {
	for _, cell := range that {
		if cell == none {
			return false
		}
	}

	return true
}

// flipped hands the move to the opponent.
func (that position) flipped() position {
	for i, cell := range that {
		switch cell {
		case mine:
			that[i] = theirs
		case theirs:
			that[i] = mine
		}
	}

	return that
}

// BestMove returns the game-theoretically optimal move for mover, assuming the
// opponent plays perfectly too. Ties go to the first move in row-major order.
// The board is taken by value and never modified.
func BestMove(board entity.Board, mover entity.Mark) (entity.Move, error) {
	if err := checkSearchable(board, mover); err != nil {
		return entity.Move{}, err
	}

	_, index := negamax(newPosition(board, mover), 0)

	return entity.MoveAt(index), nil
}

// Evaluate returns the outcome of perfect play for mover: 1 for a forced win,
// -1 for a forced loss and 0 for a draw.
func Evaluate(board entity.Board, mover entity.Mark) (int, error) {
	if err := checkSearchable(board, mover); err != nil {
		return 0, err
	}

	score, _ := negamax(newPosition(board, mover), 0)

	switch {
	case score > 0:
		return 1, nil
	case score < 0:
		return -1, nil
	default:
		return 0, nil
	}
}

func checkSearchable(board entity.Board, mover entity.Mark) error {
	if !mover.IsValid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidMark, mover)
	}

	if state := board.State(); state.IsTerminal() {
		return fmt.Errorf("%w: %s", apperror.ErrGameFinished, state)
	}

	return nil
}

// negamax scores pos for the side to move and returns the best cell index.
// pos must have at least one free cell and no completed line.
func negamax(pos position, depth int) (int, int) {
	bestScore, bestIndex := -winScore-1, -1

	for i, cell := range pos {
		if cell != none {
			continue
		}

		child := pos
		child[i] = mine

		var score int
		switch {
		case child.wins(mine):
			score = winScore - depth
		case child.full():
			score = 0
		default:
			opponentScore, _ := negamax(child.flipped(), depth+1)
			score = -opponentScore
		}

		if score > bestScore {
			bestScore, bestIndex = score, i
		}
	}

	return bestScore, bestIndex
}
