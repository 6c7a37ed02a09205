package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// randomPlayer picks uniformly among the free cells.
type randomPlayer struct {
	random *rand.Rand
}

func NewRandomPlayer(random *rand.Rand) Player {
	return &randomPlayer{random: random}
}

func (that *randomPlayer) Name() string {
	return string(KindEasy)
}

func (that *randomPlayer) Kind() Kind {
	return KindEasy
}

func (that *randomPlayer) GetMove(_ context.Context, board entity.Board, _ entity.Mark) (entity.Move, error) {
	return randomFreeCell(that.random, board)
}

func randomFreeCell(random *rand.Rand, board entity.Board) (entity.Move, error) {
	availableCells := board.FreeCells()
	if len(availableCells) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return availableCells[random.IntN(len(availableCells))], nil
}

// heuristicPlayer wins or blocks one ply ahead and otherwise moves at random.
// It does not look for forks.
type heuristicPlayer struct {
	random *rand.Rand
}

func NewHeuristicPlayer(random *rand.Rand) Player {
	return &heuristicPlayer{random: random}
}

func (that *heuristicPlayer) Name() string {
	return string(KindMedium)
}

func (that *heuristicPlayer) Kind() Kind {
	return KindMedium
}

func (that *heuristicPlayer) GetMove(_ context.Context, board entity.Board, turn entity.Mark) (entity.Move, error) {
	if move, found := tictactoe.FindImmediateWin(board, turn); found {
		return move, nil
	}

	if move, found := tictactoe.FindImmediateWin(board, turn.Opponent()); found {
		return move, nil
	}

	return randomFreeCell(that.random, board)
}

// optimalPlayer delegates to the exhaustive search.
type optimalPlayer struct{}

func NewOptimalPlayer() Player {
	return &optimalPlayer{}
}

func (that *optimalPlayer) Name() string {
	return string(KindHard)
}

func (that *optimalPlayer) Kind() Kind {
	return KindHard
}

func (that *optimalPlayer) GetMove(_ context.Context, board entity.Board, turn entity.Mark) (entity.Move, error) {
	move, err := tictactoe.BestMove(board, turn)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to search best move: %w", err)
	}

	return move, nil
}
