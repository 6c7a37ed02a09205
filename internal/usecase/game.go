package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
)

type GameUseCase interface {
	Play(ctx context.Context, first, second service.Player) (entity.GameState, error)
}

type renderer interface {
	ShowBoard(board entity.Board)
	ShowResult(state entity.GameState)
}

type gameUseCase struct {
	logger   *slog.Logger
	renderer renderer
}

func NewGameUseCase(logger *slog.Logger, renderer renderer) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "game"),
		renderer: renderer,
	}
}

// Play runs one game on a fresh board until it is won or drawn. The first player
// takes X and moves first; each player blocks the loop until it has chosen a move.
func (that *gameUseCase) Play(ctx context.Context, first, second service.Player) (entity.GameState, error) {
	log := that.logger.With("method", "Play", "x", first.Name(), "o", second.Name())

	board := entity.NewBoard()
	turn := entity.NewTurn(entity.MarkX)
	players := map[entity.Mark]service.Player{
		entity.MarkX: first,
		entity.MarkO: second,
	}

	log.Info("game started")
	that.renderer.ShowBoard(board)

	for {
		state := board.State()
		if state.IsTerminal() {
			that.renderer.ShowResult(state)
			log.Info("game finished", "result", state.String(), "board", board.String())

			return state, nil
		}

		if err := ctx.Err(); err != nil {
			return state, fmt.Errorf("game interrupted: %w", err)
		}

		mark := turn.Current()
		player := players[mark]

		move, err := player.GetMove(ctx, board, mark)
		if err != nil {
			log.Error("player failed to move", "player", player.Name(), "error", err)
			return state, fmt.Errorf("player %s failed to move: %w", player.Name(), err)
		}

		if err = board.Place(move.Row, move.Col, mark); err != nil {
			log.Error("player made an invalid move", "player", player.Name(), "move", move.String(), "error", err)
			return state, fmt.Errorf("player %s made an invalid move: %w", player.Name(), err)
		}

		log.Debug("move accepted", "mark", string(mark), "move", move.String())
		that.renderer.ShowBoard(board)
		turn.Toggle()
	}
}
