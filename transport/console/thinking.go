package console

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
)

// thinkingPlayer announces a computer player's move and shows the spinner while
// the move is being chosen.
type thinkingPlayer struct {
	service.Player
	terminal *Terminal
}

func newThinkingPlayer(player service.Player, terminal *Terminal) service.Player {
	return &thinkingPlayer{
		Player:   player,
		terminal: terminal,
	}
}

func (that *thinkingPlayer) GetMove(ctx context.Context, board entity.Board, turn entity.Mark) (entity.Move, error) {
	that.terminal.Say(fmt.Sprintf("Making move level %s", that.Name()))

	stop := that.terminal.startSpinner()
	defer stop()

	move, err := that.Player.GetMove(ctx, board, turn)
	if err != nil {
		return entity.Move{}, fmt.Errorf("%s player failed: %w", that.Name(), err)
	}

	return move, nil
}
