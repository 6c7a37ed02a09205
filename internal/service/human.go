package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	coordinatesPrompt = "Enter the coordinates: > "

	msgNotNumbers = "You should enter numbers!"
	msgOutOfRange = "Coordinates should be from 1 to 3!"
	msgOccupied   = "This cell is occupied! Choose another one!"
)

// Prompter is the console side of a human player.
type Prompter interface {
	// Prompt shows prompt and blocks until a line of input is read.
	Prompt(ctx context.Context, prompt string) (string, error)
	Say(message string)
}

type humanPlayer struct {
	name     string
	prompter Prompter
}

func NewHumanPlayer(name string, prompter Prompter) Player {
	return &humanPlayer{
		name:     name,
		prompter: prompter,
	}
}

func (that *humanPlayer) Name() string {
	return that.name
}

func (that *humanPlayer) Kind() Kind {
	return KindUser
}

// GetMove asks for 1-based "row col" coordinates until a free cell is entered.
func (that *humanPlayer) GetMove(ctx context.Context, board entity.Board, _ entity.Mark) (entity.Move, error) {
	for {
		line, err := that.prompter.Prompt(ctx, coordinatesPrompt)
		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to read coordinates: %w", err)
		}

		move, message := parseCoordinates(line)
		if message == "" && !board.IsEmpty(move.Row, move.Col) {
			message = msgOccupied
		}

		if message != "" {
			that.prompter.Say(message)
			continue
		}

		return move, nil
	}
}

// parseCoordinates returns the zero-based move, or the message to show the user.
func parseCoordinates(line string) (entity.Move, string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Move{}, msgNotNumbers
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, msgNotNumbers
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, msgNotNumbers
	}

	move := entity.Move{Row: row - 1, Col: col - 1}
	if !move.InRange() {
		return entity.Move{}, msgOutOfRange
	}

	return move, ""
}
