package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type Kind string

const (
	KindUser   Kind = "user"
	KindEasy   Kind = "easy"
	KindMedium Kind = "medium"
	KindHard   Kind = "hard"
)

// Kinds lists every player level in the order they are offered.
var Kinds = []Kind{KindUser, KindEasy, KindMedium, KindHard}

func (that Kind) IsComputer() bool {
	return that == KindEasy || that == KindMedium || that == KindHard
}

// Player produces a move for the mark to move. Implementations only ever return
// an in-range, currently empty cell.
type Player interface {
	Name() string
	Kind() Kind
	GetMove(ctx context.Context, board entity.Board, turn entity.Mark) (entity.Move, error)
}

type PlayerFactory struct {
	random          *rand.Rand
	prompter        Prompter
	allowNamedUsers bool
}

func NewPlayerFactory(random *rand.Rand, prompter Prompter, allowNamedUsers bool) *PlayerFactory {
	return &PlayerFactory{
		random:          random,
		prompter:        prompter,
		allowNamedUsers: allowNamedUsers,
	}
}

// NewPlayer builds a player from its description: one of the Kinds, or any other
// single word as the name of a human player when named users are allowed.
func (that *PlayerFactory) NewPlayer(description string) (Player, error) {
	switch Kind(description) {
	case KindUser:
		return NewHumanPlayer(string(KindUser), that.prompter), nil
	case KindEasy:
		return NewRandomPlayer(that.random), nil
	case KindMedium:
		return NewHeuristicPlayer(that.random), nil
	case KindHard:
		return NewOptimalPlayer(), nil
	}

	if that.allowNamedUsers && description != "" && len(strings.Fields(description)) == 1 {
		return NewHumanPlayer(description, that.prompter), nil
	}

	return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, description)
}
