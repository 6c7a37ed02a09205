package entity

type GameState int

const (
	StateInProgress GameState = iota
	StateXWins
	StateOWins
	StateDraw
)

func stateFor(winner Mark) GameState {
	if winner == MarkX {
		return StateXWins
	}

	return StateOWins
}

func (that GameState) IsTerminal() bool {
	return that != StateInProgress
}

// Winner returns the winning mark, or Empty for a draw or an unfinished game.
func (that GameState) Winner() Mark {
	switch that {
	case StateXWins:
		return MarkX
	case StateOWins:
		return MarkO
	default:
		return Empty
	}
}

func (that GameState) String() string {
	switch that {
	case StateXWins:
		return "X wins"
	case StateOWins:
		return "O wins"
	case StateDraw:
		return "Draw"
	default:
		return "Game not finished"
	}
}
