package entity

type Mark string

const (
	Empty Mark = ""
	MarkX Mark = "X"
	MarkO Mark = "O"
)

func (that Mark) IsValid() bool {
	return that == MarkX || that == MarkO
}

// Opponent returns the other mark. Empty has no opponent and is returned as is.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// Turn tracks the mark whose move is next.
type Turn struct {
	current Mark
}

// NewTurn starts with the given mark, falling back to X for anything else.
func NewTurn(first Mark) Turn {
	if !first.IsValid() {
		first = MarkX
	}

	return Turn{current: first}
}

func (that *Turn) Current() Mark {
	return that.current
}

func (that *Turn) Next() Mark {
	return that.current.Opponent()
}

func (that *Turn) Toggle() {
	that.current = that.Next()
}
