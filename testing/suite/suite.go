package suite

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const maxWaitDuration = 60 * time.Second

// fixed seeds keep the computer players reproducible across runs
const (
	seedHi = 0x5eed
	seedLo = 0x7ac7
)

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Random *rand.Rand
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	return ctx, &Suite{
		T:      t,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Random: Random(),
	}
}

// Random returns a deterministic random source.
func Random() *rand.Rand {
	return rand.New(rand.NewPCG(seedHi, seedLo)) //nolint: gosec // deterministic tests
}

// Board parses a row-major board notation or fails the test.
func Board(t *testing.T, notation string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(notation)
	require.NoError(t, err)

	return board
}

func (that *Suite) Board(notation string) entity.Board {
	that.Helper()

	return Board(that.T, notation)
}
