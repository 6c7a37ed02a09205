package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

// RunApp - runs the interactive command loop, or a single game when two player
// descriptions are given.
func RunApp(logger *slog.Logger, conf *config.Config, players ...string) error {
	log := logger.With("component", "app")

	// SIGINT keeps its default behavior: a read from the terminal cannot be interrupted.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	seed := conf.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
	}
	log.Debug("random source initialized", "seed", seed)

	interactive := console.IsInteractive(os.Stdout)
	terminal := console.NewTerminal(os.Stdin, os.Stdout, console.Options{
		Colored: interactive,
		Spinner: interactive && !conf.DisableSpinner,
	})

	random := rand.New(rand.NewPCG(seed, seed)) //nolint: gosec // game moves, not secrets
	playerFactory := service.NewPlayerFactory(random, terminal, conf.AllowNamedUsers)
	gameUseCase := usecase.NewGameUseCase(logger, terminal)
	server := console.New(logger, terminal, playerFactory, gameUseCase)

	switch len(players) {
	case 0:
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("console error: %w", err)
		}
	case 2:
		if err := server.Play(ctx, players[0], players[1]); err != nil {
			return fmt.Errorf("failed to play game: %w", err)
		}
	default:
		return fmt.Errorf("expected two players, got %d", len(players))
	}

	log.Info("application finished")

	return nil
}
