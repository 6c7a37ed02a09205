package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
)

const (
	commandPrompt    = "Input command: "
	msgBadParameters = "Bad parameters!"
)

var errExit = errors.New("exit requested")

type uGame interface {
	Play(ctx context.Context, first, second service.Player) (entity.GameState, error)
}

type playerFactory interface {
	NewPlayer(description string) (service.Player, error)
}

// Server is the interactive command loop: "start <player1> <player2>" plays a
// game, "exit" leaves.
type Server struct {
	logger   *slog.Logger
	terminal *Terminal
	players  playerFactory
	uGame    uGame

	handlers map[string]func(ctx context.Context, args []string) error
}

func New(logger *slog.Logger, terminal *Terminal, players playerFactory, uGame uGame) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		terminal: terminal,
		players:  players,
		uGame:    uGame,

		handlers: make(map[string]func(context.Context, []string) error),
	}

	server.handlers["start"] = server.handleStart
	server.handlers["exit"] = server.handleExit

	return server
}

// Start - reads commands until "exit" or the end of input.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	for {
		line, err := that.terminal.Prompt(ctx, commandPrompt)
		if errors.Is(err, io.EOF) {
			log.Info("input closed")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		err = that.dispatch(ctx, line)
		switch {
		case errors.Is(err, errExit):
			log.Info("exit requested")
			return nil
		case errors.Is(err, apperror.ErrBadParameters):
			log.Debug("rejected command", "command", line, "error", err)
			that.terminal.Say(msgBadParameters)
		case errors.Is(err, io.EOF):
			log.Info("input closed during game")
			return nil
		case err != nil:
			return err
		}
	}
}

// Play runs a single game between the described players; the first one plays X.
func (that *Server) Play(ctx context.Context, first, second string) error {
	firstPlayer, err := that.newPlayer(first)
	if err != nil {
		return err
	}

	secondPlayer, err := that.newPlayer(second)
	if err != nil {
		return err
	}

	if _, err = that.uGame.Play(ctx, firstPlayer, secondPlayer); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func (that *Server) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return apperror.ErrBadParameters
	}

	handler, ok := that.handlers[fields[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", apperror.ErrBadParameters, fields[0])
	}

	return handler(ctx, fields[1:])
}

func (that *Server) handleStart(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: start needs two players", apperror.ErrBadParameters)
	}

	return that.Play(ctx, args[0], args[1])
}

func (that *Server) handleExit(_ context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: exit takes no arguments", apperror.ErrBadParameters)
	}

	return errExit
}

func (that *Server) newPlayer(description string) (service.Player, error) {
	player, err := that.players.NewPlayer(description)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrBadParameters, err)
	}

	if player.Kind().IsComputer() {
		return newThinkingPlayer(player, that.terminal), nil
	}

	return player, nil
}
