package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against people or the computer",
		Long: heredoc.Docf(`
			Play tic-tac-toe in the terminal.

			Type "start <player1> <player2>" to begin a game and "exit" to quit.
			Players are one of: %s.
			Coordinates are entered as "row column", each from 1 to 3.
		`, kindList()),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			return app.RunApp(logger, conf)
		},
	}

	// global flags
	root.PersistentFlags().String("config", "", "Path to the config file (default: tictactoe/config.yml in the XDG config dirs)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	root.PersistentFlags().Bool("named-users", false, "Accept any name as a human player")
	root.PersistentFlags().Uint64("seed", 0, "Seed for the computer players (0 seeds from the clock)")

	root.AddCommand(Play())

	return root
}

func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play player1 player2",
		Short: "Play a single game and exit",
		Example: heredoc.Doc(`
			$ tictactoe play user hard
			$ tictactoe play easy medium
		`),
		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			return app.RunApp(logger, conf, args[0], args[1])
		},
	}
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}

	conf, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	if cmd.Flags().Changed("named-users") {
		conf.AllowNamedUsers, _ = cmd.Flags().GetBool("named-users")
	}

	if cmd.Flags().Changed("seed") {
		conf.RandomSeed, _ = cmd.Flags().GetUint64("seed")
	}

	return conf, initLogger(conf), nil
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func kindList() string {
	kinds := make([]string, 0, len(service.Kinds))
	for _, kind := range service.Kinds {
		kinds = append(kinds, string(kind))
	}

	return strings.Join(kinds, ", ")
}
