package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/console"
)

// RunApp - runs the application on the process stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			logger.With("component", "app").Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run wires the engine, the session and the console, then runs the configured mode.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	bot := service.NewBotService(conf.Computer())
	gameController := tictactoe.NewGameController(logger, bot, conf.ComputerFirst)
	consoleServer := console.New(logger, gameController, in, out, conf.DemoDelay)

	switch conf.Mode {
	case config.ModeDemo:
		log.Info("Starting demo")
		opponent := service.NewBotService(conf.Human())
		if err := consoleServer.RunDemo(ctx, func(observe func(entity.Board, entity.Mark)) (entity.GameResult, error) {
			return tictactoe.PlayDemo(bot, opponent, observe)
		}); err != nil {
			return fmt.Errorf("console demo error: %w", err)
		}
	default:
		log.Info("Starting game", "session", gameController.ID(), "human", conf.Human(), "computer", conf.Computer())
		if err := consoleServer.Start(ctx); err != nil {
			return fmt.Errorf("console server error: %w", err)
		}
	}

	log.Info("Application finished, shutting down")

	return nil
}
