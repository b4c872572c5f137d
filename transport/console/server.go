package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var errQuit = errors.New("quit requested")

type gameController interface {
	Start() (entity.GameResult, error)
	MakeTurn(move entity.Move) (entity.GameResult, error)
	Reset() (entity.GameResult, error)

	Board() entity.Board
	Caption() string
	Human() entity.Player
}

// DemoFunc plays a computer-vs-computer game, reporting each position to observe.
type DemoFunc func(observe func(board entity.Board, mark entity.Mark)) (entity.GameResult, error)

type Server struct {
	logger *slog.Logger
	game   gameController

	in  io.Reader
	out io.Writer

	demoDelay time.Duration

	handlers map[string]func(cmd command) error
}

func New(logger *slog.Logger, game gameController, in io.Reader, out io.Writer, demoDelay time.Duration) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		game:   game,

		in:  in,
		out: out,

		demoDelay: demoDelay,

		handlers: make(map[string]func(command) error),
	}

	server.handlers[actionTurn] = server.handleTurn
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionQuit] = server.handleQuit

	return server
}

// Start runs the interactive session until the player quits, input ends or ctx is canceled.
func (that *Server) Start(ctx context.Context) error {
	if _, err := that.game.Start(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	if err := that.draw(); err != nil {
		return err
	}

	lines := make(chan string)
	readErrCh := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErrCh <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("Console context canceled, shutting down")
			return nil
		case err := <-readErrCh:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		case line := <-lines:
			err := that.handleLine(line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// RunDemo renders a computer-vs-computer game move by move.
func (that *Server) RunDemo(ctx context.Context, play DemoFunc) error {
	if err := that.print(render(entity.Board{}, tictactoe.Caption(entity.Ongoing()))); err != nil {
		return err
	}

	var writeErr error
	result, err := play(func(board entity.Board, mark entity.Mark) {
		if writeErr != nil {
			return
		}

		writeErr = that.print(fmt.Sprintf("\n%s played\n%s", mark, render(board, board.Evaluate().String())))

		select {
		case <-ctx.Done():
		case <-time.After(that.demoDelay):
		}
	})
	if err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}

	if writeErr != nil {
		return writeErr
	}

	that.logger.Info("demo finished", "result", result.String())

	return that.print(fmt.Sprintf("\n%s\n", tictactoe.Caption(result)))
}

func (that *Server) handleLine(line string) error {
	cmd, err := parseCommand(line)
	if err != nil {
		that.logger.Debug("input ignored", "line", line, "error", err)
		return that.notice(err.Error())
	}

	handler, ok := that.handlers[cmd.action]
	if !ok {
		return that.notice(ErrUnknownCommand.Error())
	}

	return handler(cmd)
}

func (that *Server) handleTurn(cmd command) error {
	_, err := that.game.MakeTurn(cmd.move)
	switch {
	case err == nil:
		return that.draw()
	case errors.Is(err, apperror.ErrInvalidMove):
		return that.notice("cell is already taken")
	case errors.Is(err, apperror.ErrGameFinished):
		return that.notice("game is over, press r to play again")
	case errors.Is(err, apperror.ErrNotYourTurn):
		return that.notice(apperror.ErrNotYourTurn.Error())
	default:
		return fmt.Errorf("failed to make turn: %w", err)
	}
}

func (that *Server) handleReset(_ command) error {
	if _, err := that.game.Reset(); err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	return that.draw()
}

func (that *Server) handleQuit(_ command) error {
	return errQuit
}

func (that *Server) draw() error {
	return that.print(fmt.Sprintf("\n%s\n%s> ", render(that.game.Board(), that.game.Caption()), that.game.Human().Mark))
}

func (that *Server) notice(message string) error {
	return that.print(fmt.Sprintf("%s\n%s> ", message, that.game.Human().Mark))
}

func (that *Server) print(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
