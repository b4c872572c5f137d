package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

const captionOngoing = "Tic Tac Toe"

type botService interface {
	Mark() entity.Mark
	Search(board *entity.Board) (service.SearchResult, error)
}

// GameController owns the board of a single human-vs-computer session and manages turns.
type GameController struct {
	logger *slog.Logger

	id    string
	board *entity.Board
	bot   botService

	human    entity.Player
	computer entity.Player

	computerFirst bool
	turn          entity.Role
}

func NewGameController(logger *slog.Logger, bot botService, computerFirst bool) *GameController {
	id := uuid.NewString()

	that := &GameController{
		logger: logger.With("component", "game", "session", id),

		id:    id,
		board: entity.NewBoard(),
		bot:   bot,

		human:    entity.Player{Role: entity.RoleHuman, Mark: bot.Mark().Opponent()},
		computer: entity.Player{Role: entity.RoleComputer, Mark: bot.Mark()},

		computerFirst: computerFirst,
	}
	that.turn = that.openingRole()

	return that
}

func (that *GameController) ID() string {
	return that.id
}

// MakeTurn applies the human move and, unless it ends the game, the computer's reply.
func (that *GameController) MakeTurn(move entity.Move) (entity.GameResult, error) {
	if result := that.board.Evaluate(); result.IsFinished() {
		return result, apperror.ErrGameFinished
	}

	if that.turn != entity.RoleHuman {
		return that.board.Evaluate(), apperror.ErrNotYourTurn
	}

	if err := that.board.Place(move, that.human.Mark); err != nil {
		return that.board.Evaluate(), fmt.Errorf("human turn rejected: %w", err)
	}

	that.logger.Debug("human moved", "move", move.String(), "mark", that.human.Mark)
	that.turn = entity.RoleComputer

	result := that.board.Evaluate()
	if result.IsFinished() {
		that.finish(result)
		return result, nil
	}

	return that.ComputerTurn()
}

// ComputerTurn lets the engine move for the computer. Asking for it on a finished board is a
// caller bug and surfaces as apperror.ErrNoLegalMove.
func (that *GameController) ComputerTurn() (entity.GameResult, error) {
	if that.turn != entity.RoleComputer {
		return that.board.Evaluate(), apperror.ErrNotYourTurn
	}

	found, err := that.bot.Search(that.board)
	if err != nil {
		return that.board.Evaluate(), fmt.Errorf("computer failed to choose a move: %w", err)
	}

	if err = that.board.Place(found.Move, that.computer.Mark); err != nil {
		return that.board.Evaluate(), fmt.Errorf("computer failed to make turn: %w", err)
	}

	that.logger.Debug("computer moved",
		"move", found.Move.String(), "mark", that.computer.Mark, "score", found.Score, "nodes", found.Nodes)
	that.turn = entity.RoleHuman

	result := that.board.Evaluate()
	if result.IsFinished() {
		that.finish(result)
	}

	return result, nil
}

// Start makes the opening move when the computer plays first.
func (that *GameController) Start() (entity.GameResult, error) {
	if that.turn == entity.RoleComputer && that.board.Evaluate().IsOngoing() {
		return that.ComputerTurn()
	}

	return that.board.Evaluate(), nil
}

// Reset clears the board and starts over.
func (that *GameController) Reset() (entity.GameResult, error) {
	that.board.Reset()
	that.turn = that.openingRole()
	that.logger.Info("game reset")

	return that.Start()
}

// Board returns a copy for rendering.
func (that *GameController) Board() entity.Board {
	return *that.board.Clone()
}

func (that *GameController) Result() entity.GameResult {
	return that.board.Evaluate()
}

func (that *GameController) Turn() entity.Role {
	return that.turn
}

func (that *GameController) Human() entity.Player {
	return that.human
}

func (that *GameController) Computer() entity.Player {
	return that.computer
}

func (that *GameController) Caption() string {
	return Caption(that.board.Evaluate())
}

// Caption renders the window title for a result.
func Caption(result entity.GameResult) string {
	switch {
	case result.IsWin():
		return fmt.Sprintf("%s wins!", result.Winner)
	case result.IsDraw():
		return "DRAW!"
	default:
		return captionOngoing
	}
}

func (that *GameController) openingRole() entity.Role {
	if that.computerFirst {
		return entity.RoleComputer
	}
	return entity.RoleHuman
}

func (that *GameController) finish(result entity.GameResult) {
	that.logger.Info("game finished", "result", result.String())
}
