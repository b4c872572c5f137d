package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrDemoBots = errors.New("demo needs one bot per mark")

type moveChooser interface {
	Mark() entity.Mark
	ChooseMove(board *entity.Board) (entity.Move, error)
}

// PlayDemo lets two engines play each other from an empty board, X first. observe, if set, is
// called after every move with the position and the mark that just moved.
func PlayDemo(first, second moveChooser, observe func(board entity.Board, mark entity.Mark)) (entity.GameResult, error) {
	bots := map[entity.Mark]moveChooser{
		first.Mark():  first,
		second.Mark(): second,
	}

	if bots[entity.PlayerX] == nil || bots[entity.PlayerO] == nil {
		return entity.GameResult{}, ErrDemoBots
	}

	board := entity.NewBoard()
	mark := entity.PlayerX

	for board.Evaluate().IsOngoing() {
		move, err := bots[mark].ChooseMove(board)
		if err != nil {
			return board.Evaluate(), fmt.Errorf("%s failed to choose a move: %w", mark, err)
		}

		if err = board.Place(move, mark); err != nil {
			return board.Evaluate(), fmt.Errorf("%s failed to make turn: %w", mark, err)
		}

		if observe != nil {
			observe(*board.Clone(), mark)
		}

		mark = mark.Opponent()
	}

	return board.Evaluate(), nil
}
