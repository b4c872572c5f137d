package service

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	scoreLoss = -1
	scoreDraw = 0
	scoreWin  = 1
)

type BotService interface {
	Mark() entity.Mark
	ChooseMove(board *entity.Board) (entity.Move, error)
	Search(board *entity.Board) (SearchResult, error)
}

// SearchResult describes the move picked by a full minimax search.
type SearchResult struct {
	Move  entity.Move
	Score int
	Nodes int
}

// botService plays mark and scores positions against its opponent with plain minimax:
// no pruning, no depth limit, ties go to the first cell in row-major order.
type botService struct {
	mark     entity.Mark
	opponent entity.Mark
}

func NewBotService(mark entity.Mark) BotService {
	return &botService{
		mark:     mark,
		opponent: mark.Opponent(),
	}
}

func (that *botService) Mark() entity.Mark {
	return that.mark
}

func (that *botService) ChooseMove(board *entity.Board) (entity.Move, error) {
	result, err := that.Search(board)
	if err != nil {
		return entity.Move{}, err
	}

	return result.Move, nil
}

// Search leaves board exactly as it received it.
func (that *botService) Search(board *entity.Board) (SearchResult, error) {
	if status := board.Evaluate(); status.IsFinished() {
		return SearchResult{}, fmt.Errorf("%w: board is %s", apperror.ErrNoLegalMove, status)
	}

	result := SearchResult{Score: math.MinInt}
	found := false

	for _, move := range board.LegalMoves() {
		var value int
		if !board.Speculate(move, that.mark, func() {
			value = that.score(board, that.opponent, &result.Nodes)
		}) {
			continue
		}

		if value > result.Score {
			result.Score = value
			result.Move = move
			found = true
		}
	}

	if !found {
		return SearchResult{}, apperror.ErrNoLegalMove
	}

	return result, nil
}

// score rates board for the bot with side to move next. Terminal checks are made against the
// fixed players, opponent first, and wins are checked before a full board.
func (that *botService) score(board *entity.Board, side entity.Mark, nodes *int) int {
	*nodes++

	switch {
	case board.HasLine(that.opponent):
		return scoreLoss
	case board.HasLine(that.mark):
		return scoreWin
	case board.IsFull():
		return scoreDraw
	}

	maximizing := side == that.mark

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	for _, move := range board.LegalMoves() {
		var value int
		if !board.Speculate(move, side, func() {
			value = that.score(board, side.Opponent(), nodes)
		}) {
			continue
		}

		if maximizing {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}

	return best
}
