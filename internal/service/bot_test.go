package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(rows...)
	require.NoError(t, err)

	return board
}

func TestBotService_ChooseMove(t *testing.T) {
	tests := []struct {
		name     string
		mark     entity.Mark
		rows     []string
		expected entity.Move
	}{
		{
			name:     "Blocks the human row",
			mark:     entity.PlayerO,
			rows:     []string{"XX.", ".O.", "..."},
			expected: entity.Move{Row: 0, Col: 2},
		},
		{
			name:     "Takes the win over blocking",
			mark:     entity.PlayerO,
			rows:     []string{"OO.", "XX.", "..."},
			expected: entity.Move{Row: 0, Col: 2},
		},
		{
			name:     "Wins in one even when it is not the first empty cell",
			mark:     entity.PlayerO,
			rows:     []string{"XOX", "XO.", "..."},
			expected: entity.Move{Row: 2, Col: 1},
		},
		{
			name:     "Blocks the anti diagonal",
			mark:     entity.PlayerO,
			rows:     []string{"O.X", ".X.", "..."},
			expected: entity.Move{Row: 2, Col: 0},
		},
		{
			name:     "Plays the centre against a corner opening",
			mark:     entity.PlayerO,
			rows:     []string{"X..", "...", "..."},
			expected: entity.Move{Row: 1, Col: 1},
		},
		{
			name:     "Works for the X side too",
			mark:     entity.PlayerX,
			rows:     []string{"XX.", "OO.", "..."},
			expected: entity.Move{Row: 0, Col: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a bot and a board in the described position
			bot := NewBotService(tt.mark)
			board := mustParse(t, tt.rows...)
			before := board.Clone()

			// When: the bot chooses a move
			move, err := bot.ChooseMove(board)

			// Then: it picks the expected cell and leaves the board untouched
			require.NoError(t, err)
			assert.Equal(t, tt.expected, move)
			assert.Equal(t, before, board)
		})
	}
}

func TestBotService_Search(t *testing.T) {
	t.Run("Empty board explores the whole game tree", func(t *testing.T) {
		// Given: an empty board
		bot := NewBotService(entity.PlayerX)
		board := entity.NewBoard()

		// When: searching for the opening move
		result, err := bot.Search(board)

		// Then: every node below the root is visited and perfect play is a draw
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, result.Move)
		assert.Equal(t, scoreDraw, result.Score)
		assert.Equal(t, 549945, result.Nodes)
		assert.Equal(t, entity.NewBoard(), board)
	})

	t.Run("Reports a forced win", func(t *testing.T) {
		bot := NewBotService(entity.PlayerO)

		result, err := bot.Search(mustParse(t, "OO.", "XX.", "..."))

		require.NoError(t, err)
		assert.Equal(t, scoreWin, result.Score)
	})
}

func TestBotService_NoLegalMove(t *testing.T) {
	t.Run("Full board", func(t *testing.T) {
		// Given: a drawn, full board
		bot := NewBotService(entity.PlayerO)
		board := mustParse(t, "XOX", "XOO", "OXX")

		// When: the bot is asked to move
		_, err := bot.ChooseMove(board)

		// Then: ErrNoLegalMove is returned
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})

	t.Run("Won board with empty cells", func(t *testing.T) {
		bot := NewBotService(entity.PlayerO)
		board := mustParse(t, "XXX", "OO.", "...")

		_, err := bot.ChooseMove(board)

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
		assert.Equal(t, mustParse(t, "XXX", "OO.", "..."), board)
	})
}

func TestBotService_NeverPicksOccupiedCell(t *testing.T) {
	boards := [][]string{
		{"X..", "...", "..."},
		{".X.", "...", "..."},
		{"...", ".X.", "..."},
		{"XO.", ".X.", "..."},
		{"X.O", "...", "..X"},
		{"XOX", ".O.", ".X."},
		{"XOX", "OXO", "O.."},
	}

	bot := NewBotService(entity.PlayerO)
	for _, rows := range boards {
		board := mustParse(t, rows...)

		move, err := bot.ChooseMove(board)

		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, board.Cell(move), "board %v", rows)
	}
}

func TestBotService_SelfPlayDraws(t *testing.T) {
	// Given: two bots, one per mark, and an empty board
	bots := map[entity.Mark]BotService{
		entity.PlayerX: NewBotService(entity.PlayerX),
		entity.PlayerO: NewBotService(entity.PlayerO),
	}
	board := entity.NewBoard()
	mark := entity.PlayerX

	// When: they play each other until the game ends
	for board.Evaluate().IsOngoing() {
		move, err := bots[mark].ChooseMove(board)
		require.NoError(t, err)
		require.NoError(t, board.Place(move, mark))

		mark = mark.Opponent()
	}

	// Then: perfect play ends in a draw
	assert.Equal(t, entity.Draw(), board.Evaluate())
	assert.Equal(t, mustParse(t, "XXO", "OOX", "XOX"), board)
}
