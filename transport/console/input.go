package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	actionTurn  = "turn"
	actionReset = "reset"
	actionQuit  = "quit"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrOutsideBoard   = errors.New("cell is outside the board")
)

type command struct {
	action string
	move   entity.Move
}

// parseCommand reads "r", "q" or a 1-based "<row> <col>" pair. Cells off the grid are
// rejected here and never reach the board.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))

	switch {
	case len(fields) == 1 && (fields[0] == "r" || fields[0] == "reset"):
		return command{action: actionReset}, nil
	case len(fields) == 1 && (fields[0] == "q" || fields[0] == "quit"):
		return command{action: actionQuit}, nil
	case len(fields) != 2:
		return command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return command{}, fmt.Errorf("%w: row %q", ErrUnknownCommand, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return command{}, fmt.Errorf("%w: column %q", ErrUnknownCommand, fields[1])
	}

	move := entity.Move{Row: row - 1, Col: col - 1}
	if !move.InBounds() {
		return command{}, fmt.Errorf("%w: %d %d", ErrOutsideBoard, row, col)
	}

	return command{action: actionTurn, move: move}, nil
}
