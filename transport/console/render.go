package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const separator = "  ---+---+---\n"

// render draws the caption and grid with 1-based row and column labels.
func render(board entity.Board, caption string) string {
	var sb strings.Builder

	sb.WriteString(caption)
	sb.WriteString("\n\n")
	sb.WriteString("   1   2   3\n")

	for row := 0; row < entity.BoardSize; row++ {
		cells := make([]string, 0, entity.BoardSize)
		for col := 0; col < entity.BoardSize; col++ {
			mark := board.Cell(entity.Move{Row: row, Col: col})
			if mark == entity.EmptyCell {
				mark = " "
			}
			cells = append(cells, string(mark))
		}

		fmt.Fprintf(&sb, "%d  %s\n", row+1, strings.Join(cells, " | "))
		if row < entity.BoardSize-1 {
			sb.WriteString(separator)
		}
	}

	return sb.String()
}
