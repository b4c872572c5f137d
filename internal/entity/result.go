package entity

import "fmt"

const (
	StatusOngoing = "ongoing"
	StatusWin     = "win"
	StatusDraw    = "draw"
)

// GameResult classifies a board. It is derived from the cells on demand and never stored.
type GameResult struct {
	Status string `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func Ongoing() GameResult {
	return GameResult{Status: StatusOngoing}
}

func Win(mark Mark) GameResult {
	return GameResult{Status: StatusWin, Winner: mark}
}

func Draw() GameResult {
	return GameResult{Status: StatusDraw}
}

func (that GameResult) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that GameResult) IsWin() bool {
	return that.Status == StatusWin
}

func (that GameResult) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that GameResult) IsFinished() bool {
	return that.IsWin() || that.IsDraw()
}

func (that GameResult) String() string {
	switch that.Status {
	case StatusWin:
		return fmt.Sprintf("%s wins", that.Winner)
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}
