package game

import "fmt"

// Players is the number of seats in a match. Seat 1 is the CPU in VsCPU mode.
const Players = 2

// NoWinner marks an undecided outcome.
const NoWinner = -1

// Move removes Amount stones from the pile at index Pile.
type Move struct {
	Pile   int `json:"pile"`
	Amount int `json:"amount"`
}

func (m Move) String() string {
	return fmt.Sprintf("take %d from pile %d", m.Amount, m.Pile)
}

// Status is what a turn transition left the match in.
type Status int

const (
	Continue Status = iota
	Terminal
)

func (s Status) String() string {
	if s == Terminal {
		return "terminal"
	}
	return "continue"
}
