package game

import (
	"fmt"
	"nim/utils"
	"strings"
	"time"
)

type BoardSize int

const (
	Small BoardSize = iota
	Medium
	Large
)

var boardNames = []string{"small", "medium", "large"}

// layout is (pile count, min stones, max stones), bounds inclusive
var boardLayouts = [][3]int{
	{3, 1, 5},
	{4, 2, 7},
	{5, 3, 9},
}

// Layout returns the number of piles and the inclusive stone range of each pile.
func (b BoardSize) Layout() (count, min, max int) {
	l := boardLayouts[b]
	return l[0], l[1], l[2]
}

func (b BoardSize) String() string { return nameOf(boardNames, int(b)) }

func (b *BoardSize) UnmarshalText(text []byte) error {
	return parseName("board size", boardNames, text, (*int)(b))
}

type Mode int

const (
	VsCPU Mode = iota
	TwoPlayer
)

var modeNames = []string{"vs-cpu", "two-player"}

func (m Mode) String() string { return nameOf(modeNames, int(m)) }

type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

var difficultyNames = []string{"easy", "normal", "hard"}

func (d Difficulty) String() string { return nameOf(difficultyNames, int(d)) }

func (d *Difficulty) UnmarshalText(text []byte) error {
	return parseName("difficulty", difficultyNames, text, (*int)(d))
}

// TimeControl is a Fischer clock discipline: a base allotment plus an
// increment credited to the mover after every move.
type TimeControl int

const (
	Classic TimeControl = iota
	Blitz
	Bullet
)

var timeControlNames = []string{"classic", "blitz", "bullet"}

var timeControls = [][2]time.Duration{
	{5 * time.Minute, 5 * time.Second},
	{1 * time.Minute, 2 * time.Second},
	{15 * time.Second, 1 * time.Second},
}

func (tc TimeControl) Base() time.Duration      { return timeControls[tc][0] }
func (tc TimeControl) Increment() time.Duration { return timeControls[tc][1] }

func (tc TimeControl) String() string { return nameOf(timeControlNames, int(tc)) }

func (tc *TimeControl) UnmarshalText(text []byte) error {
	return parseName("time control", timeControlNames, text, (*int)(tc))
}

// Opponent is the menu choice that selects both the mode and the CPU tier.
type Opponent int

const (
	Human Opponent = iota
	CPUEasy
	CPUNormal
	CPUHard
)

var opponentNames = []string{"human", "cpu-easy", "cpu-normal", "cpu-hard"}

func (o Opponent) Mode() Mode {
	if o == Human {
		return TwoPlayer
	}
	return VsCPU
}

// Difficulty is meaningless for Human and reported as Easy.
func (o Opponent) Difficulty() Difficulty {
	return Difficulty(max(0, int(o)-1))
}

func (o Opponent) String() string { return nameOf(opponentNames, int(o)) }

func (o *Opponent) UnmarshalText(text []byte) error {
	return parseName("opponent", opponentNames, text, (*int)(o))
}

// Settings is everything chosen on the menus before a match starts.
type Settings struct {
	Board       BoardSize
	Opponent    Opponent
	TimeControl TimeControl
}

func (s Settings) Mode() Mode             { return s.Opponent.Mode() }
func (s Settings) Difficulty() Difficulty { return s.Opponent.Difficulty() }

func (s Settings) String() string {
	return fmt.Sprintf("%s board, %s, %s", s.Board, s.Opponent, s.TimeControl)
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseName(kind string, names []string, text []byte, target *int) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	if i := utils.FindIndex(names, name); i >= 0 {
		*target = i
		return nil
	}
	return fmt.Errorf("unknown %s %q, expected one of %s", kind, name, strings.Join(names, ", "))
}
