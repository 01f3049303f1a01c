// meta/meta.go
package meta

import "time"

// FRAME is the presentation frame the driver pacing is expressed in.
const FRAME = time.Second / 60

// CPU_DELAY is how long the driver waits before applying a computed CPU move.
const CPU_DELAY = 65 * FRAME

// SETTLE is how long a taken move animates before the turn advances.
const SETTLE = 27 * FRAME

// MAX_STONE_SOUNDS caps the stone-removed sub-events of one take.
const MAX_STONE_SOUNDS = 4

// EXPERIMENT_GAMES is the default number of games per matchup.
const EXPERIMENT_GAMES = 30

// MAX_TURNS bounds a self-play game; Nim always ends well before this.
const MAX_TURNS = 300
