// internal/game/types.go
//
// Core type definitions for the daily game.
// Defines:
//   - Feedback: per-letter result of a guess (green/yellow/grey).
//   - Status: coarse state of one day's game (in_progress/won/lost).
//   - Attempt and Record: per-token, per-day session state.

package game

import "sync"

// MaxAttempts is the number of guesses a session gets per day.
const MaxAttempts = 5

// Feedback represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "green":  letter is correct and in the correct position.
//   - "yellow": letter exists in the answer but in a different position.
//   - "grey":   letter does not exist in the answer (or is already consumed).
type Feedback string

const (
	FeedbackGreen  Feedback = "green"
	FeedbackYellow Feedback = "yellow"
	FeedbackGrey   Feedback = "grey"
)

// Status is the coarse state of one day's game for one session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Attempt is one scored guess.
type Attempt struct {
	Guess    string     // normalized uppercase guess
	Feedback []Feedback // per-letter result, same length as Guess
}

// Record holds the state of one session's game for one date.
//
// Invariants:
//   - len(Attempts) never exceeds MaxAttempts.
//   - Won implies Finished.
//   - At most one attempt is all green; it is the last one and set Won.
//
// The embedded mutex serializes the whole check-then-mutate sequence for
// this record only, so two tokens never contend on each other's lock.
type Record struct {
	mu sync.Mutex

	Attempts []Attempt
	Finished bool
	Won      bool
}
