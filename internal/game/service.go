// internal/game/service.go
//
// Game orchestration for the daily word game.
// Responsibilities:
//   - Resolve the current UTC date key and its deterministic answer.
//   - Serve read-only status snapshots for a session.
//   - Validate and apply guesses, driving the state transitions
//     in_progress → won/lost.
//
// Notes:
//   - Sessions are identified by an opaque token; issuing tokens is the
//     transport's job.
//   - Each record's mutex is held across the whole read-check-mutate
//     sequence, so concurrent guesses from one session serialize while
//     other sessions proceed untouched.
//   - A finished day short-circuits before guess validation: a malformed
//     guess after the game ends still gets the finished reply and mutates
//     nothing.

package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/robalobadob/wordtide/internal/daily"
	"github.com/robalobadob/wordtide/internal/words"
)

// ErrInvalidGuess rejects guesses that are not exactly six letters after
// trimming and uppercasing.
var ErrInvalidGuess = errors.New("guess must be exactly 6 letters")

// RecordStore provides per-token, per-date game records.
// Implementations must return the same *Record for repeated calls with the
// same keys and create an empty record on first access.
type RecordStore interface {
	GetOrCreate(token, dateKey string) *Record
}

// Service coordinates answer selection, scoring, and session state.
type Service struct {
	store RecordStore
	now   func() time.Time
}

// NewService constructs a Service over the given record store.
// now supplies the current time; pass nil to use time.Now.
func NewService(store RecordStore, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// StatusView is a snapshot of one session's game for the current day.
type StatusView struct {
	Date         string       `json:"date"`
	Attempts     [][]Feedback `json:"attempts"`
	Guesses      []string     `json:"guesses"`
	AttemptsUsed int          `json:"attempts_used"`
	MaxAttempts  int          `json:"max_attempts"`
	Status       Status       `json:"status"`
	Message      string       `json:"message"`
}

// GuessResult reports the outcome of a single guess submission.
type GuessResult struct {
	Feedback     []Feedback `json:"feedback"`
	AttemptsUsed int        `json:"attempts_used"`
	MaxAttempts  int        `json:"max_attempts"`
	Status       Status     `json:"status"`
	Message      string     `json:"message"`

	// Date and AlreadyFinished inform callers (history recording);
	// they are not part of the wire payload.
	Date            string `json:"-"`
	AlreadyFinished bool   `json:"-"`
}

// Today returns the current UTC date key from the service clock.
func (s *Service) Today() string {
	return daily.Key(s.now())
}

// GetStatus returns the session's current-day snapshot without recording
// anything. First contact of the day lazily creates an empty record.
func (s *Service) GetStatus(token string) StatusView {
	date := daily.Key(s.now())
	answer := answerFor(date)
	rec := s.store.GetOrCreate(token, date)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	st := recordStatus(rec)
	return StatusView{
		Date: date,
		Attempts: lo.Map(rec.Attempts, func(a Attempt, _ int) []Feedback {
			return a.Feedback
		}),
		Guesses: lo.Map(rec.Attempts, func(a Attempt, _ int) string {
			return a.Guess
		}),
		AttemptsUsed: len(rec.Attempts),
		MaxAttempts:  MaxAttempts,
		Status:       st,
		Message:      statusMessage(st, answer),
	}
}

// SubmitGuess validates and scores one guess for the session's current day.
//
// Ordering:
//  1. If the day is already finished, reply with the finished state and do
//     not validate or record anything.
//  2. Otherwise normalize the guess (trim, uppercase) and reject anything
//     that is not exactly six A–Z letters with ErrInvalidGuess; rejected
//     guesses consume no attempt.
//  3. Score the guess, append the attempt, and finish the day on an
//     all-green result or on the fifth attempt.
func (s *Service) SubmitGuess(token, rawGuess string) (GuessResult, error) {
	date := daily.Key(s.now())
	answer := answerFor(date)
	rec := s.store.GetOrCreate(token, date)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.Finished {
		return GuessResult{
			Feedback:        []Feedback{},
			AttemptsUsed:    len(rec.Attempts),
			MaxAttempts:     MaxAttempts,
			Status:          recordStatus(rec),
			Message:         "Game already finished for today.",
			Date:            date,
			AlreadyFinished: true,
		}, nil
	}

	guess := strings.ToUpper(strings.TrimSpace(rawGuess))
	if len(guess) != words.WordLength || !isUpperAlpha(guess) {
		return GuessResult{}, ErrInvalidGuess
	}

	fb := Score(answer, guess)
	rec.Attempts = append(rec.Attempts, Attempt{Guess: guess, Feedback: fb})

	res := GuessResult{
		Feedback:     fb,
		AttemptsUsed: len(rec.Attempts),
		MaxAttempts:  MaxAttempts,
		Date:         date,
	}
	switch {
	case allGreen(fb):
		rec.Finished, rec.Won = true, true
		res.Status = StatusWon
		res.Message = "Correct! 🎉"
	case len(rec.Attempts) >= MaxAttempts:
		rec.Finished = true
		res.Status = StatusLost
		res.Message = fmt.Sprintf("No attempts left. The word was %s.", answer)
	default:
		res.Status = StatusInProgress
		res.Message = "Good try! Keep going."
	}
	return res, nil
}

// answerFor returns the deterministic answer for a date key,
// or "" when no words are loaded.
func answerFor(dateKey string) string {
	answers := words.Answers()
	if len(answers) == 0 {
		return ""
	}
	return answers[daily.WordIndex(dateKey, len(answers))]
}

// recordStatus derives the coarse status from record flags.
func recordStatus(rec *Record) Status {
	switch {
	case rec.Won:
		return StatusWon
	case rec.Finished:
		return StatusLost
	default:
		return StatusInProgress
	}
}

// statusMessage is the fixed human-readable line for a status snapshot.
func statusMessage(st Status, answer string) string {
	switch st {
	case StatusWon:
		return "You won! 🎉"
	case StatusLost:
		return fmt.Sprintf("Out of attempts. The word was %s.", answer)
	default:
		return "Make your guess!"
	}
}
