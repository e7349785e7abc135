// internal/game/score.go
//
// Guess scoring for the daily game, using the classic two-pass algorithm
// so repeated letters in guess and answer resolve correctly.

package game

// Score evaluates guess against answer and returns per-letter feedback.
// Both strings must be uppercase A–Z of equal length; callers validate
// before scoring.
//
// Pass 1:
//   - Mark exact matches green.
//   - Count remaining (non-green) answer letters by letter index.
//
// Pass 2:
//   - For each non-green guess letter: if there is remaining count for that
//     letter, mark yellow and decrement; otherwise mark grey.
func Score(answer, guess string) []Feedback {
	n := len(guess)
	res := make([]Feedback, n)

	// Letter frequency for the non-green positions (A–Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = FeedbackGreen
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == FeedbackGreen {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = FeedbackYellow
			counts[j]--
		} else {
			res[i] = FeedbackGrey
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25.
// Out-of-range bytes map outside [0,26) and are treated as absent.
func idx(b byte) int { return int(b) - 'A' }

// allGreen returns true if every letter scored green.
func allGreen(fb []Feedback) bool {
	for _, f := range fb {
		if f != FeedbackGreen {
			return false
		}
	}
	return true
}

// isUpperAlpha checks that a string consists only of uppercase A–Z.
func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
