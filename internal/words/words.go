// internal/words/words.go
//
// Word list management for the daily game.
//
// Responsibilities:
//   - Load the answer list from an environment-provided file or fall back to
//     the embedded default list.
//   - Normalize entries to uppercase and keep only valid 6-letter words.
//   - Supply the ordered list (Answers) and a Count for diagnostics.
//
// The list is ordered, not a set: the daily selector indexes into it by
// position, so the embedded file must never be reordered.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load the list from that file.
//   2. Otherwise fall back to the embedded default list in `words.txt`.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Constraints:
//   • Words must be exactly 6 alphabetic letters (A–Z).
//   • Lists are normalized to uppercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// WordLength is the fixed letter count for answers and guesses.
const WordLength = 6

//go:embed words.txt
var embeddedWords string

var (
	initOnce   sync.Once
	answers    []string // ordered answer list, uppercase
	initialErr error
)

// Init loads the word list exactly once.
// Returns an error if the list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var list []string

		if path := os.Getenv("WORDS_FILE"); path != "" {
			var err error
			list, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			list = normalizeLines(strings.Split(embeddedWords, "\n"))
		}

		if len(list) == 0 {
			initialErr = errors.New("words: answer list is empty")
			return
		}
		answers = list
	})
	return initialErr
}

// Answers returns the ordered answer list (uppercase).
// Init must have succeeded first; before that the list is nil.
func Answers() []string {
	return answers
}

// Count reports how many answers are loaded.
func Count() int {
	return len(answers)
}

// readWordFile loads one word per line from a file and normalizes it the
// same way as the embedded list.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return normalizeLines(lines), sc.Err()
}

// normalizeLines uppercases and trims raw lines, dropping anything that is
// not a 6-letter A–Z word.
func normalizeLines(lines []string) []string {
	cleaned := lo.Map(lines, func(line string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(line))
	})
	return lo.Filter(cleaned, func(w string, _ int) bool {
		return len(w) == WordLength && isUpperAlpha(w)
	})
}

// isUpperAlpha reports whether s is all uppercase ASCII letters.
func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
