// internal/daily/daily.go
//
// Deterministic date-to-word selection for the daily game.
// The word index for a date is derived from the SHA-256 digest of the
// YYYYMMDD key alone, with no salt or secret, so every process instance
// agrees on the day's answer across restarts and replicas.

package daily

import (
	"crypto/sha256"
	"math/big"
	"time"
)

// Key returns the YYYYMMDD date key for t in UTC.
// The UTC conversion is the day boundary: all callers in whatever local
// zone roll over to the next word at midnight UTC.
func Key(t time.Time) string {
	return t.UTC().Format("20060102")
}

// WordIndex returns a deterministic index in [0, n) for a date key.
// The full digest is interpreted as one big-endian integer and reduced
// mod n, so the whole hash contributes to the selection.
func WordIndex(dateKey string, n int) int {
	if n <= 0 {
		return 0
	}
	sum := sha256.Sum256([]byte(dateKey))
	v := new(big.Int).SetBytes(sum[:])
	return int(v.Mod(v, big.NewInt(int64(n))).Int64())
}
