package delivery

import (
	"fmt"
	"math/rand"
	"time"
)

// TrackingPrefix is the customer-facing prefix on every tracking number.
const TrackingPrefix = "SY"

// GenerateTrackingNumber returns a tracking number of the form
// SY + the low 8 digits of the current unix-millisecond timestamp + a
// zero-padded 3-digit random suffix, e.g. SY67241890042.
//
// Uniqueness is probabilistic only: two calls in the same millisecond collide
// with probability 1/1000. Order creation enforces uniqueness through the
// database constraint and retries on conflict; never assume the generator
// alone is collision-free.
func GenerateTrackingNumber() string {
	millis := time.Now().UnixMilli()
	timestamp := fmt.Sprintf("%d", millis)
	if len(timestamp) > 8 {
		timestamp = timestamp[len(timestamp)-8:]
	}
	suffix := rand.Intn(1000)
	return fmt.Sprintf("%s%s%03d", TrackingPrefix, timestamp, suffix)
}
