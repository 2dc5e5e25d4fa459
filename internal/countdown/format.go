package countdown

import (
	"fmt"
	"strconv"
	"time"
)

// Terminal strings used by the different views
const (
	Expired      = "Expired"
	Ended        = "Ended"
	AuctionEnded = "Auction Ended"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Remaining returns the whole seconds left until deadline, never below zero
func Remaining(deadline, now time.Time) int64 {
	d := deadline.Sub(now)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Second)
}

// FormatRemaining renders seconds as the two most significant units, e.g. "2d 5h" or "45s".
func FormatRemaining(seconds int64) string {
	return FormatRemainingWith(seconds, Expired)
}

// FormatRemainingWith is FormatRemaining with a caller-chosen terminal string for seconds <= 0.
// Zero units are skipped, so 3601 renders as "1h 1s" and 86700 as "1d 5m".
func FormatRemainingWith(seconds int64, terminal string) string {
	if seconds <= 0 {
		return terminal
	}

	units := [...]struct {
		value  int64
		suffix string
	}{
		{seconds / secondsPerDay, "d"},
		{seconds % secondsPerDay / secondsPerHour, "h"},
		{seconds % secondsPerHour / secondsPerMinute, "m"},
		{seconds % secondsPerMinute, "s"},
	}

	for i, u := range units {
		if u.value == 0 {
			continue
		}
		out := strconv.FormatInt(u.value, 10) + u.suffix
		for _, next := range units[i+1:] {
			if next.value != 0 {
				out += " " + strconv.FormatInt(next.value, 10) + next.suffix
				break
			}
		}
		return out
	}
	// unreachable for seconds > 0
	return terminal
}

// FormatClock renders the fixed-width HH:MM:SS variant used by the prominent detail countdown.
// Hours are not wrapped into days.
func FormatClock(seconds int64) string {
	if seconds <= 0 {
		return "00:00:00"
	}
	h := seconds / secondsPerHour
	m := seconds % secondsPerHour / secondsPerMinute
	s := seconds % secondsPerMinute

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
