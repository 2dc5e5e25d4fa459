package countdown

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Tests FormatRemaining
func TestFormatRemaining(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{name: "zero", seconds: 0, want: Expired},
		{name: "negative", seconds: -30, want: Expired},
		{name: "min_int", seconds: math.MinInt64, want: Expired},
		{name: "seconds_only", seconds: 45, want: "45s"},
		{name: "minutes_and_seconds", seconds: 125, want: "2m 5s"},
		{name: "hours_minutes_drop_seconds", seconds: 3661, want: "1h 1m"},
		{name: "hours_and_minutes", seconds: 3*3600 + 12*60 + 9, want: "3h 12m"},
		{name: "days_and_hours", seconds: 2*86400 + 5*3600 + 59, want: "2d 5h"},
		{name: "exact_hour", seconds: 3600, want: "1h"},
		{name: "hour_skips_zero_minutes", seconds: 3601, want: "1h 1s"},
		{name: "hour_and_seconds", seconds: 3605, want: "1h 5s"},
		{name: "exact_day", seconds: 86400, want: "1d"},
		{name: "day_and_second", seconds: 86401, want: "1d 1s"},
		{name: "day_skips_zero_hours", seconds: 86700, want: "1d 5m"},
		{name: "one_second", seconds: 1, want: "1s"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, FormatRemaining(tc.seconds))
		})
	}
}

// Every positive input yields a non-empty string with at most two units
func TestFormatRemaining_Totality(t *testing.T) {
	t.Parallel()

	inputs := []int64{1, 59, 60, 61, 3599, 3600, 86399, 86400, 86401, 31_536_000 * 3, math.MaxInt64}
	for s := int64(1); s < 200_000; s += 997 {
		inputs = append(inputs, s)
	}

	for _, s := range inputs {
		out := FormatRemaining(s)
		require.NotEmpty(t, out, "seconds=%d", s)
		require.NotEqual(t, Expired, out, "seconds=%d", s)
		require.LessOrEqual(t, len(strings.Fields(out)), 2, "seconds=%d out=%q", s, out)
		require.Equal(t, out, FormatRemaining(s), "formatter must be idempotent")
	}
}

func TestFormatRemainingWith(t *testing.T) {
	t.Parallel()

	require.Equal(t, AuctionEnded, FormatRemainingWith(0, AuctionEnded))
	require.Equal(t, Ended, FormatRemainingWith(-1, Ended))
	require.Equal(t, "1s", FormatRemainingWith(1, Ended))
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{-5, "00:00:00"},
		{59, "00:00:59"},
		{3661, "01:01:01"},
		{100 * 3600, "100:00:00"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, FormatClock(tc.seconds))
	}
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, int64(0), Remaining(now.Add(-time.Hour), now))
	require.Equal(t, int64(0), Remaining(now, now))
	require.Equal(t, int64(0), Remaining(now.Add(999*time.Millisecond), now))
	require.Equal(t, int64(1), Remaining(now.Add(1500*time.Millisecond), now))
	require.Equal(t, int64(3661), Remaining(now.Add(3661*time.Second), now))
}
