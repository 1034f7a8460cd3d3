package bidding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatRemaining(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "hours_minutes_seconds", d: 2*time.Hour + 5*time.Minute + 9*time.Second, want: "2h 5m 9s"},
		{name: "over_a_day", d: 26*time.Hour + time.Second, want: "26h 0m 1s"},
		{name: "sub_second_truncates", d: 1500 * time.Millisecond, want: "0h 0m 1s"},
		{name: "less_than_a_second", d: 300 * time.Millisecond, want: "0h 0m 0s"},
		{name: "zero", d: 0, want: EndedLabel},
		{name: "negative", d: -time.Minute, want: EndedLabel},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, FormatRemaining(tc.d))
		})
	}
}

func TestCountdown_EndsWithLabel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var labels []string
	for label := range Countdown(ctx, time.Now().Add(200*time.Millisecond), 20*time.Millisecond) {
		labels = append(labels, label)
	}

	require.NotEmpty(t, labels)
	require.Equal(t, EndedLabel, labels[len(labels)-1])
	require.Equal(t, "0h 0m 0s", labels[0])
}

func TestCountdown_AlreadyEnded(t *testing.T) {
	t.Parallel()

	var labels []string
	for label := range Countdown(context.Background(), time.Now().Add(-time.Hour), time.Millisecond) {
		labels = append(labels, label)
	}
	require.Equal(t, []string{EndedLabel}, labels)
}

func TestCountdown_CancelStops(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	ch := Countdown(ctx, time.Now().Add(time.Hour), 5*time.Millisecond)

	first := <-ch
	require.Contains(t, first, "h ")
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}
