package bidding

import (
	"context"
	"fmt"
	"time"
)

// EndedLabel is shown once an auction has closed
const EndedLabel = "Auction ended"

// FormatRemaining renders a remaining duration as "Xh Ym Zs", or EndedLabel
// when nothing remains
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return EndedLabel
	}
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// Countdown emits the remaining time to end on every tick, starting
// immediately. It sends EndedLabel once end is reached and closes the
// channel. Cancelling ctx stops the ticker and closes the channel early.
// The countdown is display only; it never decides whether a bid is accepted.
func Countdown(ctx context.Context, end time.Time, tick time.Duration) <-chan string {
	if tick <= 0 {
		tick = time.Second
	}
	out := make(chan string, 1)

	go func() {
		defer close(out)
		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		for {
			label := FormatRemaining(time.Until(end))
			select {
			case out <- label:
			case <-ctx.Done():
				return
			}
			if label == EndedLabel {
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
