package client

import (
	"context"
	"time"
)

// Poll intervals matching the web client's shell: badge counts every
// 30s, the open conversation every 3s.
const (
	DashboardPollInterval = 30 * time.Second
	MessagePollInterval   = 3 * time.Second
)

// PollDashboard fetches badge counts on a fixed interval until ctx is
// cancelled. Fetch errors are swallowed, as polling reads always were.
func (c *Client) PollDashboard(ctx context.Context, fn func(Dashboard)) {
	c.poll(ctx, DashboardPollInterval, func() {
		if d, err := c.GetDashboard(ctx); err == nil {
			fn(*d)
		}
	})
}

// PollMessages refreshes one conversation every 3 seconds while it is
// open; cancel ctx on navigation away.
func (c *Client) PollMessages(ctx context.Context, partnerID uint, fn func([]Message)) {
	c.poll(ctx, MessagePollInterval, func() {
		if msgs, err := c.GetMessages(ctx, partnerID); err == nil {
			fn(msgs)
		}
	})
}

func (c *Client) poll(ctx context.Context, every time.Duration, tick func()) {
	tick()

	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			tick()
		}
	}
}
