// Package notify hands finished order summaries to the external chat
// channel. Delivery is best-effort: there is no confirmation, and the
// checkout flow always offers manual copy as a fallback.
package notify

import "context"

// Channel delivers a formatted message to an external sink.
type Channel interface {
	Deliver(ctx context.Context, text string) error
}

// Fallback tries the primary channel first and falls back to the secondary
// when the primary fails. Only the secondary's error is surfaced, after the
// primary has already been attempted.
type Fallback struct {
	Primary   Channel
	Secondary Channel
}

// Deliver implements Channel.
func (f Fallback) Deliver(ctx context.Context, text string) error {
	if f.Primary != nil {
		if err := f.Primary.Deliver(ctx, text); err == nil {
			return nil
		}
	}
	if f.Secondary == nil {
		return nil
	}
	return f.Secondary.Deliver(ctx, text)
}

// Recorder keeps the last delivered message in memory. It backs the manual
// copy path and doubles as a test channel.
type Recorder struct {
	Messages []string
	Err      error
}

// Deliver implements Channel.
func (r *Recorder) Deliver(ctx context.Context, text string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Messages = append(r.Messages, text)
	return nil
}
