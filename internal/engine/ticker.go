package engine

import "time"

// Ticker delivers one event per frame interval.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type intervalTicker struct {
	t *time.Ticker
}

// NewTicker returns a Ticker backed by time.Ticker.
func NewTicker(interval time.Duration) Ticker {
	return &intervalTicker{t: time.NewTicker(interval)}
}

func (it *intervalTicker) C() <-chan time.Time { return it.t.C }

func (it *intervalTicker) Stop() { it.t.Stop() }
