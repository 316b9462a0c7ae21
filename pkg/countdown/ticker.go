package countdown

import (
	"sync"
	"time"
)

// TickFunc receives the freshly computed breakdown. past is true once the
// target has elapsed; Remaining is zero-valued in that case.
type TickFunc func(r Remaining, past bool)

// Ticker recomputes one countdown once per second and publishes the result
// to its callback. Each displayed countdown owns its own Ticker; there is no
// shared scheduler. Callers must Stop the ticker when the display goes away
// or the target changes, otherwise the goroutine and timer leak.
type Ticker struct {
	stopCh   chan struct{}
	stopOnce sync.Once
}

// Start computes and publishes one value synchronously, then keeps
// publishing on every tick until Stop is called. The callback runs on the
// ticker goroutine after the first call; UI consumers wrap their updates in
// fyne.Do.
func Start(target time.Time, fn TickFunc) *Ticker {
	return start(target, time.Second, fn)
}

func start(target time.Time, interval time.Duration, fn TickFunc) *Ticker {
	t := &Ticker{stopCh: make(chan struct{})}

	r, ok := Until(target, time.Now())
	fn(r, !ok)

	go t.run(target, interval, fn)
	return t
}

// Stop halts future ticks. Safe to call more than once; a stopped ticker
// never invokes its callback again.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopCh)
	})
}

func (t *Ticker) run(target time.Time, interval time.Duration, fn TickFunc) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopCh:
			return
		case now := <-ticker.C:
			// Re-check stop before publishing so a callback never fires
			// after Stop returned on the owning side.
			select {
			case <-t.stopCh:
				return
			default:
			}
			r, ok := Until(target, now)
			fn(r, !ok)
		}
	}
}
