package services

import (
	"sync"
	"time"

	"nellis/internal/providers"
	"nellis/internal/structures"
)

type Activity struct {
	Page    string
	Message string
	At      time.Time
}

// ActivityFeed keeps the most recent successful actions across all pages for
// the dashboard. It is a fixed-size ring; the oldest entry is overwritten.
type ActivityFeed struct {
	mu    sync.Mutex
	clock providers.Clock
	items []Activity
	next  int
	full  bool
}

func NewActivityFeed(conf *structures.Config, clock providers.Clock) *ActivityFeed {
	size := conf.Activity.Size
	if size < 1 {
		size = 1
	}
	return &ActivityFeed{clock: clock, items: make([]Activity, size)}
}

// For returns a notifier that records page's success notifications.
func (f *ActivityFeed) For(page string) Notifier {
	return NotifierFunc(func(message string, kind NotificationKind) {
		if kind != NotifySuccess {
			return
		}
		f.add(Activity{Page: page, Message: message, At: f.clock.Now()})
	})
}

func (f *ActivityFeed) add(a Activity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[f.next] = a
	f.next = (f.next + 1) % len(f.items)
	if f.next == 0 {
		f.full = true
	}
}

// Recent returns the recorded activity, newest first.
func (f *ActivityFeed) Recent() []Activity {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := f.next
	if f.full {
		n = len(f.items)
	}
	out := make([]Activity, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, f.items[(f.next-i+len(f.items))%len(f.items)])
	}
	return out
}
