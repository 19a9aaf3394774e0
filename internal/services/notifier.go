package services

import "sync"

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notifier receives fire-and-forget messages for the presentation layer.
type Notifier interface {
	Notify(message string, kind NotificationKind)
}

type NotifierFunc func(message string, kind NotificationKind)

func (f NotifierFunc) Notify(message string, kind NotificationKind) { f(message, kind) }

// Notifiers fans a notification out to every member.
type Notifiers []Notifier

func (ns Notifiers) Notify(message string, kind NotificationKind) {
	for _, n := range ns {
		if n != nil {
			n.Notify(message, kind)
		}
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, NotificationKind) {}

type Notification struct {
	Message string
	Kind    NotificationKind
}

// NotificationQueue buffers notifications until the presentation layer drains
// them after handling an intent.
type NotificationQueue struct {
	mu    sync.Mutex
	items []Notification
}

func NewNotificationQueue() *NotificationQueue {
	return &NotificationQueue{}
}

func (q *NotificationQueue) Notify(message string, kind NotificationKind) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, Notification{Message: message, Kind: kind})
}

func (q *NotificationQueue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}
