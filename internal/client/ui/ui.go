// Package ui holds the user-facing feedback primitives of the client:
// transient notifications and blocking dialogs.
package ui

import "time"

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// DefaultDuration is how long a notification is meant to stay visible.
const DefaultDuration = 9 * time.Second

// Notification is a transient message such as "Account created.".
type Notification struct {
	Title       string
	Description string
	Status      Status
	Duration    time.Duration
	Closable    bool
}

// Success builds a closable success notification with the default duration.
func Success(title, description string) Notification {
	return Notification{Title: title, Description: description, Status: StatusSuccess, Duration: DefaultDuration, Closable: true}
}

// Failure builds a closable error notification with the default duration.
func Failure(title, description string) Notification {
	return Notification{Title: title, Description: description, Status: StatusError, Duration: DefaultDuration, Closable: true}
}

type Notifier interface {
	Notify(n Notification)
}

// Dialog shows a modal message and returns once the user dismisses it.
type Dialog interface {
	Open(title, body string)
}
