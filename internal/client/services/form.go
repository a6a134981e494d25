package services

import (
	"context"
	"errors"
	"sync"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/client"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/router"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/session"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/ui"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/logging"
)

// FallbackMessage is shown when a failure carries no server message.
const FallbackMessage = "Something went wrong. Try again."

// Outcome is the result of one form submission.
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	OutcomeInvalidEmail
	OutcomePasswordTooShort
	OutcomePasswordMismatch
	OutcomePasswordMissing
	OutcomeFailed
	OutcomeBusy
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeInvalidEmail:
		return "invalid email"
	case OutcomePasswordTooShort:
		return "password too short"
	case OutcomePasswordMismatch:
		return "password mismatch"
	case OutcomePasswordMissing:
		return "password missing"
	case OutcomeFailed:
		return "failed"
	case OutcomeBusy:
		return "busy"
	}
	return "unknown"
}

// State of the submit affordance.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

// Deps are the collaborators shared by the auth forms.
type Deps struct {
	API      client.Client
	Store    session.Store
	Nav      router.Navigator
	Notifier ui.Notifier
	Dialog   ui.Dialog
	Log      logging.Logger

	// Progress, when set, is told about every affordance change.
	Progress func(state State, label string)
}

type formText struct {
	idleLabel    string
	busyLabel    string
	successTitle string
	successBody  string
	failureTitle string
}

// form is the submit machinery common to signup and login:
// Idle -> Submitting -> Idle.
type form struct {
	Deps
	text formText

	mu    sync.Mutex
	state State
	alert string
}

func newForm(d Deps, text formText, component string) form {
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	d.Log = d.Log.With("component", component)
	return form{Deps: d, text: text}
}

// begin moves the affordance to Submitting. It reports false when a
// submission is already in flight.
func (f *form) begin() bool {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return false
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	f.report(StateSubmitting, f.text.busyLabel)
	return true
}

func (f *form) finish() {
	f.mu.Lock()
	f.state = StateIdle
	f.mu.Unlock()

	f.report(StateIdle, f.text.idleLabel)
}

func (f *form) report(state State, label string) {
	if f.Progress != nil {
		f.Progress(state, label)
	}
}

func (f *form) setAlert(msg string) {
	f.mu.Lock()
	f.alert = msg
	f.mu.Unlock()
}

// Label is the text currently shown on the submit control.
func (f *form) Label() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return f.text.busyLabel
	}
	return f.text.idleLabel
}

func (f *form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Alert is the inline error shown under the form, or "".
func (f *form) Alert() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.alert
}

// call performs the API request and applies its result: persist the token,
// notify, and go home on success; notify and return to Idle otherwise.
func (f *form) call(ctx context.Context, request func(ctx context.Context) (string, error)) Outcome {
	token, err := request(ctx)
	if err != nil {
		f.Log.Warn(ctx, "request rejected", "error", err)
		f.fail(failureMessage(err))
		return OutcomeFailed
	}

	if err := f.Store.Set(ctx, session.Token(token)); err != nil {
		f.Log.Error(ctx, "session write failed", "error", err)
		f.fail(FallbackMessage)
		return OutcomeFailed
	}

	f.finish()
	f.Notifier.Notify(ui.Success(f.text.successTitle, f.text.successBody))
	f.Log.Info(ctx, "session started")
	f.Nav.Navigate(router.RouteHome)
	return OutcomeSucceeded
}

func (f *form) fail(msg string) {
	f.finish()
	f.Notifier.Notify(ui.Failure(f.text.failureTitle, msg))
}

// failureMessage surfaces a server-provided message verbatim and hides
// every other failure behind FallbackMessage.
func failureMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return FallbackMessage
}
