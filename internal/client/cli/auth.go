package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/router"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/services"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/ui"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// sessionClock is implemented by stores that remember when the session began.
type sessionClock interface {
	StartedAt(ctx context.Context) (time.Time, bool, error)
}

// Home shows the landing page.
func (a *App) Home(ctx context.Context) error {
	a.router.Navigate(router.RouteHome)
	return nil
}

// Signup opens the signup page, prompts for an email, a password and its
// confirmation, and submits the form. Both password slices are wiped before
// returning. Only I/O errors are returned; rejected input and failed requests
// are reported on the terminal and leave the user on the page.
func (a *App) Signup(ctx context.Context) error {
	a.open(ctx, router.RouteSignup)

	email, err := getSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmed, err := getPassword(a.reader, "Confirm Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmed)

	outcome := a.signup.Submit(ctx, email, password, confirmed)
	a.report(ctx, "signup", outcome, a.signup.Alert())
	return nil
}

// Login opens the login page, prompts for credentials and submits them.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	a.open(ctx, router.RouteLogin)

	email, err := getSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	outcome := a.login.Submit(ctx, email, password)
	a.report(ctx, "login", outcome, a.login.Alert())
	return nil
}

// Logout is the Settings menu's only item. If the session cannot be cleared
// the user stays logged in and the error is returned.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are not logged in.")
		return nil
	}
	if err := a.navbar.Logout(ctx); err != nil {
		a.terminal.Notify(ui.Failure("Failed to log out.", services.FallbackMessage))
		return err
	}
	return nil
}

// Settings prints the member's identity and when the session started.
func (a *App) Settings(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login to see your settings.")
		return nil
	}

	bar := a.navbar.Bar()
	who := bar.Identity
	if who == "" {
		who = "signed in"
	}
	fmt.Fprintf(a.out, "Account: %s\n", who)

	if c, ok := a.store.(sessionClock); ok {
		started, found, err := c.StartedAt(ctx)
		if err != nil {
			a.log.Warn(ctx, "session start unreadable", "error", err)
		} else if found {
			fmt.Fprintf(a.out, "Session started: %s\n", started.Local().Format(time.RFC1123))
		}
	}
	fmt.Fprintln(a.out, "Menu: logout")
	return nil
}

// open navigates to route unless it is already showing, and mounts it.
func (a *App) open(ctx context.Context, route string) {
	if a.router.Current() != route {
		a.router.Navigate(route)
	}
	a.mount(ctx)
}

// report prints the inline alert of a rejected submission. Dialogs and
// notifications have already been shown by the form.
func (a *App) report(ctx context.Context, form string, outcome services.Outcome, alert string) {
	a.log.Debug(ctx, "form submitted", "form", form, "outcome", outcome.String())

	switch outcome {
	case services.OutcomeInvalidEmail, services.OutcomePasswordMismatch, services.OutcomePasswordMissing:
		if alert != "" {
			fmt.Fprintln(a.out, "! "+alert)
		}
	case services.OutcomeBusy:
		fmt.Fprintln(a.out, "A request is already in progress.")
	}
}
