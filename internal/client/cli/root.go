package cli

import (
	"context"
	"fmt"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/nav"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/router"
)

// pageTitles are printed when a page is mounted.
var pageTitles = map[string]string{
	router.RouteHome:   "Welcome to AnimeFacts.",
	router.RouteLogin:  "Login to your account",
	router.RouteSignup: "Create your account",
}

// mount mounts the current page if a navigation happened since the last
// mount. Only then does the navigation bar read the session again.
func (a *App) mount(ctx context.Context) {
	v := a.router.Version()
	if a.mounted && v == a.version {
		return
	}
	a.navbar.Mount(ctx)
	a.mounted, a.version = true, v

	if title, ok := pageTitles[a.router.Current()]; ok {
		fmt.Fprintln(a.out, title)
	}
}

// getStatus renders the prompt header: the navigation bar and the page.
func (a *App) getStatus(ctx context.Context) string {
	a.mount(ctx)
	return fmt.Sprintf("%s\naf %s> ", nav.Format(a.navbar.Bar()), a.router.Current())
}

// Root runs the interactive shell until the user exits or ctx is done.
func (a *App) Root(ctx context.Context) {
	a.log.Info(ctx, "client started", "api", a.config.APIBaseURL, "mode", string(a.config.Mode))
	fmt.Fprintln(a.out, "AnimeFacts CLI (type 'help' for commands)")

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}
