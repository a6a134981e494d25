package nav

import (
	"context"
	"sync"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/router"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/session"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/logging"
)

// Navbar is the stateful bar component. It reads the session once per
// mount and keeps the result until the next mount or a logout.
type Navbar struct {
	store session.Store
	nav   router.Navigator
	log   logging.Logger

	mu       sync.Mutex
	loggedIn bool
	bar      Bar
}

func NewNavbar(store session.Store, nav router.Navigator, log logging.Logger) *Navbar {
	if log == nil {
		log = logging.Nop()
	}
	return &Navbar{store: store, nav: nav, log: log.With("component", "navbar"), bar: Render("", false)}
}

// Mount reads the stored token and renders the bar. A storage read error
// renders the guest variant.
func (n *Navbar) Mount(ctx context.Context) Bar {
	token, ok, err := n.store.Get(ctx)
	if err != nil {
		n.log.Warn(ctx, "session read failed", "error", err)
		token, ok = "", false
	}

	bar := Render(token, ok)

	n.mu.Lock()
	n.loggedIn = ok
	n.bar = bar
	n.mu.Unlock()

	return bar
}

// Bar returns what the last mount rendered.
func (n *Navbar) Bar() Bar {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.bar
}

func (n *Navbar) LoggedIn() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.loggedIn
}

// Logout clears the session and navigates to the login page. If the token
// cannot be removed nothing changes and the error is returned.
func (n *Navbar) Logout(ctx context.Context) error {
	if err := n.store.Clear(ctx); err != nil {
		n.log.Error(ctx, "session clear failed", "error", err)
		return err
	}

	n.mu.Lock()
	n.loggedIn = false
	n.bar = Render("", false)
	n.mu.Unlock()

	n.log.Info(ctx, "logged out")
	n.nav.Navigate(router.RouteLogin)
	return nil
}
