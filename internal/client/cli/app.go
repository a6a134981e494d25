package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/client"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/config"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/nav"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/router"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/services"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/session"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/ui"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/filex"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/logging"
	"golang.org/x/term"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	store    session.Store
	router   *router.Router
	terminal *ui.Terminal
	navbar   *nav.Navbar
	signup   *services.SignupForm
	login    *services.LoginForm

	reader *bufio.Reader
	out    io.Writer

	mounted bool
	version uint64
}

// NewApp opens the session database named in c and wires the client
// against the resolved API base URL.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, c.LogLevel)

	path, err := filex.EnsureParentDir(c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("prepare storage: %w", err)
	}

	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", path, "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	colors := term.IsTerminal(int(os.Stdout.Fd()))

	a := newApp(c, log, api, session.NewSQLiteStore(db), bufio.NewReader(os.Stdin), os.Stdout, colors)
	a.db = db
	return a, nil
}

// newApp builds the page components around the given collaborators.
func newApp(c *config.Config, log logging.Logger, api client.Client, store session.Store, reader *bufio.Reader, out io.Writer, colors bool) *App {
	if log == nil {
		log = logging.Nop()
	}

	r := router.New(router.RouteHome, log)
	t := ui.NewTerminal(out, reader, colors)

	deps := services.Deps{
		API:      api,
		Store:    store,
		Nav:      r,
		Notifier: t,
		Dialog:   t,
		Log:      log,
		Progress: func(s services.State, label string) {
			if s == services.StateSubmitting {
				fmt.Fprintln(out, label)
			}
		},
	}

	return &App{
		config:   c,
		log:      log,
		store:    store,
		router:   r,
		terminal: t,
		navbar:   nav.NewNavbar(store, r, log),
		signup:   services.NewSignupForm(deps),
		login:    services.NewLoginForm(deps),
		reader:   reader,
		out:      out,
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the session database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.navbar.LoggedIn()
}
