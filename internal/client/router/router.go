// Package router tracks which page of the client is showing.
package router

import (
	"context"
	"fmt"
	"sync"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/common"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/logging"
)

const (
	RouteHome   = "/"
	RouteLogin  = "/login"
	RouteSignup = "/signup"
)

// Navigator is what components need to move the user elsewhere.
type Navigator interface {
	Navigate(route string)
}

type Router struct {
	mu      sync.Mutex
	current string
	version uint64
	log     logging.Logger
}

func New(start string, log logging.Logger) *Router {
	if log == nil {
		log = logging.Nop()
	}
	return &Router{current: start, log: log.With("component", "router")}
}

// Known reports whether route is a page of the client.
func Known(route string) bool {
	switch route {
	case RouteHome, RouteLogin, RouteSignup:
		return true
	}
	return false
}

// Navigate switches to route. Every call counts as a new page mount, even
// when the route does not change.
func (r *Router) Navigate(route string) {
	r.mu.Lock()
	from := r.current
	r.current = route
	r.version++
	r.mu.Unlock()

	r.log.Debug(context.Background(), "navigate", "from", from, "to", route)
}

// Go navigates to a user-supplied route, rejecting unknown ones.
func (r *Router) Go(route string) error {
	if !Known(route) {
		return fmt.Errorf("%w: %s", common.ErrUnknownRoute, route)
	}
	r.Navigate(route)
	return nil
}

func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Version increases on every navigation; a changed value means the page
// was mounted again.
func (r *Router) Version() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.version
}
