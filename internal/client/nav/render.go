// Package nav implements the navigation bar shown on every page: a brand
// on the left and, on the right, either a Login control or a Settings menu
// with Logout.
package nav

import (
	"fmt"
	"strings"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/router"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/session"
)

const Brand = "AnimeFacts"

type Variant int

const (
	VariantGuest Variant = iota
	VariantMember
)

func (v Variant) String() string {
	if v == VariantMember {
		return "member"
	}
	return "guest"
}

// Control is a clickable element of the bar. Route is set for links,
// Items for menus.
type Control struct {
	Label string
	Route string
	Items []string
}

type Bar struct {
	Brand    string
	Variant  Variant
	Controls []Control
	Identity string
}

// Render maps an optional token to the bar to display. It does not touch
// storage.
func Render(token session.Token, ok bool) Bar {
	if !ok {
		return Bar{
			Brand:    Brand,
			Variant:  VariantGuest,
			Controls: []Control{{Label: "Login", Route: router.RouteLogin}},
		}
	}
	return Bar{
		Brand:    Brand,
		Variant:  VariantMember,
		Controls: []Control{{Label: "Settings", Items: []string{"Logout"}}},
		Identity: session.Identity(token),
	}
}

// Format renders the bar as a single terminal line.
func Format(b Bar) string {
	parts := make([]string, 0, len(b.Controls))
	for _, c := range b.Controls {
		switch {
		case len(c.Items) > 0:
			parts = append(parts, fmt.Sprintf("[%s: %s]", c.Label, strings.Join(c.Items, ", ")))
		default:
			parts = append(parts, fmt.Sprintf("[%s]", c.Label))
		}
	}

	right := strings.Join(parts, " ")
	if b.Identity != "" {
		right = b.Identity + " " + right
	}
	return fmt.Sprintf("%-12s%s", b.Brand, right)
}
