package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBold  = "\033[1m"
)

// Terminal renders notifications and dialogs on a text terminal. A
// notification cannot disappear from a scrollback, so Duration is not
// enforced; it is printed once.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	r      *bufio.Reader
	colors bool
}

func NewTerminal(w io.Writer, r *bufio.Reader, colors bool) *Terminal {
	return &Terminal{w: w, r: r, colors: colors}
}

func (t *Terminal) paint(color, s string) string {
	if !t.colors {
		return s
	}
	return color + s + colorReset
}

func (t *Terminal) Notify(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()

	marker, color := "[ok]", colorGreen
	if n.Status == StatusError {
		marker, color = "[!!]", colorRed
	}

	line := fmt.Sprintf("%s %s", marker, n.Title)
	if n.Description != "" {
		line += " " + n.Description
	}
	fmt.Fprintln(t.w, t.paint(color, line))
}

// Open prints the dialog and blocks until Enter is pressed (or input ends).
func (t *Terminal) Open(title, body string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rule := strings.Repeat("-", max(len(title), len(body))+4)
	fmt.Fprintln(t.w, rule)
	fmt.Fprintln(t.w, "  "+t.paint(colorBold, title))
	fmt.Fprintln(t.w, "  "+body)
	fmt.Fprintln(t.w, rule)
	fmt.Fprint(t.w, "[Close] press Enter ")

	if t.r != nil {
		_, _ = t.r.ReadString('\n')
	}
	fmt.Fprintln(t.w)
}
