package ui

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_NotifySuccessAndFailure(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, nil, false)

	term.Notify(Success("Account created.", "We've created your account for you."))
	term.Notify(Failure("Failed to create account.", "Email already exists"))

	assert.Equal(t,
		"[ok] Account created. We've created your account for you.\n"+
			"[!!] Failed to create account. Email already exists\n",
		out.String())
}

func TestTerminal_NotifyColors(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, nil, true)

	term.Notify(Failure("Failed.", ""))

	assert.Equal(t, colorRed+"[!!] Failed."+colorReset+"\n", out.String())
}

func TestTerminal_OpenWaitsForEnter(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("\nleftover\n"))
	term := NewTerminal(&out, in, false)

	term.Open("Invalid Password", "Password should be of minimum 5 characters.")

	assert.Contains(t, out.String(), "Invalid Password")
	assert.Contains(t, out.String(), "Password should be of minimum 5 characters.")
	assert.Contains(t, out.String(), "[Close]")

	rest, _ := in.ReadString('\n')
	assert.Equal(t, "leftover\n", rest, "dialog must consume exactly one line")
}

func TestTerminal_OpenAtEOF(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, bufio.NewReader(strings.NewReader("")), false)

	term.Open("Title", "Body")
	assert.Contains(t, out.String(), "Body")
}

func TestNotificationBuilders(t *testing.T) {
	n := Success("a", "b")
	assert.Equal(t, StatusSuccess, n.Status)
	assert.Equal(t, DefaultDuration, n.Duration)
	assert.True(t, n.Closable)

	n = Failure("a", "b")
	assert.Equal(t, StatusError, n.Status)
}
