package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context) error
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Settings(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the AnimeFacts CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits at end of input, when ctx is done, or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// Before every command the prompt shows statusFn(), the navigation bar and
// the current page. Accepted commands:
//
//	Guest:
//	  - help           show available commands
//	  - home           go to the home page
//	  - signup         create an account
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Member:
//	  - help           show available commands
//	  - home           go to the home page
//	  - settings       show the Settings menu
//	  - logout         log out
//	  - exit | quit    leave the program
//
// The guest commands stay available to members and vice versa; help only
// lists what the navigation bar offers. Handlers report to the user
// themselves, so their errors are only printed here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, settings, logout, exit")
			} else {
				printlnFn("Available commands: home, signup, login, exit")
			}

		case "home":
			cmdErr = a.Home(ctx)

		case "signup", "register":
			cmdErr = a.Signup(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "settings":
			cmdErr = a.Settings(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}
	}
}
