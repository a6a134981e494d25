// Package cli provides the interactive AnimeFacts command-line client.
//
// It wires configuration, the local session store, the HTTP API client and
// the page components (navigation bar, signup and login forms) behind a
// small REPL. Pages are routes: "/" (home), "/login" and "/signup". The
// navigation bar is printed above every prompt and is mounted again after
// each navigation, which is when it rereads the stored session token.
//
// Commands:
//   - home, signup, login
//   - settings, logout (the Settings menu of a logged-in user)
//   - help, exit
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
