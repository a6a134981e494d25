// Package client contains the client-side building blocks that talk to
// the outside world.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface): Signup and Login, each
//     returning the session token issued by the server.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) built on
//     fasthttp. Every call carries an X-Request-ID header that also appears
//     in the client's log lines.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring a
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Only the envelope's "status" field decides success; the HTTP status code
// is informational. Failures come back as:
//   - ErrUnavailable: the request never produced a response.
//   - ErrBadResponse: the body was not an envelope, or a success carried no token.
//   - *APIError: the server rejected the request; Message is user-facing.
//
// Match them with errors.Is and errors.As.
package client
