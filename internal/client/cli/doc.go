// Package cli provides the interactive user directory command-line client.
//
// It wires configuration, local session storage, the gRPC API client and an
// interactive REPL. On startup a previously saved session is restored, so a
// logged-in user stays logged in across restarts.
//
// Key features:
//   - Register / Login / Logout with a durable session
//   - Directory search with filters and server-driven pagination
//   - Viewing and editing the own profile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
