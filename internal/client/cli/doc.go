// Package cli provides the interactive cat-breed command-line client.
//
// It wires configuration, local session storage, the HTTP clients and the
// services, then runs a REPL. A background watcher probes the user service
// and switches the prompt between online and offline mode. The prompt also
// follows the signed-in user through a session.Store subscription.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
