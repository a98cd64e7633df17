// Package backend defines the HTTP execution contract shared by all
// provider clients.
//
// A Backend turns an outbound Request into a Response. Production code
// wires a real transport; tests wire the mock engine. Provider clients
// only ever see this interface, so swapping a live backend for a
// scripted one requires no client changes.
//
// The package also defines the closed error taxonomy for backend
// failures: configuration errors, no-match errors, and storage errors.
// Callers branch on the error kind, never on message content.
package backend
