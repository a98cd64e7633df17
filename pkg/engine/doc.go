// Package engine implements the mock backend: a backend.Backend that
// answers outbound HTTP calls from scripted scenarios instead of a live
// network.
//
// A MockBackend owns a record store and a scenario registry. Test setup
// code registers scenarios and request/response pairs (directly or via
// the fluent Builder), activates one scenario, and then hands the
// MockBackend to provider clients as their backend.Backend. Every call
// is matched against the active scenario's expectations in sequence
// order; the first full match wins and its canned response is returned,
// optionally after simulated latency. A call nothing matches fails
// loudly so that a missing fixture never masquerades as a passing test.
package engine
