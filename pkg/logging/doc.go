// Package logging configures structured logging for bankmock.
//
// It wraps log/slog with a small Config so every component logs the
// same way. The mock backend defaults to a no-op logger; tests that
// want match tracing install one:
//
//	b := engine.NewInMemory()
//	b.SetLogger(logging.NewWithLevel(logging.LevelDebug))
//
// Text output is meant for development, JSON for log aggregation.
// Components accept a *slog.Logger via constructor or setter and fall
// back to logging.Nop() when none is provided.
package logging
