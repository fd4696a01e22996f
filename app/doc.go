// Package app runs an immediate-mode screen against a terminal: every
// iteration renders the current state into a fresh buffer, flushes it,
// waits for one event and hands it to the state's Update.
//
// A screen is a value type implementing Model. Screens that animate also
// implement Ticker and receive Tick at the configured rate when no input
// arrives.
package app
