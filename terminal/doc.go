// Package terminal wraps a tcell screen behind a small cell-grid API.
//
// Features:
//   - Raw mode and alternate screen, acquired through a releasable Guard
//   - Row-major cell flush; tcell diffs against the previous frame
//   - Key and mouse events translated into one tagged Event type
//   - Event polling with a timeout for animation ticks
//   - Simulation backend for tests without a real terminal
package terminal
