//go:build !linux

package terminal

// resetTerminalMode is a no-op; tcell's own Fini restores termios on these platforms
func resetTerminalMode() {}
