// Package terminal prepares the console for ANSI-colored output.
package terminal

// EnableColor asks the console to interpret ANSI escape sequences on stdout
// and stderr. It is best effort: failures are ignored, and it does nothing
// on platforms whose terminals already understand escapes.
func EnableColor() {
	enableVirtualTerminal()
}
