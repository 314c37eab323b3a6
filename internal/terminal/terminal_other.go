//go:build !windows

package terminal

func enableVirtualTerminal() {}
