//go:build !windows

package utils

func setVirtualTerminalLevel() {}
