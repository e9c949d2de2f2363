//go:build darwin || freebsd || linux

package glfw

import "golang.org/x/sys/unix"

// gostring copies the NUL terminated string at p; nil yields "".
func gostring(p *byte) string { return unix.BytePtrToString(p) }
