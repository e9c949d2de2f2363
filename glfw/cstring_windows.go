package glfw

import "golang.org/x/sys/windows"

func gostring(p *byte) string { return windows.BytePtrToString(p) }
