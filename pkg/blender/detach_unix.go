//go:build !windows

package blender

import "syscall"

// detachAttr starts the child in its own session so it keeps running after
// this process exits.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
