// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !unix

package metamap

import (
	"os"
	"os/exec"
	"syscall"
)

func setProcessGroup(*exec.Cmd) {}

// signalGroup signals p alone; there are no process groups to target.
func signalGroup(p *os.Process, sig syscall.Signal) error {
	if sig == syscall.SIGKILL {
		return p.Kill()
	}
	return p.Signal(sig)
}
