// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metamap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// process is a started MetaMap run.
type process interface {
	// Stdout streams the process's standard output until it exits.
	Stdout() io.Reader

	// Terminate asks the process to stop.
	Terminate() error

	// Wait blocks until the process exits. Stdout must be drained first.
	Wait() error
}

// executor abstracts process lookup and startup for testing.
type executor interface {
	LookPath(file string) (string, error)
	Start(ctx context.Context, name string, args []string, stderr io.Writer) (process, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Start(ctx context.Context, name string, args []string, stderr io.Writer) (process, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = stderr
	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		return signalGroup(cmd.Process, syscall.SIGKILL)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("opening stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", name, err)
	}
	return &osProcess{cmd: cmd, stdout: stdout}, nil
}

type osProcess struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

func (p *osProcess) Stdout() io.Reader { return p.stdout }

// Terminate sends SIGTERM to the process group, falling back to SIGKILL
// where SIGTERM cannot be delivered. A process that has already exited is
// not an error.
func (p *osProcess) Terminate() error {
	err := signalGroup(p.cmd.Process, syscall.SIGTERM)
	if err == nil || errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	if err := signalGroup(p.cmd.Process, syscall.SIGKILL); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}

func (p *osProcess) Wait() error { return p.cmd.Wait() }
