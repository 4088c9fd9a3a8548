// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build unix

package metamap

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSProcessTerminateAfterExit(t *testing.T) {
	proc, err := osExecutor{}.Start(context.Background(), "/bin/sh", []string{"-c", "exit 0"}, io.Discard)
	require.NoError(t, err)

	_, err = io.Copy(io.Discard, proc.Stdout())
	require.NoError(t, err)
	require.NoError(t, proc.Wait())

	assert.NoError(t, proc.Terminate(), "an exited process needs no termination")
}

func TestOSProcessTerminateStopsGroup(t *testing.T) {
	proc, err := osExecutor{}.Start(context.Background(), "/bin/sh", []string{"-c", "echo ready; sleep 30; echo done"}, io.Discard)
	require.NoError(t, err)

	buf := make([]byte, len("ready\n"))
	_, err = io.ReadFull(proc.Stdout(), buf)
	require.NoError(t, err)

	require.NoError(t, proc.Terminate())
	rest, err := io.ReadAll(proc.Stdout())
	require.NoError(t, err)
	assert.Empty(t, string(rest), "sleep child should die with the shell")
	assert.Error(t, proc.Wait())
}
