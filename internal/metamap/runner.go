// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metamap runs the MetaMap concept extractor as a subprocess.
// It validates extraction options, maps them to command-line flags, stages
// input and output through temp files, watches MetaMap's stdout for error
// lines, and parses the fielded output into concepts.
package metamap

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pdiddy/metamap-client/internal/mmi"
	"github.com/pdiddy/metamap-client/pkg/types"
)

// ErrorMarker is the token MetaMap prints on stdout for a fatal condition.
const ErrorMarker = "ERROR"

// Result is the outcome of one extraction. ToolError is advisory: Concepts
// may hold partial output even when it is set.
type Result struct {
	Concepts types.Corpus

	// ToolError is the trimmed stdout line carrying ErrorMarker, or a note
	// about an abnormal exit. Empty when MetaMap finished cleanly.
	ToolError string
}

// HasError reports whether MetaMap signalled a failure.
func (r *Result) HasError() bool {
	return r.ToolError != ""
}

// Runner invokes a MetaMap binary. A Runner holds no per-call state and may
// be shared between goroutines.
type Runner struct {
	binary  string
	tempDir string
	timeout time.Duration
	stderr  io.Writer
	logger  *slog.Logger
	exec    executor
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// WithStderr forwards MetaMap's standard error to w. By default it is
// discarded.
func WithStderr(w io.Writer) RunnerOption {
	return func(r *Runner) { r.stderr = w }
}

func withExecutor(e executor) RunnerOption {
	return func(r *Runner) { r.exec = e }
}

// NewRunner resolves the configured MetaMap binary on PATH and returns a
// Runner for it.
func NewRunner(cfg types.MetaMapConfig, opts ...RunnerOption) (*Runner, error) {
	r := &Runner{
		tempDir: cfg.TempDir,
		timeout: cfg.Timeout,
		stderr:  io.Discard,
		logger:  slog.Default(),
		exec:    osExecutor{},
	}
	for _, opt := range opts {
		opt(r)
	}

	bin := cfg.BinaryOrDefault()
	path, err := r.exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("metamap binary %s not found: %w", bin, err)
	}
	r.binary = path
	return r, nil
}

// Binary returns the resolved MetaMap executable path.
func (r *Runner) Binary() string { return r.binary }

// Extract runs MetaMap once over the input selected by o.
//
// Configuration errors wrap ErrInvalidOptions and are reported before any
// file is created or process started. A MetaMap error line is not a Go
// error: it is returned in Result.ToolError together with whatever output
// MetaMap wrote. Temp files are removed on every return path.
func (r *Runner) Extract(ctx context.Context, o Options) (*Result, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	inputPath, release, err := r.openInput(&o)
	defer release()
	if err != nil {
		return nil, err
	}

	outputPath, err := createOutput(r.tempDir)
	if outputPath != "" {
		defer r.remove(outputPath, "output")
	}
	if err != nil {
		return nil, err
	}

	args := BuildArgs(o, inputPath, outputPath)
	r.logger.Debug("starting metamap", "binary", r.binary, "args", args, "options", enabledOptions(&o))

	toolErr, err := r.run(ctx, args)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("reading output file: %w", err)
	}
	concepts, err := mmi.LoadLines(strings.Split(string(data), "\n"))
	if err != nil {
		return &Result{Concepts: concepts, ToolError: toolErr}, fmt.Errorf("parsing metamap output: %w", err)
	}

	r.logger.Debug("metamap finished", "concepts", len(concepts), "tool_error", toolErr)
	return &Result{Concepts: concepts, ToolError: toolErr}, nil
}

// openInput stages sentences or opens the caller's file. The returned
// release func is always non-nil and undoes whatever was acquired.
func (r *Runner) openInput(o *Options) (string, func(), error) {
	if o.hasSentences() {
		path, err := stageSentences(r.tempDir, o)
		if path == "" {
			return "", func() {}, err
		}
		return path, func() { r.remove(path, "input") }, err
	}

	f, err := os.Open(o.Filename)
	if err != nil {
		return "", func() {}, fmt.Errorf("opening input file: %w", err)
	}
	return f.Name(), func() {
		if err := f.Close(); err != nil {
			r.logger.Warn("closing input file", "path", f.Name(), "error", err)
		}
	}, nil
}

// run starts MetaMap and drains its stdout. The first line carrying
// ErrorMarker triggers termination; reading continues until EOF.
func (r *Runner) run(ctx context.Context, args []string) (string, error) {
	proc, err := r.exec.Start(ctx, r.binary, args, r.stderr)
	if err != nil {
		return "", err
	}

	var toolErr string
	br := bufio.NewReader(proc.Stdout())
	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			r.logger.Debug("metamap", "line", strings.TrimRight(line, "\r\n"))
			if toolErr == "" && strings.Contains(line, ErrorMarker) {
				toolErr = strings.TrimSpace(line)
				r.logger.Warn("metamap reported an error, terminating", "line", toolErr)
				if err := proc.Terminate(); err != nil {
					r.logger.Warn("terminating metamap", "error", err)
				}
			}
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				r.logger.Warn("reading metamap stdout", "error", readErr)
			}
			break
		}
	}

	waitErr := proc.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return toolErr, fmt.Errorf("running metamap: %w", ctxErr)
	}
	if waitErr != nil && toolErr == "" {
		toolErr = fmt.Sprintf("metamap exited: %v", waitErr)
	}
	return toolErr, nil
}

// remove deletes a temp file, logging rather than returning failures.
func (r *Runner) remove(path, role string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		r.logger.Warn("removing "+role+" file", "path", path, "error", err)
	}
}
