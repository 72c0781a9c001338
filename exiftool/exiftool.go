// Package exiftool locates and runs the exiftool command-line program.
// It is the only place in this module that spawns processes. Every call is
// a single synchronous invocation; nothing is retried except the one
// documented repair pass for damaged ExifIFD directories.
package exiftool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/apex/log"

	apperrors "exifedit/internal/errors"
)

// InstallHint is shown when the exiftool binary cannot be located.
const InstallHint = "the exiftool command-line utility is required; " +
	"see https://exiftool.org for installation instructions"

const badDirectoryWarning = "Warning: Bad ExifIFD directory"

// Runner invokes a resolved exiftool binary. The path is resolved once at
// construction and is read-only afterwards, so a Runner may be shared.
type Runner struct {
	path string
}

// New resolves exiftool on the search path. It fails with a ToolNotFound
// error before any subprocess is spawned when the binary is missing.
func New() (*Runner, error) {
	return NewWithPath("exiftool")
}

// NewWithPath resolves an explicit binary name or path.
func NewWithPath(path string) (*Runner, error) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ToolNotFound, "resolve", path,
			fmt.Errorf("%w; %s", err, InstallHint))
	}
	return &Runner{path: resolved}, nil
}

// Path returns the resolved binary path.
func (r *Runner) Path() string {
	return r.path
}

// Run executes exiftool with the given arguments, appending file as the
// final argument when it is non-empty. It returns captured stdout and
// stderr; a non-zero exit status is a ToolFailure error carrying the
// stderr text. Warnings on a successful exit are logged and returned in
// stderr, with one exception: a damaged-ExifIFD warning triggers a repair
// invocation followed by a single retry of the original command.
func (r *Runner) Run(ctx context.Context, file string, args ...string) (stdout, stderr string, err error) {
	return r.run(ctx, file, args, true)
}

func (r *Runner) run(ctx context.Context, file string, args []string, allowRepair bool) (string, string, error) {
	argv := args
	if file != "" {
		argv = append(append([]string{}, args...), file)
	}

	cmd := exec.CommandContext(ctx, r.path, argv...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	errText := strings.TrimSpace(errBuf.String())

	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", "", apperrors.Wrap(apperrors.ToolFailure, "exiftool", file, ctxErr)
		}
		if errText == "" {
			errText = runErr.Error()
		}
		return "", "", apperrors.New(apperrors.ToolFailure, "exiftool", file, errText)
	}

	if errText != "" {
		if strings.HasPrefix(errText, badDirectoryWarning) && file != "" && allowRepair {
			r.repair(ctx, file)
			return r.run(ctx, file, args, false)
		}
		log.WithField("file", file).Warn(errText)
	}

	return outBuf.String(), errText, nil
}

// repair rewrites the metadata directory of a damaged file, copying all
// tags onto a clean structure. exiftool always warns during this pass, so
// its outcome is ignored and the caller retries the original command.
func (r *Runner) repair(ctx context.Context, file string) {
	args := []string{
		"-overwrite_original_in_place",
		"-all=",
		"-tagsfromfile", "@",
		"-all:all",
		"-unsafe",
		file,
	}
	cmd := exec.CommandContext(ctx, r.path, args...)
	if err := cmd.Run(); err != nil && ctx.Err() == nil {
		log.WithField("file", file).WithError(err).Debug("metadata repair reported an error")
	}
}
