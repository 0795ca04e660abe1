// Package postprocess runs the external script that turns the result files
// into charts. Its internals are opaque: it either runs cleanly or fails.
package postprocess

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"risksim/meta"
)

type Script struct {
	Interpreter string
	Path        string
	Env         []string // Added to the inherited environment
}

// NewScript locates the interpreter and script under workDir.
func NewScript(workDir string) Script {
	return Script{
		Interpreter: filepath.Join(workDir, meta.PYTHON_PATH),
		Path:        filepath.Join(workDir, meta.SCRIPT_PATH),
	}
}

// Run blocks until the script exits and returns its standard output. A script
// that cannot be started or exits with a non-zero status is an error.
func (s Script) Run(ctx context.Context) ([]byte, error) {
	cmd := exec.CommandContext(ctx, s.Interpreter, s.Path)
	if len(s.Env) > 0 {
		cmd.Env = append(os.Environ(), s.Env...)
	}

	out, err := cmd.Output()
	if err != nil {
		return out, fmt.Errorf("failed to run %s: %w", filepath.Base(s.Path), err)
	}
	return out, nil
}
