package cli

import (
	"errors"
	"os/exec"
)

// ExitCode maps an Execute error to a process exit code. When the failure
// wraps an external tool's exit status (a failed clone or dependency sync),
// that tool's own code is propagated; everything else exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
