package workspace

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GitRunner executes a git command with the given arguments and returns its
// combined output. The default implementation shells out to the git binary;
// tests substitute a fake.
type GitRunner func(ctx context.Context, args ...string) ([]byte, error)

// ExecGit is the production GitRunner.
func ExecGit(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, "git", args...).CombinedOutput()
}

// Acquisition describes how a working copy was obtained.
type Acquisition struct {
	// Dir is the repository directory, relative or absolute exactly as the
	// caller supplied the target.
	Dir string
	// Cloned is true when a fresh clone was performed, false when an
	// existing checkout (or the current directory) was reused.
	Cloned bool
}

// Acquire ensures a working copy of repoURL exists at targetDir.
//
// If targetDir already contains git metadata the checkout is reused as-is.
// Otherwise a single clone is performed. A failed clone propagates git's
// error together with its output; any partially written clone directory is
// left on disk so a rerun can inspect or resume it.
func Acquire(ctx context.Context, run GitRunner, repoURL, targetDir string) (*Acquisition, error) {
	if run == nil {
		run = ExecGit
	}

	if HasGitMetadata(targetDir) {
		return &Acquisition{Dir: targetDir, Cloned: false}, nil
	}

	output, err := run(ctx, "clone", repoURL, targetDir)
	if err != nil {
		return nil, fmt.Errorf("cloning %s: %w\n%s", repoURL, err, strings.TrimSpace(string(output)))
	}
	return &Acquisition{Dir: targetDir, Cloned: true}, nil
}

// EnsureGit checks that git is available on PATH.
func EnsureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
