package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
)

func TestInspectNotARepository(t *testing.T) {
	_, err := Inspect(t.TempDir())
	if !errors.Is(err, ErrNotARepository) {
		t.Fatalf("expected ErrNotARepository, got %v", err)
	}
}

func TestInspectReportsHead(t *testing.T) {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "kernel.py"), []byte("print('hi')\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := wt.Add("kernel.py"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	info, err := Inspect(dir)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.Commit != hash.String() {
		t.Errorf("Commit = %q, want %q", info.Commit, hash.String())
	}
	if info.Branch == "" {
		t.Error("expected a branch name for a fresh repository")
	}
	if got := info.ShortCommit(); got != hash.String()[:7] {
		t.Errorf("ShortCommit = %q, want %q", got, hash.String()[:7])
	}
}

func TestShortCommitShortInput(t *testing.T) {
	info := &CheckoutInfo{Commit: "abc"}
	if got := info.ShortCommit(); got != "abc" {
		t.Errorf("ShortCommit = %q, want %q", got, "abc")
	}
}
