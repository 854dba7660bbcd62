package workspace

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v6"
)

// CheckoutInfo summarizes the state of an existing working copy.
type CheckoutInfo struct {
	Branch string // short ref name, e.g. "main"; empty on detached HEAD
	Commit string // full HEAD hash
}

// ShortCommit returns the abbreviated HEAD hash.
func (c *CheckoutInfo) ShortCommit() string {
	if len(c.Commit) < 7 {
		return c.Commit
	}
	return c.Commit[:7]
}

// ErrNotARepository is returned by Inspect when dir holds no git repository.
var ErrNotARepository = errors.New("not a git repository")

// Inspect opens the checkout at dir and reports its branch and HEAD.
func Inspect(dir string) (*CheckoutInfo, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotARepository)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD in %s: %w", dir, err)
	}

	info := &CheckoutInfo{Commit: head.Hash().String()}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	return info, nil
}
