package gitsource

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"

	"github.com/conorfennell/pianopace/internal/logger"
)

// Sync makes dir a current checkout of the content pack at url, cloning on
// first use and pulling afterwards. It returns the short hash of the
// checked-out commit.
func Sync(ctx context.Context, log *logger.Logger, url, dir string) (string, error) {
	log = log.With("pack_url", url, "path", dir)

	var repo *git.Repository
	_, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info("cloning content pack")
		repo, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{URL: url})
		if err != nil {
			return "", fmt.Errorf("clone content pack %s: %w", url, err)
		}
	case err == nil:
		repo, err = git.PlainOpen(dir)
		if err != nil {
			return "", fmt.Errorf("open content pack checkout %s: %w", dir, err)
		}
		if err := pull(ctx, repo); err != nil {
			return "", fmt.Errorf("update content pack %s: %w", dir, err)
		}
	default:
		return "", fmt.Errorf("stat %s: %w", dir, err)
	}

	rev, err := revision(repo)
	if err != nil {
		return "", err
	}
	log.Info("content pack ready", "revision", rev)
	return rev, nil
}

func pull(ctx context.Context, repo *git.Repository) error {
	wt, err := repo.Worktree()
	if err != nil {
		return err
	}
	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: git.DefaultRemoteName})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}

func revision(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return head.Hash().String()[:12], nil
}
