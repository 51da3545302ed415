package gitsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conorfennell/pianopace/internal/logger"
)

func TestRevision(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = revision(repo)
	assert.Error(t, err, "an empty repository has no HEAD commit")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "week-01.yaml"), []byte("week: 1\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("week-01.yaml")
	require.NoError(t, err)
	hash, err := wt.Commit("add week 1", &git.CommitOptions{
		Author: &object.Signature{Name: "pack", Email: "pack@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	rev, err := revision(repo)
	require.NoError(t, err)
	assert.Equal(t, hash.String()[:12], rev)
}

func TestSyncExistingDirThatIsNotARepo(t *testing.T) {
	_, err := Sync(context.Background(), logger.Nop(), "https://example.com/pack.git", t.TempDir())
	assert.ErrorContains(t, err, "open content pack checkout")
}

func TestSyncCloneFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "checkout")
	missing := filepath.Join(t.TempDir(), "no-such-repo")
	_, err := Sync(context.Background(), logger.Nop(), missing, dir)
	assert.ErrorContains(t, err, "clone content pack")
}
