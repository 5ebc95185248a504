package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsetup/pkg/errors"
)

// initSourceRepo builds a local repository with one commit so clone tests
// stay offline.
func initSourceRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "plugin.zsh"), []byte("# plugin\n"), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("plugin.zsh")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com"},
	})
	require.NoError(t, err)

	return dir
}

func TestClone(t *testing.T) {
	source := initSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "plugins", "thing")

	already, err := New().Clone(context.Background(), source, dest)
	require.NoError(t, err)
	assert.False(t, already)

	assert.FileExists(t, filepath.Join(dest, "plugin.zsh"))
	assert.DirExists(t, filepath.Join(dest, ".git"))
}

func TestCloneAlreadyPresent(t *testing.T) {
	source := initSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "thing")

	_, err := New().Clone(context.Background(), source, dest)
	require.NoError(t, err)

	already, err := New().Clone(context.Background(), source, dest)
	require.NoError(t, err)
	assert.True(t, already)
}

func TestCloneBadURL(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "thing")

	_, err := New().Clone(context.Background(), "/nonexistent/repo", dest)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCloneFailed))
	assert.False(t, errors.IsFatal(err))
}

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("font bytes"))
	}))
	defer server.Close()

	destDir := filepath.Join(t.TempDir(), "fonts")
	dest, err := New().Download(context.Background(), server.URL+"/Font-Regular.ttf", destDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(destDir, "Font-Regular.ttf"), dest)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "font bytes", string(data))

	// No partial file left behind.
	assert.NoFileExists(t, dest+".partial")
}

func TestDownloadHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	destDir := t.TempDir()
	_, err := New().Download(context.Background(), server.URL+"/missing.ttf", destDir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDownloadFailed))

	// Nothing was written on failure.
	entries, readErr := os.ReadDir(destDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
