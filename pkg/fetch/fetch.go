// Package fetch materializes network-sourced resources: shallow git
// clones for shell frameworks and plugins, and single-file HTTP downloads
// for fonts.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
)

// Fetcher performs clone and download installs.
type Fetcher struct {
	client *http.Client
	logger zerolog.Logger
}

// New returns a Fetcher with a bounded-timeout HTTP client.
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 5 * time.Minute},
		logger: logging.GetLogger("fetch"),
	}
}

// Clone shallow-clones url into dest. An existing clone (dest/.git
// present) is left alone and reported as already satisfied.
func (f *Fetcher) Clone(ctx context.Context, url, dest string) (already bool, err error) {
	if _, statErr := os.Stat(filepath.Join(dest, ".git")); statErr == nil {
		f.logger.Debug().Str("dest", dest).Msg("clone already present")
		return true, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrCloneFailed,
			"failed to create parent directory for %s", dest)
	}

	repository, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrCloneFailed, "failed to clone %s", url)
	}

	event := f.logger.Info().Str("url", url).Str("dest", dest)
	if ref, headErr := repository.Head(); headErr == nil {
		event = event.Str("commit", ref.Hash().String()[:8])
	}
	event.Msg("repository cloned")
	return false, nil
}

// Download fetches url into destDir, keeping the URL's base filename.
// Returns the written path.
func (f *Fetcher) Download(ctx context.Context, url, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDownloadFailed,
			"failed to create directory %s", destDir)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDownloadFailed, "bad download URL %s", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDownloadFailed, "failed to fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf(errors.ErrDownloadFailed,
			"fetching %s: %s", url, resp.Status)
	}

	dest := filepath.Join(destDir, filepath.Base(url))
	tmp := dest + ".partial"
	out, err := os.Create(tmp)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDownloadFailed, "failed to create %s", tmp)
	}

	_, copyErr := io.Copy(out, resp.Body)
	closeErr := out.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmp)
		return "", errors.Wrap(firstErr(copyErr, closeErr), errors.ErrDownloadFailed,
			fmt.Sprintf("failed to write %s", dest))
	}

	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return "", errors.Wrapf(err, errors.ErrDownloadFailed, "failed to finalize %s", dest)
	}

	f.logger.Info().Str("url", url).Str("dest", dest).Msg("file downloaded")
	return dest, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
