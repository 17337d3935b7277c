// Package download materializes .deb artifacts from a mirror pool into the
// apt archive cache. It is intentionally minimal and can be extended later
// with retries, backoff, and mirror selection.
package download

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	pkgerrors "github.com/aptforge/aptdown/pkg/errors"
	"github.com/aptforge/aptdown/pkg/fsutil"
	"github.com/aptforge/aptdown/pkg/model"
	"github.com/schollz/progressbar/v3"
)

// ManagerImpl is an HTTP-based artifact fetcher. Artifacts already present
// in the cache directory are reused without touching the network, which
// makes interrupted runs cheap to resume.
type ManagerImpl struct {
	client    *http.Client
	userAgent string
	dir       string
	progress  bool
}

// NewManager creates a download manager writing into dir. When progress is
// set, each transfer renders a byte progress bar on stderr.
func NewManager(timeout time.Duration, dir string, progress bool) *ManagerImpl {
	return &ManagerImpl{
		client:    &http.Client{Timeout: timeout},
		userAgent: "aptdown/1.0",
		dir:       dir,
		progress:  progress,
	}
}

// Fetch downloads the artifact for pkg unless a usable copy already exists,
// and stores the local path on the package.
func (m *ManagerImpl) Fetch(ctx context.Context, pkg *model.Package) error {
	if pkg.LocalPath != "" {
		return nil
	}
	if pkg.SourceURL == nil {
		return pkgerrors.Wrapf(pkgerrors.ErrArtifactDownload, "package %s has no source", pkg)
	}
	if !filepath.IsAbs(m.dir) {
		return pkgerrors.Wrapf(pkgerrors.ErrArtifactDownload, "cache dir must be absolute: %s", m.dir)
	}
	if err := os.MkdirAll(m.dir, fsutil.DirModeDefault); err != nil {
		return pkgerrors.Wrap(err, "could not create cache dir")
	}

	absPath := filepath.Join(m.dir, path.Base(pkg.SourceURL.Path))
	if st, err := os.Stat(absPath); err == nil && st.Size() > 0 {
		pkg.LocalPath = absPath
		return nil
	}

	resp, err := m.doRequest(ctx, pkg)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	tmpPath, err := m.writeBodyToTemp(resp, pkg)
	if err != nil {
		return err
	}
	if err := finalizeFile(tmpPath, absPath); err != nil {
		return err
	}
	pkg.LocalPath = absPath
	return nil
}

func (m *ManagerImpl) doRequest(ctx context.Context, pkg *model.Package) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pkg.SourceURL.String(), http.NoBody)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrArtifactDownload, err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, pkgerrors.Wrapf(pkgerrors.ErrArtifactDownload,
			"unexpected status code %d for %s", resp.StatusCode, pkg.SourceURL)
	}
	return resp, nil
}

func (m *ManagerImpl) writeBodyToTemp(resp *http.Response, pkg *model.Package) (string, error) {
	tmp, err := os.CreateTemp(m.dir, "dl-*.tmp")
	if err != nil {
		return "", pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	var dst io.Writer = tmp
	if m.progress {
		bar := progressbar.DefaultBytes(resp.ContentLength, pkg.Filename())
		dst = io.MultiWriter(tmp, bar)
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not write file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not close file")
	}
	return tmpPath, nil
}

func finalizeFile(tmpPath, absPath string) error {
	if err := fsutil.Move(tmpPath, absPath); err != nil {
		return pkgerrors.Wrap(err, "could not finalize file")
	}
	if err := os.Chmod(absPath, fsutil.FileModeDefault); err != nil {
		return pkgerrors.Wrap(err, "could not set permissions")
	}
	return nil
}
