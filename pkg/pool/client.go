// Package pool discovers remote package candidates by scraping the Debian
// package-search page and mirror pool directory listings. The resolver only
// depends on the two narrow lookups exposed here, so the markup handling
// stays contained in this package.
package pool

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/aptforge/aptdown/pkg/errors"
	"github.com/aptforge/aptdown/pkg/model"
)

// Client queries a package-search page and mirror pool listings. Fetched
// pages are memoized for the lifetime of the client, which is scoped to a
// single resolution run; several binary packages commonly share one source
// pool directory.
type Client struct {
	client     *http.Client
	userAgent  string
	searchURL  string
	poolPrefix string
	pages      map[string]string
}

// NewClient creates a pool client. poolPrefix is the URL prefix a link must
// carry to count as a pool directory link (e.g.
// "http://ftp.debian.org/debian/pool/"); searchURL is the package-search
// endpoint.
func NewClient(timeout time.Duration, searchURL, poolPrefix string) *Client {
	return &Client{
		client:     &http.Client{Timeout: timeout},
		userAgent:  "aptdown/1.0",
		searchURL:  searchURL,
		poolPrefix: poolPrefix,
		pages:      make(map[string]string),
	}
}

// FindSourceDirectory resolves the pool directory holding the artifacts of
// a binary package by scraping the package-search page for the first pool
// link under the mirror prefix.
func (c *Client) FindSourceDirectory(ctx context.Context, name string) (*url.URL, error) {
	searchURL, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid search URL %q", c.searchURL)
	}
	query := url.Values{}
	query.Set("keywords", name)
	query.Set("searchon", "names")
	query.Set("exact", "1")
	searchURL.RawQuery = query.Encode()

	page, err := c.fetchPage(ctx, searchURL.String())
	if err != nil {
		return nil, err
	}

	for _, href := range extractLinks(strings.NewReader(page)) {
		if !strings.HasPrefix(href, c.poolPrefix) {
			continue
		}
		dir, err := url.Parse(href)
		if err != nil {
			continue
		}
		return dir, nil
	}
	return nil, pkgerrors.Wrapf(pkgerrors.ErrPoolLinkNotFound, "package %s on %s", name, c.searchURL)
}

// ListVersions fetches a pool directory listing and returns every artifact
// matching the package name for the given architecture (or the "all"/"any"
// markers), as packages carrying their download URL.
func (c *Client) ListVersions(ctx context.Context, dir *url.URL, name, arch string) ([]model.Package, error) {
	page, err := c.fetchPage(ctx, dir.String())
	if err != nil {
		return nil, err
	}

	var packages []model.Package
	for _, href := range extractLinks(strings.NewReader(page)) {
		filename := href[strings.LastIndexByte(href, '/')+1:]
		pkg, ok := parsePoolFilename(filename, name, arch)
		if !ok {
			continue
		}
		pkg.SourceURL = dir.JoinPath(filename)
		packages = append(packages, pkg)
	}
	return packages, nil
}

// fetchPage GETs a page, memoizing the raw content per URL for the rest of
// the run.
func (c *Client) fetchPage(ctx context.Context, pageURL string) (string, error) {
	if page, ok := c.pages[pageURL]; ok {
		return page, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.ErrRemoteSource, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", pkgerrors.Wrapf(pkgerrors.ErrRemoteSource,
			"unexpected status code %d for %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.ErrRemoteSource, err.Error())
	}

	page := string(body)
	c.pages[pageURL] = page
	return page, nil
}

// parsePoolFilename matches "name_version_arch.deb" for the wanted name and
// an accepted architecture. Pool filenames escape the epoch colon as "%3a".
func parsePoolFilename(filename, name, arch string) (model.Package, bool) {
	trimmed, ok := strings.CutSuffix(filename, ".deb")
	if !ok {
		return model.Package{}, false
	}
	parts := strings.Split(trimmed, "_")
	if len(parts) != 3 || parts[0] != name {
		return model.Package{}, false
	}
	fileArch := parts[2]
	if fileArch != arch && fileArch != model.ArchAll && fileArch != model.ArchAny {
		return model.Package{}, false
	}
	version := strings.ReplaceAll(parts[1], "%3a", ":")
	if version == "" {
		return model.Package{}, false
	}
	return model.Package{Name: name, Version: model.PackageVersion(version), Arch: fileArch}, true
}
