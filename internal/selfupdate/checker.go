// Package selfupdate checks GitHub releases for a newer webdev100 build and
// replaces the running binary with it.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner   = "abhisek"
	defaultRepo    = "webdev100"
	defaultAPIURL  = "https://api.github.com"
	defaultDLURL   = "https://github.com"
	defaultTimeout = 5 * time.Second

	// DevVersion is what an untagged build reports.
	DevVersion = "(devel)"
)

// Checker talks to the GitHub releases API.
type Checker struct {
	owner           string
	repo            string
	baseURL         string
	downloadBaseURL string
	client          *http.Client
	execPath        func() (string, error)
	goos, goarch    string
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Checker) { c.baseURL = u }
}

// WithDownloadBaseURL overrides where release assets are fetched from.
func WithDownloadBaseURL(u string) Option {
	return func(c *Checker) { c.downloadBaseURL = u }
}

// WithTimeout bounds every HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithRepository points the checker at another owner/repo.
func WithRepository(owner, repo string) Option {
	return func(c *Checker) { c.owner, c.repo = owner, repo }
}

func withExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

func withPlatform(goos, goarch string) Option {
	return func(c *Checker) { c.goos, c.goarch = goos, goarch }
}

// NewChecker returns a checker for the webdev100 releases.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:           defaultOwner,
		repo:            defaultRepo,
		baseURL:         defaultAPIURL,
		downloadBaseURL: defaultDLURL,
		client:          &http.Client{Timeout: defaultTimeout},
		execPath:        os.Executable,
		goos:            runtime.GOOS,
		goarch:          runtime.GOARCH,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput is the running build.
type CheckInput struct {
	Version string
}

// CheckResult describes the latest published release.
type CheckResult struct {
	LatestVersion   string
	ReleaseURL      string
	UpdateAvailable bool
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release and compares it with input.Version.
// Development builds never report an update.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.baseURL, "/"), c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("releases API: HTTP %d", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	latest := canonical(rel.TagName)
	if latest == "" {
		return nil, fmt.Errorf("release tag %q is not a semantic version", rel.TagName)
	}

	res := &CheckResult{LatestVersion: latest, ReleaseURL: rel.HTMLURL}
	if current := canonical(input.Version); current != "" {
		res.UpdateAvailable = semver.Compare(latest, current) > 0
	}
	return res, nil
}

// canonical returns v with a leading "v" in semver canonical form, or ""
// when v is not a version.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == DevVersion {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}
