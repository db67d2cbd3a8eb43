// Package remote implements the GitHub lookups the check engine needs:
// latest release, latest tag, branch head, and file contents.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	gh "github.com/google/go-github/v66/github"
	"github.com/gregjones/httpcache"
	logger "github.com/sirupsen/logrus"

	"github.com/CongL3/MobileDependecyManager/domain"
)

const shortShaLen = 7

// Compile-time interface satisfaction check.
var _ domain.RemoteLookup = (*Client)(nil)

// Client implements domain.RemoteLookup against the GitHub REST API.
// Transport stack, outermost first: per-run in-memory conditional request
// cache, secondary rate-limit middleware, then the go-github client.
// An empty token is not an error, only a lower rate-limit budget.
type Client struct {
	gh   *gh.Client
	http *http.Client
}

// NewClient creates a GitHub client with the given bearer token and
// per-request timeout. A zero timeout disables the client-side deadline.
func NewClient(token string, timeout time.Duration) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	httpClient := github_ratelimit.NewClient(cacheTransport)
	httpClient.Timeout = timeout

	client := gh.NewClient(httpClient)
	if token != "" {
		client = client.WithAuthToken(token)
	} else {
		logger.Debug("no GitHub token configured; rate limits will be restricted")
	}

	return &Client{gh: client, http: httpClient}
}

// NewClientWithHTTPClient creates a Client against a custom base URL.
// Intended for tests, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client, http: httpClient}, nil
}

// LatestRelease returns the tag name of the repository's latest formal
// release. A repository without releases maps to domain.ErrNotFound.
func (c *Client) LatestRelease(ctx context.Context, coord domain.RepoCoordinate) (string, error) {
	release, _, err := c.gh.Repositories.GetLatestRelease(ctx, coord.Owner, coord.Repo)
	if err != nil {
		return "", classify(err, fmt.Sprintf("latest release for %s/%s", coord.Owner, coord.Repo))
	}
	if release.GetTagName() == "" {
		return "", fmt.Errorf("%w: release for %s/%s has no tag name", domain.ErrDecode, coord.Owner, coord.Repo)
	}
	return release.GetTagName(), nil
}

// LatestTag returns the name of the most recent tag, which the API lists
// first. A repository without tags maps to domain.ErrNotFound.
func (c *Client) LatestTag(ctx context.Context, coord domain.RepoCoordinate) (string, error) {
	tags, _, err := c.gh.Repositories.ListTags(ctx, coord.Owner, coord.Repo, &gh.ListOptions{PerPage: 1})
	if err != nil {
		return "", classify(err, fmt.Sprintf("tags for %s/%s", coord.Owner, coord.Repo))
	}
	if len(tags) == 0 || tags[0].GetName() == "" {
		return "", fmt.Errorf("%w: no tags in %s/%s", domain.ErrNotFound, coord.Owner, coord.Repo)
	}
	return tags[0].GetName(), nil
}

// LatestCommit returns the abbreviated head commit sha of the given
// branch. When the branch 404s and is one of the two conventional default
// names, the lookup retries once against the other (master <-> main);
// nothing else is ever retried.
func (c *Client) LatestCommit(ctx context.Context, coord domain.RepoCoordinate, branch string) (string, error) {
	sha, err := c.branchHead(ctx, coord, branch)
	if err == nil {
		return sha, nil
	}

	if alternate := alternateDefaultBranch(branch); alternate != "" && errors.Is(err, domain.ErrNotFound) {
		logger.Debugf("branch %q not found in %s/%s, retrying %q", branch, coord.Owner, coord.Repo, alternate)
		if sha, altErr := c.branchHead(ctx, coord, alternate); altErr == nil {
			return sha, nil
		}
	}

	return "", err
}

func (c *Client) branchHead(ctx context.Context, coord domain.RepoCoordinate, branch string) (string, error) {
	info, _, err := c.gh.Repositories.GetBranch(ctx, coord.Owner, coord.Repo, branch, 0)
	if err != nil {
		return "", classify(err, fmt.Sprintf("branch %q of %s/%s", branch, coord.Owner, coord.Repo))
	}

	sha := info.GetCommit().GetSHA()
	if sha == "" {
		return "", fmt.Errorf("%w: branch %q of %s/%s has no head commit", domain.ErrDecode, branch, coord.Owner, coord.Repo)
	}
	if len(sha) > shortShaLen {
		sha = sha[:shortShaLen]
	}
	return sha, nil
}

func alternateDefaultBranch(branch string) string {
	switch branch {
	case "master":
		return "main"
	case "main":
		return "master"
	default:
		return ""
	}
}

// FileContent returns the decoded text of a file via the contents API.
// The primary path decodes the inline base64 payload; when the API omits
// inline content (oversized files) it falls through to the raw
// download_url, yielding the same text either way.
func (c *Client) FileContent(ctx context.Context, coord domain.RepoCoordinate, path, ref string) (string, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	fileContent, _, _, err := c.gh.Repositories.GetContents(ctx, coord.Owner, coord.Repo, path, opts)
	if err != nil {
		return "", classify(err, fmt.Sprintf("contents of %q in %s/%s", path, coord.Owner, coord.Repo))
	}
	if fileContent == nil {
		return "", fmt.Errorf("%w: %q in %s/%s is a directory, not a file", domain.ErrDecode, path, coord.Owner, coord.Repo)
	}

	// Oversized files carry no inline payload; GetContent then reports an
	// unsupported encoding and the raw download_url is the remaining path.
	content, decodeErr := fileContent.GetContent()
	if decodeErr == nil && content != "" {
		return content, nil
	}

	if downloadURL := fileContent.GetDownloadURL(); downloadURL != "" {
		return c.rawDownload(ctx, downloadURL, path)
	}

	if decodeErr != nil {
		return "", fmt.Errorf("%w: inline payload for %q: %v", domain.ErrDecode, path, decodeErr)
	}
	return "", fmt.Errorf("%w: no inline content or download URL for %q", domain.ErrDecode, path)
}

func (c *Client) rawDownload(ctx context.Context, rawURL, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: building raw request for %q: %v", domain.ErrTransport, path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: raw download of %q: %v", domain.ErrTransport, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: raw download of %q returned HTTP %d", domain.ErrTransport, path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading raw download of %q: %v", domain.ErrTransport, path, err)
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: raw download of %q is not valid UTF-8", domain.ErrDecode, path)
	}

	return string(body), nil
}

// classify maps a go-github error onto the domain error taxonomy, keeping
// the API diagnostic in the message for notes and logging only.
func classify(err error, what string) error {
	var apiErr *gh.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		if apiErr.Response.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
		}
		return fmt.Errorf("%w: %s: HTTP %d", domain.ErrTransport, what, apiErr.Response.StatusCode)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrTransport, what, err)
}
