package remote

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/CongL3/MobileDependecyManager/domain"
)

const expectedHost = "github.com"

// Locate parses a repository URL into its (owner, repo) coordinate.
// Only https:// and git:// URLs on github.com with exactly two path
// segments are accepted; a trailing ".git" suffix and trailing slashes
// are stripped first. Pure function, no I/O.
func Locate(rawURL string) (domain.RepoCoordinate, error) {
	var coord domain.RepoCoordinate

	cleaned := strings.TrimSuffix(strings.TrimRight(rawURL, "/"), ".git")

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return coord, fmt.Errorf("%w: %q: %v", domain.ErrURLParse, rawURL, err)
	}

	if parsed.Scheme != "https" && parsed.Scheme != "git" {
		return coord, fmt.Errorf("%w: unsupported scheme %q in %q", domain.ErrURLParse, parsed.Scheme, rawURL)
	}
	if parsed.Host != expectedHost {
		return coord, fmt.Errorf("%w: unexpected host %q in %q", domain.ErrURLParse, parsed.Host, rawURL)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return coord, fmt.Errorf("%w: expected /<owner>/<repo> path in %q", domain.ErrURLParse, rawURL)
	}

	coord.Owner = segments[0]
	coord.Repo = segments[1]
	return coord, nil
}
