package domain

import "context"

// RemoteLookup abstracts the hosting API queries the engine needs.
// Implementations issue exactly one logical request per call; the branch
// lookup may retry once against the alternate default-branch name
// (master <-> main) but nothing else is retried.
type RemoteLookup interface {
	// LatestRelease returns the tag name of the latest formal release.
	LatestRelease(ctx context.Context, coord RepoCoordinate) (string, error)

	// LatestTag returns the name of the most recent tag.
	LatestTag(ctx context.Context, coord RepoCoordinate) (string, error)

	// LatestCommit returns the abbreviated head commit sha of a branch.
	LatestCommit(ctx context.Context, coord RepoCoordinate, branch string) (string, error)

	// FileContent returns the decoded text of a file at the given ref.
	// An empty ref means the repository's default branch.
	FileContent(ctx context.Context, coord RepoCoordinate, path, ref string) (string, error)
}
