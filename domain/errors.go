package domain

import "errors"

// Error taxonomy for a run. Every error is contained to the dependency
// entry that produced it; none of these abort the whole run.
var (
	// ErrURLParse marks a malformed or unsupported source URL.
	ErrURLParse = errors.New("could not parse repository URL")

	// ErrTransport marks a network failure, timeout, or non-2xx response.
	ErrTransport = errors.New("transport error")

	// ErrDecode marks malformed JSON, base64, or UTF-8 in a response.
	// For status purposes it is treated the same as a transport error.
	ErrDecode = errors.New("decode error")

	// ErrNotFound marks a 404 from the hosting API, e.g. a repository
	// without formal releases.
	ErrNotFound = errors.New("not found")

	// ErrNoVersions marks a repository that has neither releases nor tags.
	// Distinct from a transport failure so the report note can say so.
	ErrNoVersions = errors.New("no releases or tags found")
)
