package domain

// PinState carries the structured pin fields extracted from a lockfile.
// At most one field is expected to be set; the zero value means the
// lockfile entry had no usable state.
type PinState struct {
	Version  string
	Branch   string
	Revision string
}

// DependencyRef represents a single tracked dependency as declared by the
// caller, either from a static list or from a normalized lockfile pin.
// It is immutable once loaded.
type DependencyRef struct {
	Name        string    // Dependency name or package identity
	SourceURL   string    // Repository URL the dependency is hosted at
	DeclaredPin string    // Currently pinned version, branch, or revision
	State       *PinState // Structured pin state from a lockfile; nil for static lists
}

// RepoCoordinate identifies a hosted repository as (owner, repo).
type RepoCoordinate struct {
	Owner string
	Repo  string
}

// PinKind classifies how a declared pin should be interpreted.
type PinKind int

const (
	PinUnknown PinKind = iota
	PinVersion
	PinBranch
	PinRevision
)

func (k PinKind) String() string {
	switch k {
	case PinVersion:
		return "version"
	case PinBranch:
		return "branch"
	case PinRevision:
		return "revision"
	default:
		return "unknown"
	}
}

// LookupOrigin records where a "latest" value came from.
type LookupOrigin int

const (
	OriginNone LookupOrigin = iota
	OriginRelease
	OriginTag
	OriginCommitSha
	OriginSelf // revision pins are their own latest value
)

func (o LookupOrigin) String() string {
	switch o {
	case OriginRelease:
		return "release"
	case OriginTag:
		return "tag"
	case OriginCommitSha:
		return "commit"
	case OriginSelf:
		return "self"
	default:
		return "none"
	}
}

// LookupOutcome is the result of a single remote "latest" lookup.
// It is produced once per dependency per run and never mutated afterward.
type LookupOutcome struct {
	Value  string       // Latest value, empty when nothing was found
	Origin LookupOrigin // Where the value came from
	Err    error        // Terminal lookup failure, nil on success
}

// Found reports whether the lookup produced a usable value.
func (o LookupOutcome) Found() bool {
	return o.Err == nil && o.Value != ""
}

// Status is the terminal classification of a dependency for one run.
type Status int

const (
	StatusUnknown Status = iota
	StatusUpToDate
	StatusUpdateAvailable
	StatusTracksBranch
	StatusPinnedToRevision
	StatusErrorChecking
)

// String returns the stable machine token used in serialized reports.
// Display labels are a presentation concern owned by the report package.
func (s Status) String() string {
	switch s {
	case StatusUpToDate:
		return "up_to_date"
	case StatusUpdateAvailable:
		return "update_available"
	case StatusTracksBranch:
		return "tracks_branch"
	case StatusPinnedToRevision:
		return "pinned_to_revision"
	case StatusErrorChecking:
		return "error_checking"
	default:
		return "unknown"
	}
}

// ReportEntry is the per-dependency result collected into a Report.
type ReportEntry struct {
	Dependency DependencyRef
	Kind       PinKind
	Outcome    LookupOutcome
	Status     Status
	Notes      string
}

// Report is the ordered outcome of a full run. Entries appear in input
// order, one per input dependency, with nothing dropped or deduplicated.
type Report struct {
	StartedAt    string // UTC timestamp in RFC 3339 format
	ProjectURL   string // Originating project repository, when known
	ProjectRef   string // Ref the project lockfile was fetched at
	LockfilePath string // In-repo path of the lockfile, when used
	Entries      []ReportEntry
}

// Summary holds aggregate counts per status, computed as a pure reduction
// over the entry sequence.
type Summary struct {
	Total            int
	UpToDate         int
	UpdateAvailable  int
	TracksBranch     int
	PinnedToRevision int
	Errors           int
}

// Summarize counts entries per status.
func (r *Report) Summarize() Summary {
	s := Summary{Total: len(r.Entries)}
	for _, e := range r.Entries {
		switch e.Status {
		case StatusUpToDate:
			s.UpToDate++
		case StatusUpdateAvailable:
			s.UpdateAvailable++
		case StatusTracksBranch:
			s.TracksBranch++
		case StatusPinnedToRevision:
			s.PinnedToRevision++
		case StatusErrorChecking:
			s.Errors++
		case StatusUnknown:
		}
	}
	return s
}
