// Package application orchestrates the per-dependency check pipeline:
// locate -> classify -> lookup -> resolve status -> assemble report.
package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/CongL3/MobileDependecyManager/domain"
	"github.com/CongL3/MobileDependecyManager/infrastructure/lockfile"
	"github.com/CongL3/MobileDependecyManager/infrastructure/remote"
)

// CheckService runs version checks for a list of dependencies and
// assembles the run report. It holds no per-run state.
type CheckService struct {
	lookup  domain.RemoteLookup
	workers int
}

// NewCheckService creates a service using the given remote lookup.
// workers bounds the number of concurrent lookups; values below 1 mean
// strictly sequential processing, which is the default posture because
// every lookup draws from one shared rate-limit budget.
func NewCheckService(lookup domain.RemoteLookup, workers int) *CheckService {
	if workers < 1 {
		workers = 1
	}
	return &CheckService{lookup: lookup, workers: workers}
}

// ProjectMeta identifies the project a lockfile-driven run originated
// from. The zero value is valid for static-list runs.
type ProjectMeta struct {
	URL          string
	Ref          string
	LockfilePath string
}

// Run checks every dependency and returns the assembled report. Entries
// appear in input order regardless of completion order, one per input
// dependency; per-dependency failures become error entries and never
// abort the run. A cancelled context aborts the whole run with no report.
func (s *CheckService) Run(
	ctx context.Context,
	deps []domain.DependencyRef,
	meta ProjectMeta,
) (*domain.Report, error) {
	report := &domain.Report{
		StartedAt:    time.Now().UTC().Format(time.RFC3339),
		ProjectURL:   meta.URL,
		ProjectRef:   meta.Ref,
		LockfilePath: meta.LockfilePath,
		Entries:      make([]domain.ReportEntry, len(deps)),
	}

	logger.Infof("Checking %d dependencies...", len(deps))

	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i, dep := range deps {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(idx int, dep domain.DependencyRef) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			report.Entries[idx] = s.checkOne(ctx, dep)
		}(i, dep)
	}
	wg.Wait()

	// All-or-nothing at run granularity: a cancelled run yields no report.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run aborted: %w", err)
	}

	return report, nil
}

// LoadProjectDependencies fetches the project's Package.resolved and
// returns its normalized pins. Unlike per-dependency failures, a failure
// here is fatal for the whole run: without the lockfile there is nothing
// to check.
func (s *CheckService) LoadProjectDependencies(
	ctx context.Context,
	meta ProjectMeta,
) ([]domain.DependencyRef, error) {
	coord, err := remote.Locate(meta.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid project URL: %w", err)
	}

	logger.Infof("Fetching %s from %s/%s", meta.LockfilePath, coord.Owner, coord.Repo)
	content, err := s.lookup.FileContent(ctx, coord, meta.LockfilePath, meta.Ref)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", meta.LockfilePath, err)
	}

	deps, err := lockfile.ParseResolved(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", meta.LockfilePath, err)
	}

	logger.Infof("Found %d dependencies in %s", len(deps), meta.LockfilePath)
	return deps, nil
}

// checkOne produces the report entry for a single dependency. Every error
// path still yields an entry; nothing is dropped.
func (s *CheckService) checkOne(ctx context.Context, dep domain.DependencyRef) domain.ReportEntry {
	kind := domain.Classify(dep.DeclaredPin, dep.State)
	logger.Debugf("checking %s (%s, pin %q)", dep.Name, kind, dep.DeclaredPin)

	entry := domain.ReportEntry{Dependency: dep, Kind: kind}

	coord, err := remote.Locate(dep.SourceURL)
	if err != nil {
		entry.Outcome = domain.LookupOutcome{Err: err}
		entry.Status = domain.StatusErrorChecking
		entry.Notes = "could not parse repository URL"
		logEntry(entry)
		return entry
	}

	switch kind {
	case domain.PinBranch:
		branch := dep.DeclaredPin
		if dep.State != nil && dep.State.Branch != "" {
			branch = dep.State.Branch
		}
		sha, lookupErr := s.lookup.LatestCommit(ctx, coord, branch)
		if lookupErr != nil {
			entry.Outcome = domain.LookupOutcome{Err: lookupErr}
			entry.Notes = fmt.Sprintf("could not fetch latest commit for branch %q", branch)
		} else {
			entry.Outcome = domain.LookupOutcome{Value: sha, Origin: domain.OriginCommitSha}
			entry.Notes = fmt.Sprintf("latest commit on branch %q", branch)
		}

	case domain.PinRevision:
		// A revision pin is a fixed point; its latest value is itself.
		entry.Outcome = domain.LookupOutcome{Value: dep.DeclaredPin, Origin: domain.OriginSelf}
		entry.Notes = "pinned to a specific commit"

	case domain.PinVersion, domain.PinUnknown:
		fallthrough
	default:
		entry.Outcome = s.latestVersion(ctx, coord)
		switch {
		case errors.Is(entry.Outcome.Err, domain.ErrNoVersions):
			entry.Notes = "no releases or tags found on GitHub"
		case entry.Outcome.Err != nil:
			entry.Notes = "error fetching latest version from GitHub"
		default:
			entry.Notes = fmt.Sprintf("latest from GitHub %s", entry.Outcome.Origin)
		}
		if kind == domain.PinUnknown {
			entry.Notes += "; pin state was unclassifiable, compared as a version"
		}
	}

	entry.Status = domain.ResolveStatus(kind, dep.DeclaredPin, entry.Outcome)
	logEntry(entry)
	return entry
}

// latestVersion applies the fixed fallback order: the latest formal
// release wins outright, the most recent tag is consulted only when no
// release exists. The two sources are never merged or ranked.
func (s *CheckService) latestVersion(ctx context.Context, coord domain.RepoCoordinate) domain.LookupOutcome {
	release, relErr := s.lookup.LatestRelease(ctx, coord)
	if relErr == nil {
		return domain.LookupOutcome{Value: release, Origin: domain.OriginRelease}
	}
	logger.Debugf("no release for %s/%s: %v", coord.Owner, coord.Repo, relErr)

	tag, tagErr := s.lookup.LatestTag(ctx, coord)
	if tagErr == nil {
		return domain.LookupOutcome{Value: tag, Origin: domain.OriginTag}
	}

	if errors.Is(relErr, domain.ErrNotFound) && errors.Is(tagErr, domain.ErrNotFound) {
		return domain.LookupOutcome{Err: fmt.Errorf("%w in %s/%s", domain.ErrNoVersions, coord.Owner, coord.Repo)}
	}
	if !errors.Is(tagErr, domain.ErrNotFound) {
		return domain.LookupOutcome{Err: tagErr}
	}
	return domain.LookupOutcome{Err: relErr}
}

func logEntry(entry domain.ReportEntry) {
	latest := entry.Outcome.Value
	if latest == "" {
		latest = "unknown"
	}
	logger.Infof("  %s: %s -> %s (%s)", entry.Dependency.Name, entry.Dependency.DeclaredPin, latest, entry.Status)
}
