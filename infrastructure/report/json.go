// Package report renders and persists the outcome of a check run.
// Everything here is strictly downstream of the domain status enum:
// display strings never feed back into control flow.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CongL3/MobileDependecyManager/domain"
)

// document is the on-disk JSON shape of a run report.
type document struct {
	LastUpdatedUTC      string          `json:"last_updated_utc"`
	ProjectURL          string          `json:"project_url,omitempty"`
	ProjectRefUsed      string          `json:"project_ref_used,omitempty"`
	PackageResolvedPath string          `json:"package_resolved_path,omitempty"`
	Summary             summaryDocument `json:"summary"`
	Dependencies        []entryDocument `json:"dependencies"`
}

type summaryDocument struct {
	Total            int `json:"total"`
	UpToDate         int `json:"up_to_date"`
	UpdateAvailable  int `json:"update_available"`
	TracksBranch     int `json:"tracks_branch"`
	PinnedToRevision int `json:"pinned_to_revision"`
	Errors           int `json:"errors"`
}

type entryDocument struct {
	Name      string `json:"name"`
	SourceURL string `json:"source_url"`
	Current   string `json:"current"`
	PinType   string `json:"pin_type"`
	Latest    string `json:"latest"`
	Origin    string `json:"origin,omitempty"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
}

// Marshal serializes a report, preserving entry order.
func Marshal(r *domain.Report) ([]byte, error) {
	doc := document{
		LastUpdatedUTC:      r.StartedAt,
		ProjectURL:          r.ProjectURL,
		ProjectRefUsed:      r.ProjectRef,
		PackageResolvedPath: r.LockfilePath,
		Summary:             toSummaryDocument(r.Summarize()),
		Dependencies:        make([]entryDocument, 0, len(r.Entries)),
	}

	for _, entry := range r.Entries {
		latest := entry.Outcome.Value
		if latest == "" {
			latest = "unknown"
		}
		origin := ""
		if entry.Outcome.Origin != domain.OriginNone {
			origin = entry.Outcome.Origin.String()
		}
		doc.Dependencies = append(doc.Dependencies, entryDocument{
			Name:      entry.Dependency.Name,
			SourceURL: entry.Dependency.SourceURL,
			Current:   entry.Dependency.DeclaredPin,
			PinType:   entry.Kind.String(),
			Latest:    latest,
			Origin:    origin,
			Status:    entry.Status.String(),
			Notes:     entry.Notes,
		})
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Write serializes the report and writes it to path, fully replacing any
// previous file and creating parent directories as needed.
func Write(path string, r *domain.Report) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if mkdirErr := os.MkdirAll(dir, 0o755); mkdirErr != nil {
			return fmt.Errorf("failed to create report directory: %w", mkdirErr)
		}
	}

	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		return fmt.Errorf("failed to write report to %q: %w", path, writeErr)
	}

	return nil
}

func toSummaryDocument(s domain.Summary) summaryDocument {
	return summaryDocument{
		Total:            s.Total,
		UpToDate:         s.UpToDate,
		UpdateAvailable:  s.UpdateAvailable,
		TracksBranch:     s.TracksBranch,
		PinnedToRevision: s.PinnedToRevision,
		Errors:           s.Errors,
	}
}
