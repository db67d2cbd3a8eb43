package report

import (
	"fmt"

	"github.com/CongL3/MobileDependecyManager/domain"
)

// DisplayLabel maps a status onto its human-readable label. Purely
// presentational; the serialized report carries the machine token.
func DisplayLabel(status domain.Status) string {
	switch status {
	case domain.StatusUpToDate:
		return "✅ Up to Date"
	case domain.StatusUpdateAvailable:
		return "⚠️ Update Available"
	case domain.StatusTracksBranch:
		return "ℹ️ Tracks Branch"
	case domain.StatusPinnedToRevision:
		return "ℹ️ Pinned to Revision"
	case domain.StatusErrorChecking:
		return "🚨 Error Checking"
	default:
		return "❓ Unknown Status"
	}
}

// SummaryLines renders the aggregate counts as log-friendly lines.
func SummaryLines(r *domain.Report) []string {
	s := r.Summarize()
	return []string{
		fmt.Sprintf("Total dependencies: %d", s.Total),
		fmt.Sprintf("Up to date: %d", s.UpToDate),
		fmt.Sprintf("Updates available: %d", s.UpdateAvailable),
		fmt.Sprintf("Tracking branches: %d", s.TracksBranch),
		fmt.Sprintf("Pinned to revisions: %d", s.PinnedToRevision),
		fmt.Sprintf("Errors: %d", s.Errors),
	}
}
