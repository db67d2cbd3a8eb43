package domain

import "strings"

// ResolveStatus maps a classified pin and its lookup outcome onto the
// closed status set. It is a pure function: identical inputs always yield
// the same status, and every (kind, outcome) combination is covered.
func ResolveStatus(kind PinKind, declared string, outcome LookupOutcome) Status {
	if !outcome.Found() {
		return StatusErrorChecking
	}

	switch kind {
	case PinBranch:
		return StatusTracksBranch

	case PinRevision:
		// Lookups return abbreviated shas, so a prefix relation in either
		// direction means the pin and the latest value are the same commit.
		if strings.HasPrefix(declared, outcome.Value) || strings.HasPrefix(outcome.Value, declared) {
			return StatusUpToDate
		}
		return StatusPinnedToRevision

	case PinVersion, PinUnknown:
		fallthrough
	default:
		switch CompareVersions(declared, outcome.Value) {
		case OrderEqual, OrderDeclaredNewer:
			return StatusUpToDate
		default:
			// DeclaredOlder, and Incomparable conservatively: currency
			// cannot be proven, so report an update as available.
			return StatusUpdateAvailable
		}
	}
}
