package domain

import "strings"

// branchNames are pin values treated as moving branch references when no
// structured pin state is available. The set is deliberately small: a bare
// string that is not an obvious branch name is assumed to be a version.
var branchNames = map[string]bool{
	"master":  true,
	"main":    true,
	"develop": true,
	"dev":     true,
}

// Classify determines the kind of a declared pin. When structured lockfile
// state is present the classification is deterministic (version over branch
// over revision). With only a bare string it falls back to the branch-name
// heuristic above. Classification never fails; PinUnknown is a valid
// terminal result that downstream stages handle without aborting.
func Classify(declaredPin string, state *PinState) PinKind {
	if state != nil {
		switch {
		case state.Version != "":
			return PinVersion
		case state.Branch != "":
			return PinBranch
		case state.Revision != "":
			return PinRevision
		default:
			return PinUnknown
		}
	}

	if branchNames[strings.ToLower(declaredPin)] {
		return PinBranch
	}
	return PinVersion
}
