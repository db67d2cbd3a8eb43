// Package lockfile normalizes Swift Package Manager Package.resolved
// documents into the dependency records the check engine consumes.
package lockfile

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/CongL3/MobileDependecyManager/domain"
)

// resolvedDocument covers both on-disk schema versions. Version 1 nests
// the pin list under "object" and names fields "package"/"repositoryURL";
// version 2 flattens the list and renames them "identity"/"location".
type resolvedDocument struct {
	Version int `json:"version"`
	Object  struct {
		Pins []resolvedPin `json:"pins"`
	} `json:"object"`
	Pins []resolvedPin `json:"pins"`
}

type resolvedPin struct {
	Package       string        `json:"package"`       // v1
	Identity      string        `json:"identity"`      // v1 fallback, v2
	RepositoryURL string        `json:"repositoryURL"` // v1
	Location      string        `json:"location"`      // v2
	State         resolvedState `json:"state"`
}

type resolvedState struct {
	Version  string `json:"version"`
	Branch   string `json:"branch"`
	Revision string `json:"revision"`
}

// ParseResolved parses a Package.resolved document and returns one
// normalized dependency per pin, in file order. Pins missing both an
// identity and a URL are skipped with a debug log; an unsupported schema
// version is an error.
func ParseResolved(content string) ([]domain.DependencyRef, error) {
	var doc resolvedDocument
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("%w: Package.resolved is not valid JSON: %v", domain.ErrDecode, err)
	}

	version := doc.Version
	if version == 0 {
		version = 1
	}

	var pins []resolvedPin
	switch version {
	case 1:
		pins = doc.Object.Pins
	case 2:
		pins = doc.Pins
	default:
		return nil, fmt.Errorf("unsupported Package.resolved version: %d", version)
	}

	deps := make([]domain.DependencyRef, 0, len(pins))
	for _, pin := range pins {
		dep, ok := normalize(pin, version)
		if !ok {
			logger.Debugf("skipping pin with no identity or URL: %+v", pin)
			continue
		}
		deps = append(deps, dep)
	}

	logger.Debugf("parsed %d dependencies from Package.resolved (format v%d)", len(deps), version)
	return deps, nil
}

func normalize(pin resolvedPin, version int) (domain.DependencyRef, bool) {
	identity := pin.Identity
	sourceURL := pin.Location
	if version == 1 {
		sourceURL = pin.RepositoryURL
		if pin.Package != "" {
			identity = pin.Package
		}
	}

	if identity == "" && sourceURL != "" {
		identity = path.Base(strings.TrimSuffix(sourceURL, ".git"))
	}
	if identity == "" || sourceURL == "" {
		return domain.DependencyRef{}, false
	}

	state := domain.PinState{
		Version:  pin.State.Version,
		Branch:   pin.State.Branch,
		Revision: pin.State.Revision,
	}

	return domain.DependencyRef{
		Name:        identity,
		SourceURL:   sourceURL,
		DeclaredPin: declaredPin(state),
		State:       &state,
	}, true
}

// declaredPin picks the pin value the report shows, in the same
// precedence order the classifier uses.
func declaredPin(state domain.PinState) string {
	switch {
	case state.Version != "":
		return state.Version
	case state.Branch != "":
		return state.Branch
	case state.Revision != "":
		return state.Revision
	default:
		return "unknown_state"
	}
}
