package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/CongL3/MobileDependecyManager/domain"
)

// DependencyRefBuilder helps create test dependencies with a fluent interface.
type DependencyRefBuilder struct {
	*testkit.BaseBuilder
	name        string
	sourceURL   string
	declaredPin string
	state       *domain.PinState
}

// NewDependencyRefBuilder creates a new builder with sensible defaults.
func NewDependencyRefBuilder() *DependencyRefBuilder {
	return &DependencyRefBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-dependency",
		sourceURL:   "https://github.com/acme/lib",
		declaredPin: "1.0.0",
		state:       nil,
	}
}

// WithName sets the dependency name.
func (b *DependencyRefBuilder) WithName(name string) *DependencyRefBuilder {
	b.name = name
	return b
}

// WithSourceURL sets the repository URL.
func (b *DependencyRefBuilder) WithSourceURL(url string) *DependencyRefBuilder {
	b.sourceURL = url
	return b
}

// WithDeclaredPin sets the declared pin value.
func (b *DependencyRefBuilder) WithDeclaredPin(pin string) *DependencyRefBuilder {
	b.declaredPin = pin
	return b
}

// WithState sets the structured lockfile pin state.
func (b *DependencyRefBuilder) WithState(state *domain.PinState) *DependencyRefBuilder {
	b.state = state
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyRefBuilder) Build() interface{} {
	return b.BuildDependencyRef()
}

// BuildDependencyRef creates the dependency with a concrete return type.
func (b *DependencyRefBuilder) BuildDependencyRef() domain.DependencyRef {
	return domain.DependencyRef{
		Name:        b.name,
		SourceURL:   b.sourceURL,
		DeclaredPin: b.declaredPin,
		State:       b.state,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyRefBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-dependency"
	b.sourceURL = "https://github.com/acme/lib"
	b.declaredPin = "1.0.0"
	b.state = nil
	return b
}

// Clone creates a deep copy of the builder.
func (b *DependencyRefBuilder) Clone() testkit.Builder {
	clone := &DependencyRefBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		sourceURL:   b.sourceURL,
		declaredPin: b.declaredPin,
	}
	if b.state != nil {
		stateCopy := *b.state
		clone.state = &stateCopy
	}
	return clone
}
