package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CongL3/MobileDependecyManager/domain"
)

func TestResolveStatus(t *testing.T) {
	t.Parallel()

	t.Run("error outcomes", func(t *testing.T) {
		t.Parallel()

		t.Run("should report error checking for any kind when the lookup failed", func(t *testing.T) {
			t.Parallel()

			// given
			outcome := domain.LookupOutcome{Err: domain.ErrTransport}

			for _, kind := range []domain.PinKind{
				domain.PinVersion, domain.PinBranch, domain.PinRevision, domain.PinUnknown,
			} {
				// when
				status := domain.ResolveStatus(kind, "1.0.0", outcome)

				// then
				assert.Equal(t, domain.StatusErrorChecking, status, "kind %s", kind)
			}
		})

		t.Run("should report error checking when the lookup yielded no value", func(t *testing.T) {
			t.Parallel()

			// given
			outcome := domain.LookupOutcome{Origin: domain.OriginNone}

			// when
			status := domain.ResolveStatus(domain.PinVersion, "1.0.0", outcome)

			// then
			assert.Equal(t, domain.StatusErrorChecking, status)
		})
	})

	t.Run("branch pins", func(t *testing.T) {
		t.Parallel()

		t.Run("should report tracks branch when a head sha was obtained", func(t *testing.T) {
			t.Parallel()

			// given
			outcome := domain.LookupOutcome{Value: "a1b2c3d", Origin: domain.OriginCommitSha}

			// when
			status := domain.ResolveStatus(domain.PinBranch, "master", outcome)

			// then
			assert.Equal(t, domain.StatusTracksBranch, status)
		})
	})

	t.Run("revision pins", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			declared string
			latest   string
			expected domain.Status
		}{
			{
				name:     "should report up to date when the declared sha extends the latest",
				declared: "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678",
				latest:   "a1b2c3d",
				expected: domain.StatusUpToDate,
			},
			{
				name:     "should report up to date when the latest sha extends the declared",
				declared: "a1b2c3d",
				latest:   "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678",
				expected: domain.StatusUpToDate,
			},
			{
				name:     "should report pinned to revision without a prefix relation",
				declared: "a1b2c3d",
				latest:   "f9e8d7c",
				expected: domain.StatusPinnedToRevision,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// given
				outcome := domain.LookupOutcome{Value: tt.latest, Origin: domain.OriginSelf}

				// when
				status := domain.ResolveStatus(domain.PinRevision, tt.declared, outcome)

				// then
				assert.Equal(t, tt.expected, status)
			})
		}
	})

	t.Run("version pins", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			kind     domain.PinKind
			declared string
			latest   string
			expected domain.Status
		}{
			{
				name:     "should report up to date on equality",
				kind:     domain.PinVersion,
				declared: "1.3.9",
				latest:   "1.3.9",
				expected: domain.StatusUpToDate,
			},
			{
				name:     "should report up to date when the declared version is newer",
				kind:     domain.PinVersion,
				declared: "2.1.0",
				latest:   "2.0.0",
				expected: domain.StatusUpToDate,
			},
			{
				name:     "should report update available when the declared version is older",
				kind:     domain.PinVersion,
				declared: "1.0.0",
				latest:   "2.0.0",
				expected: domain.StatusUpdateAvailable,
			},
			{
				name:     "should compare unknown pins like versions",
				kind:     domain.PinUnknown,
				declared: "1.0.0",
				latest:   "1.2.0",
				expected: domain.StatusUpdateAvailable,
			},
			{
				name:     "should report update available for incomparable operands",
				kind:     domain.PinVersion,
				declared: "",
				latest:   "2.0.0",
				expected: domain.StatusUpdateAvailable,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// given
				outcome := domain.LookupOutcome{Value: tt.latest, Origin: domain.OriginRelease}

				// when
				status := domain.ResolveStatus(tt.kind, tt.declared, outcome)

				// then
				assert.Equal(t, tt.expected, status)
			})
		}
	})

	t.Run("determinism", func(t *testing.T) {
		t.Parallel()

		t.Run("should yield the same status across repeated calls", func(t *testing.T) {
			t.Parallel()

			// given
			outcome := domain.LookupOutcome{Value: "2.0.0", Origin: domain.OriginTag}

			// when
			first := domain.ResolveStatus(domain.PinVersion, "1.0.0", outcome)

			// then
			for range 100 {
				assert.Equal(t, first, domain.ResolveStatus(domain.PinVersion, "1.0.0", outcome))
			}
		})
	})
}
