package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CongL3/MobileDependecyManager/domain"
)

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	t.Run("semantic comparison", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			declared string
			latest   string
			expected domain.Ordering
		}{
			{
				name:     "should compare numeric identifiers numerically",
				declared: "1.2.0",
				latest:   "1.10.0",
				expected: domain.OrderDeclaredOlder,
			},
			{
				name:     "should report equal for identical versions",
				declared: "1.3.9",
				latest:   "1.3.9",
				expected: domain.OrderEqual,
			},
			{
				name:     "should strip a leading v from either operand",
				declared: "v1.2.0",
				latest:   "1.2.0",
				expected: domain.OrderEqual,
			},
			{
				name:     "should strip an uppercase V prefix",
				declared: "V2.0.0",
				latest:   "2.0.0",
				expected: domain.OrderEqual,
			},
			{
				name:     "should detect a newer declared version",
				declared: "3.0.0",
				latest:   "2.9.9",
				expected: domain.OrderDeclaredNewer,
			},
			{
				name:     "should rank a pre-release below its release",
				declared: "1.0.0-beta.1",
				latest:   "1.0.0",
				expected: domain.OrderDeclaredOlder,
			},
			{
				name:     "should ignore build metadata",
				declared: "1.0.0+build.1",
				latest:   "1.0.0+build.2",
				expected: domain.OrderEqual,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// when
				ordering := domain.CompareVersions(tt.declared, tt.latest)

				// then
				assert.Equal(t, tt.expected, ordering)
			})
		}
	})

	t.Run("lexical fallback", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			declared string
			latest   string
			expected domain.Ordering
		}{
			{
				name:     "should order non-semver strings byte-wise",
				declared: "abc123",
				latest:   "def456",
				expected: domain.OrderDeclaredOlder,
			},
			{
				name:     "should order date-based tags byte-wise",
				declared: "release-2023-01",
				latest:   "release-2024-06",
				expected: domain.OrderDeclaredOlder,
			},
			{
				name:     "should report a lexically greater declared value as newer",
				declared: "zzz",
				latest:   "aaa",
				expected: domain.OrderDeclaredNewer,
			},
			{
				name:     "should short-circuit exact equality before parsing",
				declared: "not-a-version",
				latest:   "not-a-version",
				expected: domain.OrderEqual,
			},
			{
				name:     "should fall back when only one operand is semver",
				declared: "1.0.0",
				latest:   "snapshot",
				expected: domain.OrderDeclaredOlder,
			},
			{
				name:     "should report an empty declared operand as incomparable",
				declared: "",
				latest:   "1.0.0",
				expected: domain.OrderIncomparable,
			},
			{
				name:     "should report an empty latest operand as incomparable",
				declared: "1.0.0",
				latest:   "",
				expected: domain.OrderIncomparable,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// when
				ordering := domain.CompareVersions(tt.declared, tt.latest)

				// then
				assert.Equal(t, tt.expected, ordering)
			})
		}
	})

	t.Run("reflexivity", func(t *testing.T) {
		t.Parallel()

		t.Run("should report equal for any value compared to itself", func(t *testing.T) {
			t.Parallel()

			// given
			values := []string{"1.0.0", "v1.0.0", "master", "abc123", "2024.06", "1.0.0-rc.1", "weird tag!"}

			for _, v := range values {
				// when
				ordering := domain.CompareVersions(v, v)

				// then
				assert.Equal(t, domain.OrderEqual, ordering, "value %q", v)
			}
		})

		t.Run("should treat v-prefixed and bare forms as the same value", func(t *testing.T) {
			t.Parallel()

			// when
			ordering := domain.CompareVersions("v7.7.7", "7.7.7")

			// then
			assert.Equal(t, domain.OrderEqual, ordering)
		})
	})
}
