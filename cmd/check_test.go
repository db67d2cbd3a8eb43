package cmd //nolint:testpackage // tests unexported functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CongL3/MobileDependecyManager/config"
)

func TestToRefs(t *testing.T) {
	t.Parallel()

	t.Run("should preserve declaration order", func(t *testing.T) {
		t.Parallel()

		// given
		deps := []config.DependencyConfig{
			{Name: "AlertToast", URL: "https://github.com/elai950/AlertToast", Current: "1.3.9"},
			{Name: "Lottie", URL: "https://github.com/airbnb/lottie-ios", Current: "4.0.0"},
			{Name: "Reachability", URL: "https://github.com/ashleymills/Reachability.swift", Current: "master"},
		}

		// when
		refs := toRefs(deps)

		// then
		require.Len(t, refs, 3)
		assert.Equal(t, "AlertToast", refs[0].Name)
		assert.Equal(t, "Lottie", refs[1].Name)
		assert.Equal(t, "Reachability", refs[2].Name)
		assert.Equal(t, "master", refs[2].DeclaredPin)
	})

	t.Run("should leave structured state unset for static entries", func(t *testing.T) {
		t.Parallel()

		// given
		deps := []config.DependencyConfig{
			{Name: "Lib", URL: "https://github.com/acme/lib", Current: "1.0.0"},
		}

		// when
		refs := toRefs(deps)

		// then
		require.Len(t, refs, 1)
		assert.Nil(t, refs[0].State)
	})
}

func TestRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should register both check modes", func(t *testing.T) {
		t.Parallel()

		// given
		names := make(map[string]bool)
		for _, sub := range rootCmd.Commands() {
			names[sub.Name()] = true
		}

		// then
		assert.True(t, names["check"])
		assert.True(t, names["resolved"])
	})
}
