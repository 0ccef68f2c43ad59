package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tintd/tint/internal/theme"
)

func themes() []*theme.Theme {
	return []*theme.Theme{
		{Name: "ayu", Appearance: theme.AppearanceLight},
		{Name: "gruvbox", Appearance: theme.AppearanceDark},
		{Name: "gruvbox-light", Appearance: theme.AppearanceLight},
		{Name: "zenburn", Appearance: theme.AppearanceDark},
	}
}

func TestParseFilter_Empty(t *testing.T) {
	expr, err := ParseFilter("")
	require.NoError(t, err)
	assert.Empty(t, expr.Conditions)
}

func TestParseFilter_Invalid(t *testing.T) {
	_, err := ParseFilter("name")
	assert.Error(t, err)

	_, err = ParseFilter("flavor=sweet")
	assert.Error(t, err)

	_, err = ParseFilter("appearance=sepia")
	assert.Error(t, err)

	_, err = ParseFilter("name~=([broken")
	assert.Error(t, err)
}

func TestFilter_NoConditions(t *testing.T) {
	expr, err := ParseFilter("")
	require.NoError(t, err)
	assert.Len(t, Filter(themes(), expr), 4)
	assert.Len(t, Filter(themes(), nil), 4)
}

func TestFilter_ByAppearance(t *testing.T) {
	expr, err := ParseFilter("appearance=dark")
	require.NoError(t, err)

	result := Filter(themes(), expr)
	require.Len(t, result, 2)
	for _, th := range result {
		assert.Equal(t, theme.AppearanceDark, th.Appearance)
	}
}

func TestFilter_NotEqual(t *testing.T) {
	expr, err := ParseFilter("name!=zenburn")
	require.NoError(t, err)
	assert.Len(t, Filter(themes(), expr), 3)
}

func TestFilter_Contains(t *testing.T) {
	expr, err := ParseFilter("name~GRUV")
	require.NoError(t, err)

	result := Filter(themes(), expr)
	require.Len(t, result, 2)
	assert.Equal(t, "gruvbox", result[0].Name)
	assert.Equal(t, "gruvbox-light", result[1].Name)
}

func TestFilter_Regex(t *testing.T) {
	expr, err := ParseFilter("name~=box$")
	require.NoError(t, err)

	result := Filter(themes(), expr)
	require.Len(t, result, 1)
	assert.Equal(t, "gruvbox", result[0].Name)
}

func TestFilter_ConditionsAreANDed(t *testing.T) {
	expr, err := ParseFilter("name~gruv,appearance=light")
	require.NoError(t, err)

	result := Filter(themes(), expr)
	require.Len(t, result, 1)
	assert.Equal(t, "gruvbox-light", result[0].Name)
}
