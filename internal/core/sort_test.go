package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tintd/tint/internal/theme"
)

func names(themes []*theme.Theme) []string {
	out := make([]string, len(themes))
	for i, th := range themes {
		out[i] = th.Name
	}
	return out
}

func TestSort_ByNameDefault(t *testing.T) {
	ts := []*theme.Theme{
		{Name: "zenburn"},
		{Name: "Ayu"},
		{Name: "gruvbox"},
	}

	Sort(ts, DefaultSortOptions())
	assert.Equal(t, []string{"Ayu", "gruvbox", "zenburn"}, names(ts))
}

func TestSort_ByNameDesc(t *testing.T) {
	ts := []*theme.Theme{
		{Name: "ayu"},
		{Name: "zenburn"},
		{Name: "gruvbox"},
	}

	Sort(ts, SortOptions{Field: SortByName, Order: SortDesc})
	assert.Equal(t, []string{"zenburn", "gruvbox", "ayu"}, names(ts))
}

func TestSort_ByModified(t *testing.T) {
	now := time.Now()
	ts := []*theme.Theme{
		{Name: "newest", ModTime: now},
		{Name: "oldest", ModTime: now.Add(-2 * time.Hour)},
		{Name: "middle", ModTime: now.Add(-time.Hour)},
	}

	Sort(ts, SortOptions{Field: SortByModified, Order: SortAsc})
	assert.Equal(t, []string{"oldest", "middle", "newest"}, names(ts))
}

func TestSort_ByAppearanceStable(t *testing.T) {
	ts := []*theme.Theme{
		{Name: "ayu", Appearance: theme.AppearanceLight},
		{Name: "gruvbox", Appearance: theme.AppearanceDark},
		{Name: "zenburn", Appearance: theme.AppearanceDark},
	}

	Sort(ts, SortOptions{Field: SortByAppearance, Order: SortAsc})
	// dark < light; ties keep their original relative order.
	assert.Equal(t, []string{"gruvbox", "zenburn", "ayu"}, names(ts))
}

func TestParseSortField(t *testing.T) {
	assert.Equal(t, SortByName, ParseSortField("name"))
	assert.Equal(t, SortByName, ParseSortField("bogus"))
	assert.Equal(t, SortByAppearance, ParseSortField("MODE"))
	assert.Equal(t, SortByModified, ParseSortField(" mtime "))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortAsc, ParseSortOrder("asc"))
	assert.Equal(t, SortAsc, ParseSortOrder(""))
	assert.Equal(t, SortDesc, ParseSortOrder("Descending"))
}
