package core

import (
	"sort"
	"strings"

	"github.com/tintd/tint/internal/theme"
)

// SortField represents a field to sort by.
type SortField string

const (
	SortByName       SortField = "name"
	SortByAppearance SortField = "appearance"
	SortByModified   SortField = "modified"
)

// SortOrder represents ascending or descending order.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortOptions specifies sorting criteria.
type SortOptions struct {
	Field SortField // Field to sort by
	Order SortOrder // Sort order (asc/desc)
}

// DefaultSortOptions returns default sort options (name, ascending),
// matching the store's load order.
func DefaultSortOptions() SortOptions {
	return SortOptions{
		Field: SortByName,
		Order: SortAsc,
	}
}

// Sort sorts themes in place based on the provided options.
func Sort(themes []*theme.Theme, opts SortOptions) {
	if len(themes) == 0 {
		return
	}

	sort.SliceStable(themes, func(i, j int) bool {
		var less bool

		switch opts.Field {
		case SortByAppearance:
			less = themes[i].Appearance < themes[j].Appearance
		case SortByModified:
			less = themes[i].ModTime.Before(themes[j].ModTime)
		case SortByName:
			fallthrough
		default:
			less = strings.ToLower(themes[i].Name) < strings.ToLower(themes[j].Name)
		}

		if opts.Order == SortDesc {
			return !less
		}
		return less
	})
}

// ParseSortField parses a sort field string.
func ParseSortField(s string) SortField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "appearance", "mode":
		return SortByAppearance
	case "modified", "mtime", "m":
		return SortByModified
	default:
		return SortByName
	}
}

// ParseSortOrder parses a sort order string.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending", "d":
		return SortDesc
	default:
		return SortAsc
	}
}
