// Package core provides filtering and sorting logic for theme listings.
package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tintd/tint/internal/theme"
)

// FilterOp represents a comparison operator.
type FilterOp string

const (
	FilterOpEqual    FilterOp = "="  // Exact match
	FilterOpNotEqual FilterOp = "!=" // Not equal
	FilterOpContains FilterOp = "~"  // Contains substring
	FilterOpRegex    FilterOp = "~=" // Regex match
)

// FilterCondition represents a single filter condition.
type FilterCondition struct {
	Field    string   // Field name: name, appearance
	Operator FilterOp // Comparison operator
	Value    string   // Value to compare against

	// Compiled regex for the ~= operator
	regex *regexp.Regexp
}

// FilterExpr represents a compound filter expression.
// Multiple conditions are ANDed together.
type FilterExpr struct {
	Conditions []FilterCondition
}

// ParseFilter parses a filter expression string into a FilterExpr.
// Format: "field=value,field2~value2"
// Multiple conditions are comma-separated and ANDed together.
//
// Supported fields: name, appearance
// Supported operators: = (equal), != (not equal), ~ (contains), ~= (regex)
//
// Examples:
//   - "appearance=dark" - dark themes only
//   - "name~gruv" - names containing "gruv"
//   - "name~=^base16-,appearance=light" - light base16 themes
func ParseFilter(expr string) (*FilterExpr, error) {
	if expr == "" {
		return &FilterExpr{}, nil
	}

	filter := &FilterExpr{
		Conditions: make([]FilterCondition, 0),
	}

	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		cond, err := parseCondition(part)
		if err != nil {
			return nil, err
		}
		filter.Conditions = append(filter.Conditions, cond)
	}

	return filter, nil
}

// parseCondition parses a single condition like "appearance=dark".
func parseCondition(s string) (FilterCondition, error) {
	// Try operators in order of specificity (longest first)
	operators := []FilterOp{
		FilterOpNotEqual, // != (must be before =)
		FilterOpRegex,    // ~= (must be before ~)
		FilterOpEqual,
		FilterOpContains,
	}

	for _, op := range operators {
		idx := strings.Index(s, string(op))
		if idx > 0 {
			field := strings.TrimSpace(s[:idx])
			value := strings.TrimSpace(s[idx+len(op):])

			cond := FilterCondition{
				Field:    strings.ToLower(field),
				Operator: op,
				Value:    value,
			}

			if err := cond.init(); err != nil {
				return FilterCondition{}, err
			}

			return cond, nil
		}
	}

	return FilterCondition{}, fmt.Errorf("invalid filter condition: %s (missing operator)", s)
}

// init validates the condition and compiles the regex if needed.
func (c *FilterCondition) init() error {
	switch c.Field {
	case "name", "theme":
		c.Field = "name" // Normalize
	case "appearance", "mode":
		c.Field = "appearance"
		if c.Operator == FilterOpEqual || c.Operator == FilterOpNotEqual {
			if !theme.Appearance(c.Value).Valid() {
				return fmt.Errorf("invalid appearance: %s (use dark or light)", c.Value)
			}
		}
	default:
		return fmt.Errorf("unknown filter field: %s", c.Field)
	}

	if c.Operator == FilterOpRegex {
		re, err := regexp.Compile(c.Value)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		c.regex = re
	}

	return nil
}

// matches evaluates the condition against one theme.
func (c *FilterCondition) matches(t *theme.Theme) bool {
	var field string
	switch c.Field {
	case "name":
		field = t.Name
	case "appearance":
		field = string(t.Appearance)
	default:
		return false
	}

	switch c.Operator {
	case FilterOpEqual:
		return field == c.Value
	case FilterOpNotEqual:
		return field != c.Value
	case FilterOpContains:
		return strings.Contains(strings.ToLower(field), strings.ToLower(c.Value))
	case FilterOpRegex:
		return c.regex.MatchString(field)
	default:
		return false
	}
}

// Filter returns the themes matching every condition in the expression.
func Filter(themes []*theme.Theme, expr *FilterExpr) []*theme.Theme {
	if expr == nil || len(expr.Conditions) == 0 {
		return themes
	}

	result := make([]*theme.Theme, 0, len(themes))
	for _, t := range themes {
		ok := true
		for i := range expr.Conditions {
			if !expr.Conditions[i].matches(t) {
				ok = false
				break
			}
		}
		if ok {
			result = append(result, t)
		}
	}

	return result
}
