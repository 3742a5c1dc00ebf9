package util

import (
	"regexp"
	"strings"
)

var (
	reSpaces      = regexp.MustCompile(`\s+`)
	reLeadingSeps = regexp.MustCompile(`^[,;\s"']+`)
)

// CollapseSpaces folds embedded newlines and run-on whitespace into single
// spaces and trims the result.
func CollapseSpaces(input string) string {
	s := strings.ReplaceAll(input, " ", " ")
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// TrimLeadingSeparators strips leading commas, semicolons, quotes and
// whitespace left behind by sloppy "City, , Country" source values.
func TrimLeadingSeparators(input string) string {
	return strings.TrimSpace(reLeadingSeps.ReplaceAllString(input, ""))
}

func FloatPtr(v float64) *float64 { return &v }

func IntPtr(v int) *int { return &v }
