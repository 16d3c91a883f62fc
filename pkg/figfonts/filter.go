package figfonts

import (
	"fmt"
	"regexp"
)

// TypeFilter matches font type descriptors against a user-supplied regular
// expression anchored at the start of the descriptor. "Type1" matches
// "Type1C" but "1" never matches "Type1".
type TypeFilter struct {
	re *regexp.Regexp
}

func NewTypeFilter(pattern string, ignoreCase bool) (*TypeFilter, error) {
	expr := "^(?:" + pattern + ")"
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid type pattern %q: %w", pattern, err)
	}
	return &TypeFilter{re: re}, nil
}

func (tf *TypeFilter) Match(fontType string) bool {
	return tf.re.MatchString(fontType)
}
