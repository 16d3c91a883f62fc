package figfonts

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExpandPatterns expands shell-style wildcards that the shell did not expand
// itself. Arguments containing '*' or '?' are replaced in place by their
// sorted filesystem matches; literal arguments keep their positions. A
// pattern with no matches contributes nothing.
func ExpandPatterns(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?") {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %s: %w", arg, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}
