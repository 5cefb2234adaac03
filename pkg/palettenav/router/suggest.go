package router

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance still worth suggesting.
const maxSuggestDistance = 4

// Suggest returns the static route path closest to path, or "" when nothing
// is close. Used to explain catch-all redirects in logs and the CLI.
func (n *Navigator) Suggest(path string) string {
	target, _, _ := splitLocation(path)
	target = strings.ToLower(target)

	best, bestDistance := "", maxSuggestDistance+1
	for _, r := range n.routes {
		if !r.pattern.isStatic() || r.Path == "/" {
			continue
		}
		d := levenshtein.ComputeDistance(target, strings.ToLower(r.Path))
		if d < bestDistance {
			best, bestDistance = r.Path, d
		}
	}
	return best
}
