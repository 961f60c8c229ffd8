package options

import "github.com/agext/levenshtein"

// Suggest returns the catalog option name closest to given, or an empty
// string if none is close enough to be a likely typo.
func (c *Catalog) Suggest(given string) string {
	const maxDistance = 3

	best, bestDist := "", maxDistance
	for _, name := range c.order {
		dist := levenshtein.Distance(given, name, nil)
		if dist < bestDist {
			best, bestDist = name, dist
		}
	}
	return best
}
