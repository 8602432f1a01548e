package data

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestions caps the suggestion list returned by FindSpecies.
const maxSuggestions = 3

// FindSpecies resolves a user-typed species reference. It accepts the ID
// ("azure_trout") or the display name ("Azure Trout"), case-insensitive.
// When nothing matches exactly it returns nil and up to three close names
// ranked by edit distance.
func FindSpecies(query string) (*Species, []string) {
	q := normalizeName(query)
	if q == "" {
		return nil, nil
	}

	for _, s := range FishSpecies {
		if normalizeName(s.ID) == q || normalizeName(s.Name) == q {
			return s, nil
		}
	}

	type scored struct {
		name string
		dist int
	}
	results := make([]scored, 0, len(FishSpecies))
	for _, s := range FishSpecies {
		cand := normalizeName(s.Name)
		var dist int
		if strings.HasPrefix(cand, q) && len(q) >= 2 {
			dist = 0
		} else {
			dist = levenshtein.ComputeDistance(q, cand)
			if dist > distanceLimit(len(cand)) {
				continue
			}
		}
		results = append(results, scored{name: s.Name, dist: dist})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].name < results[j].name
		}
		return results[i].dist < results[j].dist
	})

	suggestions := make([]string, 0, maxSuggestions)
	for _, r := range results {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, r.name)
	}
	return nil, suggestions
}

// normalizeName lowercases and folds underscores so IDs and names compare.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", " ")
}

// distanceLimit allows roughly one typo per four characters.
func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return n / 4
	}
}
