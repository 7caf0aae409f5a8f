package engine

import (
	"sort"
	"strings"

	"forkful/models"
)

// SimilarityThreshold is the minimum Jaccard similarity at which an existing
// recipe is suggested as a likely duplicate.
const SimilarityThreshold = 0.30

// JaccardSimilarity measures the overlap of two ingredient-name lists as
// |intersection| / |union| after trimming and case folding each name into a
// set. An empty set on either side yields zero: empty inputs carry no
// comparable signal, so two empty lists are not considered identical.
func JaccardSimilarity(namesA, namesB []string) float64 {
	setA := nameSet(namesA)
	setB := nameSet(namesB)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for name := range setA {
		if _, ok := setB[name]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

// SimilarMatch is a duplicate-recipe suggestion.
type SimilarMatch struct {
	Recipe     models.Recipe `json:"recipe"`
	Similarity float64       `json:"similarity"`
}

// BestSimilarRecipe compares an ingredient-name set against every candidate
// recipe and returns the closest match at or above SimilarityThreshold.
// Candidates are scanned in ascending ID order and only a strictly higher
// similarity replaces the current best, so the lowest recipe ID wins ties.
// ok is false when nothing clears the threshold.
func BestSimilarRecipe(names []string, candidates []models.Recipe) (SimilarMatch, bool) {
	ordered := make([]models.Recipe, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	best := SimilarMatch{}
	found := false
	for _, candidate := range ordered {
		similarity := JaccardSimilarity(names, candidate.IngredientNames())
		if similarity < SimilarityThreshold {
			continue
		}
		if !found || similarity > best.Similarity {
			best = SimilarMatch{Recipe: candidate, Similarity: similarity}
			found = true
		}
	}

	return best, found
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}
