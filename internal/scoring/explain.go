package scoring

import (
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

// maxExplanations bounds the rendered reason list.
const maxExplanations = 4

// BuildExplanations maps booster tags to human-readable sentences in the
// requested locale. The fixed priority list runs first; a second pass over
// the raw boosters in input order fills any remaining slots. Entries are
// deduplicated by rendered text. An empty input yields an empty list; a
// non-empty input that maps to nothing yields the single default phrase.
func BuildExplanations(boosters []string, locale model.Locale) []string {
	out := make([]string, 0, maxExplanations)
	if len(boosters) == 0 {
		return out
	}

	present := make(map[string]bool, len(boosters))
	for _, b := range boosters {
		present[b] = true
	}

	rendered := make(map[string]bool)
	add := func(tag string) bool {
		phrase, ok := catalog.BoosterPhrases[tag]
		if !ok {
			return false
		}
		text := phrase.In(locale)
		if rendered[text] {
			return false
		}
		rendered[text] = true
		out = append(out, text)
		return len(out) >= maxExplanations
	}

	for _, tag := range catalog.PhrasePriority {
		if present[tag] && add(tag) {
			return out
		}
	}
	for _, tag := range boosters {
		if add(tag) {
			return out
		}
	}

	if len(out) == 0 {
		out = append(out, catalog.DefaultPhrase.In(locale))
	}
	return out
}
