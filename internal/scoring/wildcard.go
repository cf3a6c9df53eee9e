package scoring

import (
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

// Wildcard selection constants. The rank window and minimum match are
// tuned values carried over as-is.
const (
	wildcardWindowStart = 3 // 4th ranked entry
	wildcardWindowEnd   = 8 // exclusive
	wildcardMinMatch    = 30
)

// pickWildcard surfaces a lower-ranked major as a deliberate "unexpected
// but plausible" recommendation. Majors matching the secondary archetype
// win inside the window; otherwise the 4th entry qualifies when its match
// percentage is high enough. The chosen entry is flagged in place and a
// copy with the wildcard reason is returned.
func pickWildcard(sorted []model.Recommendation, secondary model.Archetype) *model.Recommendation {
	pick := -1

	if secondary != "" {
		suited := catalog.ArchetypeMajors[secondary]
		for i := wildcardWindowStart; i < wildcardWindowEnd && i < len(sorted); i++ {
			if containsSlug(suited, sorted[i].Slug) {
				pick = i
				break
			}
		}
	}

	if pick < 0 {
		if len(sorted) > wildcardWindowStart && sorted[wildcardWindowStart].MatchScore >= wildcardMinMatch {
			pick = wildcardWindowStart
		}
	}
	if pick < 0 {
		return nil
	}

	sorted[pick].IsWildcard = true
	wc := sorted[pick]
	wc.Reasons = []model.LocalizedText{catalog.WildcardReason}
	return &wc
}

func containsSlug(slugs []string, slug string) bool {
	for _, s := range slugs {
		if s == slug {
			return true
		}
	}
	return false
}
