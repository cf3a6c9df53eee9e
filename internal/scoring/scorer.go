// Package scoring implements the major-recommendation engine: the weighted
// scorer over quiz answers, the psychological profile, the wildcard pick,
// the program keyword index and the explanation builder. Everything here is
// pure in-memory computation over the static catalog; nothing performs I/O
// and the public entry points never fail outward.
package scoring

import (
	"log"
	"math"
	"sort"
	"sync"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

// Scorer converts answer sets into ranked major recommendations. It keeps
// the last computed result keyed by a content hash of the answers, so the
// UI can recompute on every answer mutation without paying for identical
// sets. Safe for concurrent use. Results are shared; callers must not
// mutate them.
type Scorer struct {
	mu      sync.Mutex
	lastKey uint64
	last    *model.ScoreResult
}

// NewScorer creates a scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes (or returns the memoized) result for an answer set.
func (s *Scorer) Score(answers []model.Answer) *model.ScoreResult {
	key := AnswerSetKey(answers)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last != nil && s.lastKey == key {
		return s.last
	}

	result := scoreAnswers(answers)
	s.lastKey = key
	s.last = result
	return result
}

// questionOrder maps question ids to their catalog position, used to fold
// answers in a canonical order.
var questionOrder = func() map[string]int {
	order := make(map[string]int, len(catalog.Questions()))
	for i, q := range catalog.Questions() {
		order[q.ID] = i
	}
	return order
}()

func questionRank(id string) int {
	if r, ok := questionOrder[id]; ok {
		return r
	}
	return len(questionOrder)
}

// canonicalAnswers reorders an answer set into catalog question order, with
// unknown question ids last by id. The memo key ignores slice order, so the
// fold must too: every permutation of the same answers has to produce a
// byte-identical result, booster order included.
func canonicalAnswers(answers []model.Answer) []model.Answer {
	out := make([]model.Answer, len(answers))
	copy(out, answers)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := questionRank(out[i].QuestionID), questionRank(out[j].QuestionID)
		if a != b {
			return a < b
		}
		return out[i].QuestionID < out[j].QuestionID
	})
	return out
}

// scoreAnswers is the pure scoring pipeline.
func scoreAnswers(answers []model.Answer) *model.ScoreResult {
	answers = canonicalAnswers(answers)

	scores := make(map[string]float64, len(catalog.Majors)+1)
	for _, slug := range catalog.Majors {
		scores[slug] = 0
	}
	scores[catalog.MajorOther] = 0

	boosters := make([]string, 0, len(answers))
	seen := make(map[string]bool)
	addBooster := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		boosters = append(boosters, tag)
	}

	for i := range answers {
		a := &answers[i]
		q := catalog.QuestionByID(a.QuestionID)
		if q == nil {
			log.Printf("scoring: skipping answer for unknown question %q", a.QuestionID)
			continue
		}

		switch q.Kind {
		case model.KindRanked:
			applyRanked(q, a.Response.RankedOptions, scores, addBooster)
		case model.KindSingle:
			applySingle(q, a.Response.SelectedOption, scores, addBooster)
		case model.KindScale:
			applyScale(q, a.Response.ScaleValue, scores)
		}
	}

	// Negative accumulations are never reported.
	for slug, v := range scores {
		if v < 0 {
			scores[slug] = 0
		}
	}

	maxScore := 1.0
	for _, v := range scores {
		if v > maxScore {
			maxScore = v
		}
	}

	sorted := buildSorted(scores, maxScore)
	if len(sorted) == 0 {
		// Pathological catalog: the UI must still have something to show.
		log.Printf("scoring: no valid majors after filtering, substituting default recommendation")
		sorted = []model.Recommendation{defaultRecommendation()}
	}
	compressTop(sorted)

	profile := buildProfile(answers)
	wildcard := pickWildcard(sorted, profile.Secondary)

	return &model.ScoreResult{
		Scores:       scores,
		SortedMajors: sorted,
		Boosters:     boosters,
		Profile:      profile,
		Wildcard:     wildcard,
	}
}

// applyRanked folds one ranked-choice answer into the scores. Position i
// carries weight 3-i for the first three picks; later picks score nothing
// but are still recorded as boosters.
func applyRanked(q *model.Question, selected []string, scores map[string]float64, addBooster func(string)) {
	for i, opt := range selected {
		var positional float64
		if i < 3 {
			positional = float64(3 - i)
		}

		weights, ok := q.Weights[opt]
		if !ok {
			log.Printf("scoring: question %s has no weights for option %q", q.ID, opt)
		}
		for slug, w := range weights {
			scores[slug] += w * positional
		}
		addBooster(opt)
	}
}

// applySingle folds one single-choice answer into the scores. The grade-band
// rule chain takes priority over the generic weight path, which in turn
// takes priority over the yes-bonus path.
func applySingle(q *model.Question, value string, scores map[string]float64, addBooster func(string)) {
	if value == "" {
		return
	}

	if len(q.GradeRules) > 0 {
		rule, ok := q.GradeRules[value]
		if !ok {
			log.Printf("scoring: question %s has no grade rule for bucket %q", q.ID, value)
			return
		}
		for slug, delta := range rule.Deltas {
			scores[slug] += delta
		}
		addBooster(rule.Tier)
		return
	}

	if len(q.Weights) > 0 {
		weights, ok := q.Weights[value]
		if !ok {
			log.Printf("scoring: question %s has no weights for option %q", q.ID, value)
		}
		for slug, w := range weights {
			scores[slug] += w
		}
	} else if q.YesBonus > 0 && value == "yes" {
		for _, slug := range q.Targets {
			scores[slug] += q.YesBonus
		}
	}
	addBooster(value)
}

// applyScale folds one linear-scale answer into the scores. Negative
// targets receive an inverse contribution around the scale midpoint.
func applyScale(q *model.Question, value float64, scores map[string]float64) {
	if q.ExcludedFromScoring {
		return
	}
	if q.ScaleWeight <= 0 || len(q.Targets) == 0 {
		return
	}

	for _, slug := range q.Targets {
		scores[slug] += value * q.ScaleWeight
	}
	for _, slug := range q.NegativeTargets {
		scores[slug] -= (value - q.ScaleMidpoint()) * q.ScaleWeight * 0.5
	}
}

// buildSorted ranks every recommendable major by raw score with the fixed
// tie-break: the favored major first among ties, the deprioritized major
// last, everything else by ascending slug.
func buildSorted(scores map[string]float64, maxScore float64) []model.Recommendation {
	recs := make([]model.Recommendation, 0, len(catalog.Majors))
	for _, slug := range catalog.Majors {
		score := scores[slug]
		match := int(math.Round(score / maxScore * 100))
		if match > 99 {
			match = 99
		}
		recs = append(recs, model.Recommendation{
			Slug:       slug,
			Score:      score,
			MatchScore: match,
			Reasons:    catalog.ReasonsFor(slug),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return tieLess(a.Slug, b.Slug)
	})
	return recs
}

func tieLess(a, b string) bool {
	switch {
	case a == catalog.TieFavoredMajor:
		return true
	case b == catalog.TieFavoredMajor:
		return false
	case a == catalog.TieDeprioritizedMajor:
		return false
	case b == catalog.TieDeprioritizedMajor:
		return true
	}
	return a < b
}

// compressTop squeezes the top three match percentages into their
// presentation bands: rank 0 into [75,95], ranks 1-2 into [60,90] after
// dropping 5 points per rank. Later ranks keep the raw percentage.
func compressTop(recs []model.Recommendation) {
	for rank := 0; rank < 3 && rank < len(recs); rank++ {
		v := recs[rank].MatchScore
		if rank == 0 {
			recs[rank].MatchScore = clampInt(v, 75, 95)
			continue
		}
		recs[rank].MatchScore = clampInt(v-5*rank, 60, 90)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func defaultRecommendation() model.Recommendation {
	return model.Recommendation{
		Slug:       "business_admin",
		Score:      0,
		MatchScore: 75,
		Reasons:    catalog.GenericReasons,
	}
}
