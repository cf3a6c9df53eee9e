package scoring

import (
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

// buildProfile accumulates the nine archetype buckets from the same answer
// set the scorer consumes. Three feeds apply, in priority order per
// question: the team-role table, the recognized-scale-question table, and
// the generic archetype-by-option mapping.
func buildProfile(answers []model.Answer) model.PsychologicalProfile {
	buckets := make(map[model.Archetype]float64, len(model.Archetypes))
	for _, a := range model.Archetypes {
		buckets[a] = 0
	}

	for i := range answers {
		a := &answers[i]
		q := catalog.QuestionByID(a.QuestionID)
		if q == nil {
			continue
		}

		switch {
		case q.ID == catalog.QuestionTeamRole:
			if arch, ok := catalog.TeamRoleArchetypes[a.Response.SelectedOption]; ok {
				buckets[arch] += catalog.ArchetypeTeamRoleIncrement
			}
		case q.Kind == model.KindScale:
			if feeds, ok := catalog.ScaleProfileFeeds[q.ID]; ok {
				norm := q.ScaleNorm(a.Response.ScaleValue)
				for _, f := range feeds {
					buckets[f.Bucket] += f.Mult * norm
				}
			}
		case len(q.ArchetypeByOption) > 0:
			if arch, ok := q.ArchetypeByOption[a.Response.SelectedOption]; ok {
				buckets[arch] += catalog.ArchetypeOptionIncrement
			}
		}
	}

	primary, secondary := rankBuckets(buckets)

	summary := catalog.ArchetypeDescriptions[primary]
	if secondary != "" {
		clause := catalog.SecondaryClauses[secondary]
		summary = model.LocalizedText{EN: summary.EN + clause.EN, AR: summary.AR + clause.AR}
	}

	return model.PsychologicalProfile{
		Buckets:   buckets,
		Primary:   primary,
		Secondary: secondary,
		Summary:   summary,
	}
}

// rankBuckets picks the primary bucket and, when it reaches half the
// primary's value, the secondary. Ties resolve by the fixed archetype
// order so output stays deterministic.
func rankBuckets(buckets map[model.Archetype]float64) (model.Archetype, model.Archetype) {
	primary := model.Archetypes[0]
	for _, a := range model.Archetypes[1:] {
		if buckets[a] > buckets[primary] {
			primary = a
		}
	}

	var secondary model.Archetype
	for _, a := range model.Archetypes {
		if a == primary {
			continue
		}
		if secondary == "" || buckets[a] > buckets[secondary] {
			secondary = a
		}
	}
	if secondary != "" && (buckets[secondary] <= 0 || buckets[secondary] < buckets[primary]/2) {
		secondary = ""
	}

	return primary, secondary
}
