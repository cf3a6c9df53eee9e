package model

// AnswerKind defines how a question is answered
type AnswerKind string

const (
	KindRanked AnswerKind = "RANKED" // pick and order several options
	KindSingle AnswerKind = "SINGLE" // pick exactly one option
	KindScale  AnswerKind = "SCALE"  // linear 1..N slider
)

// Locale is a UI language tag
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

// LocalizedText is a bilingual string pair
type LocalizedText struct {
	EN string `json:"en" bson:"en"`
	AR string `json:"ar" bson:"ar"`
}

// In returns the text for the requested locale, defaulting to English.
func (t LocalizedText) In(locale Locale) string {
	if locale == LocaleAR {
		return t.AR
	}
	return t.EN
}

// QuestionOption is one selectable option of a ranked or single question
type QuestionOption struct {
	Key   string        `json:"key"`
	Label LocalizedText `json:"label"`
}

// GradeRule maps one grade bucket to direct score deltas plus the
// synthetic booster tag that encodes the chosen tier.
type GradeRule struct {
	Deltas map[string]float64
	Tier   string // gradeBand1..gradeBand4
}

// Question is one quiz item. Defined once at startup, immutable after.
type Question struct {
	ID     string        `json:"id"`
	Kind   AnswerKind    `json:"kind"`
	Prompt LocalizedText `json:"prompt"`

	// Ranked/single questions
	Options       []QuestionOption              `json:"options,omitempty"`
	MaxSelections int                           `json:"maxSelections,omitempty"` // ranked only
	Weights       map[string]map[string]float64 `json:"-"`                       // option key -> major slug -> weight

	// Grade-band question: overrides the generic weight path
	GradeRules map[string]GradeRule `json:"-"`

	// Yes-bonus questions: fixed bonus to Targets when the answer is "yes"
	YesBonus float64 `json:"-"`

	// Scale questions
	ScaleMin        int      `json:"scaleMin,omitempty"`
	ScaleMax        int      `json:"scaleMax,omitempty"`
	ScaleWeight     float64  `json:"-"`
	Targets         []string `json:"-"`
	NegativeTargets []string `json:"-"`

	// The budget ceiling question carries a scale but never moves major scores
	ExcludedFromScoring bool `json:"-"`

	// Secondary mapping feeding the psychological profile
	ArchetypeByOption map[string]Archetype `json:"-"`
}

// ScaleMidpoint returns the center of the scale range.
func (q *Question) ScaleMidpoint() float64 {
	return float64(q.ScaleMin+q.ScaleMax) / 2
}

// ScaleNorm normalizes a scale value into 0..1.
func (q *Question) ScaleNorm(value float64) float64 {
	span := float64(q.ScaleMax - q.ScaleMin)
	if span <= 0 {
		return 0
	}
	n := (value - float64(q.ScaleMin)) / span
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}
