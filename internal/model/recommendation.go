package model

// Badge is the emoji marker shown next to a recommended major
type Badge struct {
	Emoji string        `json:"emoji" bson:"emoji"`
	Label LocalizedText `json:"label" bson:"label"`
}

// Recommendation is one ranked major in a score result
type Recommendation struct {
	Slug       string          `json:"slug" bson:"slug"`
	Score      float64         `json:"score" bson:"score"`
	MatchScore int             `json:"matchScore" bson:"matchScore"` // 0-99, compressed for the top three
	Reasons    []LocalizedText `json:"reasons" bson:"reasons"`       // up to 3, never empty
	IsWildcard bool            `json:"isWildcard,omitempty" bson:"isWildcard,omitempty"`
}

// ScoreResult is the scorer's full output
type ScoreResult struct {
	Scores       map[string]float64   `json:"scores" bson:"scores"` // every major incl. "other", floored at 0
	SortedMajors []Recommendation     `json:"sortedMajors" bson:"sortedMajors"`
	Boosters     []string             `json:"boosters" bson:"boosters"`
	Profile      PsychologicalProfile `json:"psychologicalProfile" bson:"psychologicalProfile"`
	Wildcard     *Recommendation      `json:"wildcard,omitempty" bson:"wildcard,omitempty"`
}

// Program is a displayable catalog program title
type Program struct {
	Title string `json:"title" bson:"title"`
}
