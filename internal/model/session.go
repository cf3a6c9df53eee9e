package model

import "time"

// QuizResult is the rendered bundle stored with a session and returned to the SPA
type QuizResult struct {
	SortedMajors []Recommendation     `json:"sortedMajors" bson:"sortedMajors"`
	Badge        Badge                `json:"badge" bson:"badge"` // badge of the top major
	Boosters     []string             `json:"boosters" bson:"boosters"`
	Profile      PsychologicalProfile `json:"psychologicalProfile" bson:"psychologicalProfile"`
	Wildcard     *Recommendation      `json:"wildcard,omitempty" bson:"wildcard,omitempty"`
	Programs     []Program            `json:"programs" bson:"programs"`
	Explanations []string             `json:"explanations" bson:"explanations"`
}

// QuizSession is one respondent's persisted quiz run
type QuizSession struct {
	ID            string      `json:"id" bson:"_id,omitempty"`
	Locale        Locale      `json:"locale" bson:"locale"`
	Answers       []Answer    `json:"answers" bson:"answers"`
	Result        *QuizResult `json:"result,omitempty" bson:"result,omitempty"`
	AIExplanation string      `json:"aiExplanation,omitempty" bson:"aiExplanation,omitempty"`
	CreatedAt     time.Time   `json:"createdAt" bson:"createdAt"`
	CompletedAt   *time.Time  `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}
