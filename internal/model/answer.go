package model

// ResponseData holds the answer value; the populated field depends on the
// question's answer kind.
type ResponseData struct {
	SelectedOption string   `json:"selectedOption,omitempty" bson:"selectedOption,omitempty"` // SINGLE
	RankedOptions  []string `json:"rankedOptions,omitempty" bson:"rankedOptions,omitempty"`   // RANKED, in chosen order
	ScaleValue     float64  `json:"scaleValue,omitempty" bson:"scaleValue,omitempty"`         // SCALE
}

// Answer is one respondent's response to one question
type Answer struct {
	QuestionID string       `json:"questionId" bson:"questionId"`
	Response   ResponseData `json:"response" bson:"response"`
}
