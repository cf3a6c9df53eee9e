package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

func TestAnswerSetKeyIgnoresOrder(t *testing.T) {
	a := []model.Answer{
		{QuestionID: catalog.QuestionProblemSolving, Response: model.ResponseData{SelectedOption: "logical"}},
		{QuestionID: catalog.QuestionInterestTech, Response: model.ResponseData{ScaleValue: 4}},
	}
	b := []model.Answer{a[1], a[0]}

	assert.Equal(t, AnswerSetKey(a), AnswerSetKey(b))
	assert.Equal(t, AnswerSetKeyString(a), AnswerSetKeyString(b))
}

func TestAnswerSetKeySensitiveToValues(t *testing.T) {
	base := []model.Answer{
		{QuestionID: catalog.QuestionInterestTech, Response: model.ResponseData{ScaleValue: 4}},
	}
	changedScale := []model.Answer{
		{QuestionID: catalog.QuestionInterestTech, Response: model.ResponseData{ScaleValue: 5}},
	}
	changedQuestion := []model.Answer{
		{QuestionID: catalog.QuestionCreativity, Response: model.ResponseData{ScaleValue: 4}},
	}

	assert.NotEqual(t, AnswerSetKey(base), AnswerSetKey(changedScale))
	assert.NotEqual(t, AnswerSetKey(base), AnswerSetKey(changedQuestion))
}

func TestAnswerSetKeySensitiveToRankedOrder(t *testing.T) {
	a := []model.Answer{
		{QuestionID: catalog.QuestionSubjects, Response: model.ResponseData{RankedOptions: []string{"computer", "math"}}},
	}
	b := []model.Answer{
		{QuestionID: catalog.QuestionSubjects, Response: model.ResponseData{RankedOptions: []string{"math", "computer"}}},
	}

	assert.NotEqual(t, AnswerSetKey(a), AnswerSetKey(b))
}

func TestAnswerSetKeyEmpty(t *testing.T) {
	assert.Equal(t, AnswerSetKey(nil), AnswerSetKey([]model.Answer{}))
}
