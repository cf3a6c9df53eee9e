package scoring

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

// AnswerSetKey returns a stable content hash of an answer set. Answers are
// serialized deterministically and sorted before hashing, so slice order
// never changes the key while any value change does. This keys both the
// in-process memo and the shared redis result cache.
func AnswerSetKey(answers []model.Answer) uint64 {
	lines := make([]string, len(answers))
	for i := range answers {
		a := &answers[i]
		lines[i] = a.QuestionID + "|" +
			a.Response.SelectedOption + "|" +
			strings.Join(a.Response.RankedOptions, ",") + "|" +
			strconv.FormatFloat(a.Response.ScaleValue, 'g', -1, 64)
	}
	sort.Strings(lines)

	d := xxhash.New()
	for _, line := range lines {
		_, _ = d.WriteString(line)
		_, _ = d.WriteString("\n")
	}
	return d.Sum64()
}

// AnswerSetKeyString renders the key for use as a cache identifier.
func AnswerSetKeyString(answers []model.Answer) string {
	return strconv.FormatUint(AnswerSetKey(answers), 16)
}
