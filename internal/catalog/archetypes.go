package catalog

import "github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"

// ScaleProfileFeed routes one recognized scale question into one or two
// archetype buckets, multiplied by the 0-1 normalized scale value.
type ScaleProfileFeed struct {
	Bucket model.Archetype
	Mult   float64
}

// ScaleProfileFeeds maps scale question ids to their archetype feeds.
var ScaleProfileFeeds = map[string][]ScaleProfileFeed{
	QuestionInterestTech:  {{Bucket: model.ArchetypeAnalytical, Mult: 3}, {Bucket: model.ArchetypeInvestigative, Mult: 1.5}},
	QuestionCreativity:    {{Bucket: model.ArchetypeCreative, Mult: 3}, {Bucket: model.ArchetypeIntuitive, Mult: 1.5}},
	QuestionSocialEnergy:  {{Bucket: model.ArchetypeSocial, Mult: 3}, {Bucket: model.ArchetypeEnterprising, Mult: 1.5}},
	QuestionStructurePref: {{Bucket: model.ArchetypeConventional, Mult: 3}},
	QuestionHelpingDrive:  {{Bucket: model.ArchetypeIdealistic, Mult: 3}, {Bucket: model.ArchetypeSocial, Mult: 1}},
}

// TeamRoleArchetypes maps team-role answers to archetype buckets. The
// team-role question feeds the profile through this table, not through a
// generic option mapping.
var TeamRoleArchetypes = map[string]model.Archetype{
	"coder":     model.ArchetypeAnalytical,
	"designer":  model.ArchetypeCreative,
	"leader":    model.ArchetypeEnterprising,
	"analyst":   model.ArchetypeInvestigative,
	"supporter": model.ArchetypeSocial,
	"presenter": model.ArchetypeEnterprising,
}

// Fixed profile increments.
const (
	ArchetypeOptionIncrement   = 2   // archetype-mapped single-choice options
	ArchetypeTeamRoleIncrement = 2.5 // team-role answers
)

// ArchetypeDescriptions are the fixed primary-archetype summary sentences.
var ArchetypeDescriptions = map[model.Archetype]model.LocalizedText{
	model.ArchetypeAnalytical:    {EN: "You are an analytical thinker who breaks problems into clear steps.", AR: "أنت مفكر تحليلي يفكك المشكلات إلى خطوات واضحة."},
	model.ArchetypeCreative:      {EN: "You are a creative mind who sees possibilities others miss.", AR: "أنت عقل مبدع يرى إمكانيات لا يراها الآخرون."},
	model.ArchetypeSocial:        {EN: "You are a people person who thrives on human connection.", AR: "أنت شخص اجتماعي يزدهر بالتواصل الإنساني."},
	model.ArchetypePractical:     {EN: "You are a hands-on doer who learns by building and trying.", AR: "أنت شخص عملي يتعلم بالبناء والتجربة."},
	model.ArchetypeInvestigative: {EN: "You are a natural researcher who digs until things make sense.", AR: "أنت باحث بالفطرة يتعمق حتى تتضح الأمور."},
	model.ArchetypeEnterprising:  {EN: "You are a driven organizer who turns plans into results.", AR: "أنت منظم طموح يحول الخطط إلى نتائج."},
	model.ArchetypeIntuitive:     {EN: "You trust your instincts and read situations quickly.", AR: "تثق بحدسك وتقرأ المواقف بسرعة."},
	model.ArchetypeIdealistic:    {EN: "You are guided by values and want your work to matter.", AR: "تقودك القيم وتريد لعملك أن يكون ذا معنى."},
	model.ArchetypeConventional:  {EN: "You value order and excel in structured environments.", AR: "تقدر النظام وتتفوق في البيئات المنظمة."},
}

// SecondaryClauses are appended when a secondary archetype qualifies.
var SecondaryClauses = map[model.Archetype]model.LocalizedText{
	model.ArchetypeAnalytical:    {EN: " You also have a sharp analytical side.", AR: " ولديك أيضاً جانب تحليلي حاد."},
	model.ArchetypeCreative:      {EN: " You also carry a strong creative streak.", AR: " ولديك أيضاً نزعة إبداعية قوية."},
	model.ArchetypeSocial:        {EN: " You also connect easily with people.", AR: " وتتواصل أيضاً مع الناس بسهولة."},
	model.ArchetypePractical:     {EN: " You also like getting things done with your hands.", AR: " وتحب أيضاً إنجاز الأمور بيديك."},
	model.ArchetypeInvestigative: {EN: " You also enjoy digging into the details.", AR: " وتستمتع أيضاً بالتعمق في التفاصيل."},
	model.ArchetypeEnterprising:  {EN: " You also know how to lead when it counts.", AR: " وتعرف أيضاً كيف تقود عندما يلزم الأمر."},
	model.ArchetypeIntuitive:     {EN: " You also rely on strong instincts.", AR: " وتعتمد أيضاً على حدس قوي."},
	model.ArchetypeIdealistic:    {EN: " You also care deeply about making a difference.", AR: " وتهتم أيضاً بإحداث فرق حقيقي."},
	model.ArchetypeConventional:  {EN: " You also bring welcome structure to your work.", AR: " وتضيف أيضاً تنظيماً محموداً إلى عملك."},
}

// ArchetypeMajors is the wildcard lookup: majors that suit each archetype
// as an unexpected-but-plausible recommendation.
var ArchetypeMajors = map[model.Archetype][]string{
	model.ArchetypeAnalytical:    {"data_science", "electrical_eng", "finance"},
	model.ArchetypeCreative:      {"architecture", "media_comm", "graphic_design"},
	model.ArchetypeSocial:        {"education", "psychology", "tourism_hospitality"},
	model.ArchetypePractical:     {"civil_eng", "mechanical_eng", "vet_med"},
	model.ArchetypeInvestigative: {"pharmacy", "economics", "data_science"},
	model.ArchetypeEnterprising:  {"marketing", "international_relations", "business_admin"},
	model.ArchetypeIntuitive:     {"psychology", "graphic_design", "media_comm"},
	model.ArchetypeIdealistic:    {"international_relations", "education", "law"},
	model.ArchetypeConventional:  {"finance", "law", "nursing"},
}
