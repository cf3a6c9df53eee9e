package catalog

import "github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"

// Well-known question identifiers referenced by the scorer.
const (
	QuestionSubjects       = "q_subjects"
	QuestionProblemSolving = "q_problem_solving"
	QuestionTeamRole       = "q_team_role"
	QuestionWorkStyle      = "q_work_style"
	QuestionGradeBand      = "q_grade_band"
	QuestionScienceLove    = "q_science_love"
	QuestionInterestTech   = "q_interest_tech"
	QuestionCreativity     = "q_creativity"
	QuestionSocialEnergy   = "q_social_energy"
	QuestionStructurePref  = "q_structure_pref"
	QuestionHelpingDrive   = "q_helping_drive"
	QuestionBudget         = "q_budget"
)

// Grade-band synthetic booster tags, highest tier first.
const (
	GradeBand1 = "gradeBand1"
	GradeBand2 = "gradeBand2"
	GradeBand3 = "gradeBand3"
	GradeBand4 = "gradeBand4"
)

var questions = []model.Question{
	{
		ID:            QuestionSubjects,
		Kind:          model.KindRanked,
		Prompt:        model.LocalizedText{EN: "Rank your three favorite school subjects", AR: "رتب موادك الدراسية الثلاث المفضلة"},
		MaxSelections: 3,
		Options: []model.QuestionOption{
			{Key: "computer", Label: model.LocalizedText{EN: "Computer Science", AR: "الحاسوب"}},
			{Key: "math", Label: model.LocalizedText{EN: "Mathematics", AR: "الرياضيات"}},
			{Key: "physics", Label: model.LocalizedText{EN: "Physics", AR: "الفيزياء"}},
			{Key: "chemistry", Label: model.LocalizedText{EN: "Chemistry", AR: "الكيمياء"}},
			{Key: "biology", Label: model.LocalizedText{EN: "Biology", AR: "الأحياء"}},
			{Key: "literature", Label: model.LocalizedText{EN: "Literature", AR: "الأدب"}},
			{Key: "economics", Label: model.LocalizedText{EN: "Economics", AR: "الاقتصاد"}},
			{Key: "art", Label: model.LocalizedText{EN: "Art", AR: "الفن"}},
			{Key: "languages", Label: model.LocalizedText{EN: "Languages", AR: "اللغات"}},
			{Key: "social", Label: model.LocalizedText{EN: "Social Studies", AR: "الدراسات الاجتماعية"}},
		},
		Weights: map[string]map[string]float64{
			"computer":   {"cs_ai": 3, "software_eng": 3, "cybersecurity": 2, "data_science": 2},
			"math":       {"data_science": 2, "finance": 2, "economics": 2, "cs_ai": 2, "electrical_eng": 1},
			"physics":    {"mechanical_eng": 2, "electrical_eng": 2, "civil_eng": 2, "architecture": 1, "cs_ai": 1},
			"chemistry":  {"pharmacy": 3, "medicine": 2, "dentistry": 2},
			"biology":    {"medicine": 3, "dentistry": 2, "nursing": 2, "vet_med": 2, "physiotherapy": 1},
			"literature": {"law": 2, "media_comm": 2, "education": 1, "international_relations": 1},
			"economics":  {"economics": 3, "business_admin": 2, "finance": 2, "marketing": 1},
			"art":        {"graphic_design": 3, "architecture": 2, "media_comm": 1},
			"languages":  {"international_relations": 2, "tourism_hospitality": 2, "education": 1, "media_comm": 1},
			"social":     {"psychology": 2, "international_relations": 2, "law": 1, "education": 1},
		},
	},
	{
		ID:     QuestionProblemSolving,
		Kind:   model.KindSingle,
		Prompt: model.LocalizedText{EN: "How do you prefer to solve problems?", AR: "كيف تفضل حل المشكلات؟"},
		Options: []model.QuestionOption{
			{Key: "logical", Label: model.LocalizedText{EN: "Step by step, with logic", AR: "خطوة بخطوة وبالمنطق"}},
			{Key: "creative", Label: model.LocalizedText{EN: "With new, creative ideas", AR: "بأفكار جديدة ومبدعة"}},
			{Key: "practical", Label: model.LocalizedText{EN: "Hands-on, by trying things", AR: "عملياً وبالتجربة"}},
			{Key: "empathetic", Label: model.LocalizedText{EN: "By understanding people", AR: "من خلال فهم الناس"}},
			{Key: "strategic", Label: model.LocalizedText{EN: "With a long-term plan", AR: "بخطة طويلة المدى"}},
			{Key: "curious", Label: model.LocalizedText{EN: "By researching until I understand", AR: "بالبحث حتى أفهم"}},
		},
		Weights: map[string]map[string]float64{
			"logical":    {"cs_ai": 3, "software_eng": 2, "data_science": 2, "cybersecurity": 1},
			"creative":   {"graphic_design": 3, "architecture": 2, "media_comm": 2, "marketing": 1},
			"practical":  {"mechanical_eng": 2, "civil_eng": 2, "nursing": 1, "physiotherapy": 1},
			"empathetic": {"psychology": 3, "nursing": 2, "education": 2, "medicine": 1},
			"strategic":  {"business_admin": 3, "finance": 2, "economics": 2, "law": 1},
			"curious":    {"data_science": 2, "medicine": 1, "pharmacy": 1, "economics": 1},
		},
		ArchetypeByOption: map[string]model.Archetype{
			"logical":    model.ArchetypeAnalytical,
			"creative":   model.ArchetypeCreative,
			"practical":  model.ArchetypePractical,
			"empathetic": model.ArchetypeSocial,
			"strategic":  model.ArchetypeEnterprising,
			"curious":    model.ArchetypeInvestigative,
		},
	},
	{
		ID:     QuestionTeamRole,
		Kind:   model.KindSingle,
		Prompt: model.LocalizedText{EN: "In a group project, which role do you take?", AR: "في مشروع جماعي، أي دور تأخذ؟"},
		Options: []model.QuestionOption{
			{Key: "coder", Label: model.LocalizedText{EN: "The one building the tech", AR: "من يبني الجانب التقني"}},
			{Key: "designer", Label: model.LocalizedText{EN: "The one designing the look", AR: "من يصمم الشكل"}},
			{Key: "leader", Label: model.LocalizedText{EN: "The one organizing everyone", AR: "من ينظم الجميع"}},
			{Key: "analyst", Label: model.LocalizedText{EN: "The one checking the numbers", AR: "من يدقق الأرقام"}},
			{Key: "supporter", Label: model.LocalizedText{EN: "The one helping wherever needed", AR: "من يساعد حيثما يلزم"}},
			{Key: "presenter", Label: model.LocalizedText{EN: "The one presenting the result", AR: "من يعرض النتيجة"}},
		},
		Weights: map[string]map[string]float64{
			"coder":     {"cs_ai": 3, "software_eng": 3, "cybersecurity": 1},
			"designer":  {"graphic_design": 3, "architecture": 2, "media_comm": 1},
			"leader":    {"business_admin": 3, "international_relations": 1, "law": 1},
			"analyst":   {"data_science": 3, "finance": 2, "economics": 1},
			"supporter": {"nursing": 2, "psychology": 2, "education": 2},
			"presenter": {"marketing": 2, "media_comm": 2, "tourism_hospitality": 1},
		},
	},
	{
		ID:     QuestionWorkStyle,
		Kind:   model.KindSingle,
		Prompt: model.LocalizedText{EN: "Where would you like to spend your working day?", AR: "أين تحب أن تقضي يوم عملك؟"},
		Options: []model.QuestionOption{
			{Key: "lab", Label: model.LocalizedText{EN: "In a laboratory", AR: "في المختبر"}},
			{Key: "office", Label: model.LocalizedText{EN: "In an office", AR: "في المكتب"}},
			{Key: "field", Label: model.LocalizedText{EN: "Outdoors, in the field", AR: "في الميدان"}},
			{Key: "studio", Label: model.LocalizedText{EN: "In a creative studio", AR: "في استوديو إبداعي"}},
			{Key: "people", Label: model.LocalizedText{EN: "Around people all day", AR: "بين الناس طوال اليوم"}},
		},
		Weights: map[string]map[string]float64{
			"lab":    {"pharmacy": 2, "medicine": 2, "data_science": 1, "vet_med": 1},
			"office": {"finance": 2, "business_admin": 2, "software_eng": 1, "economics": 1},
			"field":  {"civil_eng": 2, "architecture": 1, "vet_med": 1, "tourism_hospitality": 1},
			"studio": {"graphic_design": 2, "architecture": 2, "media_comm": 1},
			"people": {"nursing": 2, "education": 2, "marketing": 1, "psychology": 1},
		},
		ArchetypeByOption: map[string]model.Archetype{
			"lab":    model.ArchetypeInvestigative,
			"office": model.ArchetypeConventional,
			"field":  model.ArchetypePractical,
			"studio": model.ArchetypeCreative,
			"people": model.ArchetypeSocial,
		},
	},
	{
		ID:     QuestionGradeBand,
		Kind:   model.KindSingle,
		Prompt: model.LocalizedText{EN: "What is your high-school grade average?", AR: "ما هو معدلك في الثانوية العامة؟"},
		Options: []model.QuestionOption{
			{Key: "95-100", Label: model.LocalizedText{EN: "95% – 100%", AR: "95% – 100%"}},
			{Key: "85-94", Label: model.LocalizedText{EN: "85% – 94%", AR: "85% – 94%"}},
			{Key: "75-84", Label: model.LocalizedText{EN: "75% – 84%", AR: "75% – 84%"}},
			{Key: "below-75", Label: model.LocalizedText{EN: "Below 75%", AR: "أقل من 75%"}},
		},
		GradeRules: map[string]model.GradeRule{
			"95-100": {
				Deltas: map[string]float64{"medicine": 4, "dentistry": 4, "pharmacy": 2, "cs_ai": 1, "law": 1},
				Tier:   GradeBand1,
			},
			"85-94": {
				Deltas: map[string]float64{"medicine": 2, "dentistry": 2, "pharmacy": 2, "cs_ai": 1, "electrical_eng": 1},
				Tier:   GradeBand2,
			},
			"75-84": {
				Deltas: map[string]float64{"business_admin": 1, "marketing": 1, "tourism_hospitality": 1, "nursing": 1},
				Tier:   GradeBand3,
			},
			"below-75": {
				Deltas: map[string]float64{"medicine": -6, "dentistry": -6, "pharmacy": -2, "tourism_hospitality": 1, "business_admin": 1},
				Tier:   GradeBand4,
			},
		},
	},
	{
		ID:     QuestionScienceLove,
		Kind:   model.KindSingle,
		Prompt: model.LocalizedText{EN: "Do you enjoy studying the human body and life sciences?", AR: "هل تستمتع بدراسة جسم الإنسان وعلوم الحياة؟"},
		Options: []model.QuestionOption{
			{Key: "yes", Label: model.LocalizedText{EN: "Yes", AR: "نعم"}},
			{Key: "no", Label: model.LocalizedText{EN: "No", AR: "لا"}},
		},
		YesBonus: 2,
		Targets:  []string{"medicine", "dentistry", "pharmacy", "nursing", "vet_med"},
	},
	{
		ID:          QuestionInterestTech,
		Kind:        model.KindScale,
		Prompt:      model.LocalizedText{EN: "How interested are you in technology and programming?", AR: "ما مدى اهتمامك بالتقنية والبرمجة؟"},
		ScaleMin:    1,
		ScaleMax:    5,
		ScaleWeight: 2,
		Targets:     []string{"cs_ai", "software_eng", "data_science", "cybersecurity"},
	},
	{
		ID:              QuestionCreativity,
		Kind:            model.KindScale,
		Prompt:          model.LocalizedText{EN: "How much do you enjoy creative, artistic work?", AR: "ما مدى استمتاعك بالعمل الإبداعي والفني؟"},
		ScaleMin:        1,
		ScaleMax:        5,
		ScaleWeight:     1.5,
		Targets:         []string{"graphic_design", "architecture", "media_comm", "marketing"},
		NegativeTargets: []string{"finance", "economics"},
	},
	{
		ID:              QuestionSocialEnergy,
		Kind:            model.KindScale,
		Prompt:          model.LocalizedText{EN: "How energized are you by being around new people?", AR: "ما مدى حماسك عند التعامل مع أشخاص جدد؟"},
		ScaleMin:        1,
		ScaleMax:        5,
		ScaleWeight:     1.5,
		Targets:         []string{"marketing", "tourism_hospitality", "education", "international_relations"},
		NegativeTargets: []string{"cybersecurity"},
	},
	{
		ID:          QuestionStructurePref,
		Kind:        model.KindScale,
		Prompt:      model.LocalizedText{EN: "How much do you prefer clear rules and routines?", AR: "ما مدى تفضيلك للقواعد الواضحة والروتين؟"},
		ScaleMin:    1,
		ScaleMax:    5,
		ScaleWeight: 1,
		Targets:     []string{"finance", "law", "civil_eng", "nursing"},
	},
	{
		ID:          QuestionHelpingDrive,
		Kind:        model.KindScale,
		Prompt:      model.LocalizedText{EN: "How important is directly helping people in your future job?", AR: "ما مدى أهمية مساعدة الناس مباشرةً في وظيفتك المستقبلية؟"},
		ScaleMin:    1,
		ScaleMax:    5,
		ScaleWeight: 1.5,
		Targets:     []string{"medicine", "nursing", "psychology", "education"},
	},
	{
		// Budget ceiling: collected for counselors, never an aptitude signal.
		ID:                  QuestionBudget,
		Kind:                model.KindScale,
		Prompt:              model.LocalizedText{EN: "What yearly tuition budget are you considering?", AR: "ما هي الميزانية السنوية للدراسة التي تفكر فيها؟"},
		ScaleMin:            1,
		ScaleMax:            5,
		ExcludedFromScoring: true,
	},
}

// Questions returns the full question catalog.
func Questions() []model.Question {
	return questions
}

var questionIndex = func() map[string]*model.Question {
	idx := make(map[string]*model.Question, len(questions))
	for i := range questions {
		idx[questions[i].ID] = &questions[i]
	}
	return idx
}()

// QuestionByID resolves a question, or nil when the id is unknown.
func QuestionByID(id string) *model.Question {
	return questionIndex[id]
}
