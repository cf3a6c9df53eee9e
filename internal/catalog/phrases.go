package catalog

import "github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"

// PhrasePriority is the order in which booster tags are considered when
// building explanations: grade tiers first, then the science affirmation,
// then problem-solving styles, team roles, subjects, work styles.
var PhrasePriority = []string{
	GradeBand1, GradeBand2, GradeBand3, GradeBand4,
	"yes",
	"logical", "creative", "practical", "empathetic", "strategic", "curious",
	"coder", "designer", "leader", "analyst", "supporter", "presenter",
	"computer", "math", "physics", "chemistry", "biology", "literature",
	"economics", "art", "languages", "social",
	"lab", "office", "field", "studio", "people",
	"no",
}

// BoosterPhrases maps booster tags to bilingual explanation sentences.
var BoosterPhrases = map[string]model.LocalizedText{
	GradeBand1: {EN: "Your excellent grades open the most competitive programs, including medicine.", AR: "معدلك الممتاز يفتح أمامك أكثر البرامج تنافسية، بما فيها الطب."},
	GradeBand2: {EN: "Your strong academic record qualifies you for demanding, high-entry programs.", AR: "سجلك الأكاديمي القوي يؤهلك لبرامج متطلبة ذات قبول مرتفع."},
	GradeBand3: {EN: "Your grades fit a wide range of solid university programs.", AR: "معدلك يناسب مجموعة واسعة من البرامج الجامعية الجيدة."},
	GradeBand4: {EN: "We focused on programs with flexible admission requirements for you.", AR: "ركزنا لك على برامج بشروط قبول مرنة."},
	"yes":      {EN: "Your love for life sciences points toward health-related fields.", AR: "حبك لعلوم الحياة يوجهك نحو المجالات الصحية."},
	"no":       {EN: "We steered away from heavy biology programs based on your answers.", AR: "ابتعدنا عن البرامج المعتمدة بشدة على الأحياء بناءً على إجاباتك."},

	"logical":    {EN: "You solve problems with logic, a core skill in computing fields.", AR: "تحل المشكلات بالمنطق، وهي مهارة أساسية في مجالات الحوسبة."},
	"creative":   {EN: "Your creative approach stands out and fits design-driven majors.", AR: "أسلوبك الإبداعي مميز ويناسب التخصصات القائمة على التصميم."},
	"practical":  {EN: "You learn by doing, which suits hands-on engineering work.", AR: "تتعلم بالممارسة، وهذا يناسب العمل الهندسي التطبيقي."},
	"empathetic": {EN: "You understand people well, a key strength in care professions.", AR: "تفهم الناس جيداً، وهي نقطة قوة أساسية في مهن الرعاية."},
	"strategic":  {EN: "You plan ahead, which is exactly what business study rewards.", AR: "تخطط للمستقبل، وهذا تحديداً ما تكافئه دراسة الأعمال."},
	"curious":    {EN: "Your research-first mindset fits investigative fields.", AR: "عقليتك البحثية تناسب المجالات الاستقصائية."},

	"coder":     {EN: "You naturally take the technical role in team projects.", AR: "تتولى الدور التقني بشكل طبيعي في المشاريع الجماعية."},
	"designer":  {EN: "You shape how things look and feel in your team.", AR: "أنت من يرسم شكل الأشياء وإحساسها في فريقك."},
	"leader":    {EN: "You organize people and keep projects moving.", AR: "تنظم الأشخاص وتحافظ على سير المشاريع."},
	"analyst":   {EN: "You are the one the team trusts with the numbers.", AR: "أنت من يثق به الفريق في الأرقام."},
	"supporter": {EN: "You make teams work by helping wherever needed.", AR: "تجعل الفرق تنجح بمساعدتك أينما لزم."},
	"presenter": {EN: "You communicate results clearly and confidently.", AR: "تعرض النتائج بوضوح وثقة."},

	"computer":   {EN: "Computer science ranks among your favorite subjects.", AR: "علوم الحاسوب من موادك المفضلة."},
	"math":       {EN: "Your love of mathematics supports analytical majors.", AR: "حبك للرياضيات يدعم التخصصات التحليلية."},
	"physics":    {EN: "Physics in your top picks points to engineering.", AR: "وجود الفيزياء ضمن اختياراتك الأولى يشير إلى الهندسة."},
	"chemistry":  {EN: "Chemistry among your favorites fits pharmaceutical study.", AR: "الكيمياء ضمن موادك المفضلة تناسب دراسة الصيدلة."},
	"biology":    {EN: "Biology in your top subjects supports medical fields.", AR: "الأحياء ضمن موادك الأولى تدعم المجالات الطبية."},
	"literature": {EN: "Your literary side fits reading-heavy programs like law.", AR: "جانبك الأدبي يناسب البرامج الغنية بالقراءة مثل القانون."},
	"economics":  {EN: "Your interest in economics matches business and finance.", AR: "اهتمامك بالاقتصاد يطابق مجالي الأعمال والمالية."},
	"art":        {EN: "Art among your favorites signals visual creativity.", AR: "الفن ضمن موادك المفضلة يدل على إبداع بصري."},
	"languages":  {EN: "Strong languages open international and media paths.", AR: "اللغات القوية تفتح المسارات الدولية والإعلامية."},
	"social":     {EN: "Social studies in your picks fits people-centered fields.", AR: "الدراسات الاجتماعية في اختياراتك تناسب المجالات المتمحورة حول الإنسان."},

	"lab":    {EN: "You see yourself in a lab, like pharmacists and researchers.", AR: "ترى نفسك في المختبر، مثل الصيادلة والباحثين."},
	"office": {EN: "You prefer structured office work, common in finance careers.", AR: "تفضل العمل المكتبي المنظم، وهو شائع في المهن المالية."},
	"field":  {EN: "You want to work outdoors, like civil engineers do.", AR: "تريد العمل في الميدان، كما يفعل مهندسو المدنية."},
	"studio": {EN: "A creative studio is your natural habitat.", AR: "الاستوديو الإبداعي هو بيئتك الطبيعية."},
	"people": {EN: "Being around people energizes you, a must in service fields.", AR: "التواجد بين الناس يمنحك الطاقة، وهذا أساسي في مجالات الخدمة."},
}

// DefaultPhrase is emitted when boosters exist but none maps to a phrase.
var DefaultPhrase = model.LocalizedText{
	EN: "Your combination of answers shaped this recommendation.",
	AR: "مزيج إجاباتك هو ما شكل هذه التوصية.",
}

// WildcardReason is the single reason attached to a wildcard recommendation.
var WildcardReason = model.LocalizedText{
	EN: "An unexpected path worth exploring based on your hidden strengths.",
	AR: "مسار غير متوقع يستحق الاستكشاف بناءً على نقاط قوتك الخفية.",
}
