// Package catalog holds the static reference data for the quiz: questions,
// majors, badges, reason templates, keyword lists, program titles and the
// phrase tables used to explain results. All of it is defined once and
// read-only afterwards.
package catalog

import "github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"

// MajorOther is the catch-all bucket. It accumulates score like any other
// major but must never be recommended.
const MajorOther = "other"

// Tie-break anchors for equal raw scores.
const (
	TieFavoredMajor       = "cs_ai"
	TieDeprioritizedMajor = "business_admin"
)

// Majors lists every recommendable slug. MajorOther is deliberately absent.
var Majors = []string{
	"medicine",
	"dentistry",
	"pharmacy",
	"nursing",
	"physiotherapy",
	"vet_med",
	"cs_ai",
	"software_eng",
	"cybersecurity",
	"data_science",
	"civil_eng",
	"mechanical_eng",
	"electrical_eng",
	"architecture",
	"business_admin",
	"finance",
	"marketing",
	"economics",
	"law",
	"international_relations",
	"psychology",
	"education",
	"media_comm",
	"graphic_design",
	"tourism_hospitality",
}

// MajorNames maps slugs to bilingual display names.
var MajorNames = map[string]model.LocalizedText{
	"medicine":                {EN: "Medicine", AR: "الطب البشري"},
	"dentistry":               {EN: "Dentistry", AR: "طب الأسنان"},
	"pharmacy":                {EN: "Pharmacy", AR: "الصيدلة"},
	"nursing":                 {EN: "Nursing", AR: "التمريض"},
	"physiotherapy":           {EN: "Physiotherapy", AR: "العلاج الطبيعي"},
	"vet_med":                 {EN: "Veterinary Medicine", AR: "الطب البيطري"},
	"cs_ai":                   {EN: "Computer Science & AI", AR: "علوم الحاسوب والذكاء الاصطناعي"},
	"software_eng":            {EN: "Software Engineering", AR: "هندسة البرمجيات"},
	"cybersecurity":           {EN: "Cybersecurity", AR: "الأمن السيبراني"},
	"data_science":            {EN: "Data Science", AR: "علم البيانات"},
	"civil_eng":               {EN: "Civil Engineering", AR: "الهندسة المدنية"},
	"mechanical_eng":          {EN: "Mechanical Engineering", AR: "الهندسة الميكانيكية"},
	"electrical_eng":          {EN: "Electrical Engineering", AR: "الهندسة الكهربائية"},
	"architecture":            {EN: "Architecture", AR: "هندسة العمارة"},
	"business_admin":          {EN: "Business Administration", AR: "إدارة الأعمال"},
	"finance":                 {EN: "Finance & Accounting", AR: "المالية والمحاسبة"},
	"marketing":               {EN: "Marketing", AR: "التسويق"},
	"economics":               {EN: "Economics", AR: "الاقتصاد"},
	"law":                     {EN: "Law", AR: "القانون"},
	"international_relations": {EN: "International Relations", AR: "العلاقات الدولية"},
	"psychology":              {EN: "Psychology", AR: "علم النفس"},
	"education":               {EN: "Education", AR: "التربية والتعليم"},
	"media_comm":              {EN: "Media & Communication", AR: "الإعلام والاتصال"},
	"graphic_design":          {EN: "Graphic Design", AR: "التصميم الجرافيكي"},
	"tourism_hospitality":     {EN: "Tourism & Hospitality", AR: "السياحة والضيافة"},
}

// DefaultBadge is used for any slug missing from Badges.
var DefaultBadge = model.Badge{
	Emoji: "🎓",
	Label: model.LocalizedText{EN: "Future Graduate", AR: "خريج المستقبل"},
}

// Badges maps slugs to the badge shown on the result card.
var Badges = map[string]model.Badge{
	"medicine":                {Emoji: "🩺", Label: model.LocalizedText{EN: "Future Doctor", AR: "طبيب المستقبل"}},
	"dentistry":               {Emoji: "🦷", Label: model.LocalizedText{EN: "Future Dentist", AR: "طبيب أسنان المستقبل"}},
	"pharmacy":                {Emoji: "💊", Label: model.LocalizedText{EN: "Future Pharmacist", AR: "صيدلي المستقبل"}},
	"nursing":                 {Emoji: "🏥", Label: model.LocalizedText{EN: "Care Hero", AR: "بطل الرعاية"}},
	"physiotherapy":           {Emoji: "🤸", Label: model.LocalizedText{EN: "Movement Expert", AR: "خبير الحركة"}},
	"vet_med":                 {Emoji: "🐾", Label: model.LocalizedText{EN: "Animal Doctor", AR: "طبيب الحيوانات"}},
	"cs_ai":                   {Emoji: "🤖", Label: model.LocalizedText{EN: "AI Pioneer", AR: "رائد الذكاء الاصطناعي"}},
	"software_eng":            {Emoji: "💻", Label: model.LocalizedText{EN: "Code Builder", AR: "باني البرمجيات"}},
	"cybersecurity":           {Emoji: "🛡️", Label: model.LocalizedText{EN: "Digital Guardian", AR: "حارس رقمي"}},
	"data_science":            {Emoji: "📊", Label: model.LocalizedText{EN: "Data Detective", AR: "محقق البيانات"}},
	"civil_eng":               {Emoji: "🏗️", Label: model.LocalizedText{EN: "City Shaper", AR: "صانع المدن"}},
	"mechanical_eng":          {Emoji: "⚙️", Label: model.LocalizedText{EN: "Machine Master", AR: "سيد الآلات"}},
	"electrical_eng":          {Emoji: "⚡", Label: model.LocalizedText{EN: "Power Engineer", AR: "مهندس الطاقة"}},
	"architecture":            {Emoji: "📐", Label: model.LocalizedText{EN: "Space Designer", AR: "مصمم الفضاءات"}},
	"business_admin":          {Emoji: "💼", Label: model.LocalizedText{EN: "Future Leader", AR: "قائد المستقبل"}},
	"finance":                 {Emoji: "💰", Label: model.LocalizedText{EN: "Money Strategist", AR: "استراتيجي المال"}},
	"marketing":               {Emoji: "📣", Label: model.LocalizedText{EN: "Brand Storyteller", AR: "راوي العلامات التجارية"}},
	"economics":               {Emoji: "📈", Label: model.LocalizedText{EN: "Market Thinker", AR: "مفكر الأسواق"}},
	"law":                     {Emoji: "⚖️", Label: model.LocalizedText{EN: "Justice Seeker", AR: "ساعي العدالة"}},
	"international_relations": {Emoji: "🌍", Label: model.LocalizedText{EN: "Global Diplomat", AR: "دبلوماسي عالمي"}},
	"psychology":              {Emoji: "🧠", Label: model.LocalizedText{EN: "Mind Explorer", AR: "مستكشف العقل"}},
	"education":               {Emoji: "📚", Label: model.LocalizedText{EN: "Future Educator", AR: "معلم المستقبل"}},
	"media_comm":              {Emoji: "🎬", Label: model.LocalizedText{EN: "Media Voice", AR: "صوت الإعلام"}},
	"graphic_design":          {Emoji: "🎨", Label: model.LocalizedText{EN: "Visual Artist", AR: "فنان بصري"}},
	"tourism_hospitality":     {Emoji: "✈️", Label: model.LocalizedText{EN: "World Host", AR: "مضيف العالم"}},
}

// GenericReasons back up majors without a specific reason template.
var GenericReasons = []model.LocalizedText{
	{EN: "Your answers show a strong fit with this field.", AR: "تشير إجاباتك إلى توافق قوي مع هذا التخصص."},
	{EN: "Students with your profile often thrive here.", AR: "غالباً ما يتفوق الطلاب ذوو الملف المشابه لملفك في هذا المجال."},
}

// ReasonTemplates maps slugs to up to three bilingual reason strings.
var ReasonTemplates = map[string][]model.LocalizedText{
	"medicine": {
		{EN: "Your interest in biology and helping people points to medicine.", AR: "اهتمامك بالأحياء ومساعدة الناس يشير إلى الطب."},
		{EN: "Your academic record supports a demanding clinical path.", AR: "سجلك الأكاديمي يدعم مساراً سريرياً متطلباً."},
		{EN: "You combine empathy with scientific curiosity.", AR: "تجمع بين التعاطف والفضول العلمي."},
	},
	"dentistry": {
		{EN: "You pair precision with a care for patients.", AR: "تجمع بين الدقة والاهتمام بالمرضى."},
		{EN: "Your science answers match clinical hands-on work.", AR: "إجاباتك العلمية تناسب العمل السريري اليدوي."},
	},
	"pharmacy": {
		{EN: "Your chemistry interest fits pharmaceutical science.", AR: "اهتمامك بالكيمياء يناسب العلوم الصيدلانية."},
		{EN: "You like structured lab work with real impact.", AR: "تحب العمل المخبري المنظم ذا الأثر الحقيقي."},
	},
	"nursing": {
		{EN: "You put people first and stay calm under pressure.", AR: "تضع الناس أولاً وتحافظ على هدوئك تحت الضغط."},
		{EN: "Your caring answers match frontline healthcare.", AR: "إجاباتك المهتمة بالآخرين تناسب الرعاية الصحية المباشرة."},
	},
	"cs_ai": {
		{EN: "You enjoy logic, math and building with computers.", AR: "تستمتع بالمنطق والرياضيات والبناء باستخدام الحاسوب."},
		{EN: "Your problem-solving style is systematic and analytical.", AR: "أسلوبك في حل المشكلات منهجي وتحليلي."},
		{EN: "AI and computing match your top subject picks.", AR: "الذكاء الاصطناعي والحوسبة يطابقان موادك المفضلة."},
	},
	"software_eng": {
		{EN: "You like turning ideas into working software.", AR: "تحب تحويل الأفكار إلى برمجيات فعلية."},
		{EN: "Team building projects suit your coder role.", AR: "مشاريع البناء الجماعية تناسب دورك كمبرمج."},
	},
	"cybersecurity": {
		{EN: "You think like a defender: careful and detail-driven.", AR: "تفكر كمدافع: حذر ومهتم بالتفاصيل."},
		{EN: "Your logic answers fit protecting digital systems.", AR: "إجاباتك المنطقية تناسب حماية الأنظمة الرقمية."},
	},
	"data_science": {
		{EN: "You enjoy finding patterns in numbers.", AR: "تستمتع باكتشاف الأنماط في الأرقام."},
		{EN: "Math plus curiosity is the data-science formula.", AR: "الرياضيات مع الفضول هما معادلة علم البيانات."},
	},
	"civil_eng": {
		{EN: "You want to build things people use every day.", AR: "تريد بناء أشياء يستخدمها الناس كل يوم."},
		{EN: "Physics and field work fit your practical side.", AR: "الفيزياء والعمل الميداني يناسبان جانبك العملي."},
	},
	"mechanical_eng": {
		{EN: "You like understanding how machines work.", AR: "تحب فهم كيفية عمل الآلات."},
		{EN: "Hands-on problem solving is your strength.", AR: "حل المشكلات بشكل عملي هو نقطة قوتك."},
	},
	"architecture": {
		{EN: "You blend creativity with technical drawing.", AR: "تمزج الإبداع مع الرسم الهندسي."},
		{EN: "Art and physics together point to architecture.", AR: "الفن والفيزياء معاً يشيران إلى العمارة."},
	},
	"business_admin": {
		{EN: "You naturally take the lead in group work.", AR: "تتولى القيادة بشكل طبيعي في العمل الجماعي."},
		{EN: "Strategic thinking fits managing teams and projects.", AR: "التفكير الاستراتيجي يناسب إدارة الفرق والمشاريع."},
	},
	"finance": {
		{EN: "You are comfortable with numbers and structure.", AR: "تشعر بالراحة مع الأرقام والتنظيم."},
		{EN: "Detail-oriented answers match financial careers.", AR: "إجاباتك الدقيقة تناسب المهن المالية."},
	},
	"marketing": {
		{EN: "You know how to present ideas to people.", AR: "تعرف كيف تقدم الأفكار للناس."},
		{EN: "Creative and social energy drive marketing success.", AR: "الطاقة الإبداعية والاجتماعية تقود النجاح في التسويق."},
	},
	"law": {
		{EN: "You argue clearly and care about fairness.", AR: "تجادل بوضوح وتهتم بالعدالة."},
		{EN: "Reading and structured thinking fit legal study.", AR: "القراءة والتفكير المنظم يناسبان دراسة القانون."},
	},
	"psychology": {
		{EN: "You are curious about why people act the way they do.", AR: "لديك فضول حول سبب تصرفات الناس."},
		{EN: "Empathy and observation are your strengths.", AR: "التعاطف والملاحظة من نقاط قوتك."},
	},
	"education": {
		{EN: "You enjoy explaining things and watching others grow.", AR: "تستمتع بشرح الأشياء ومشاهدة الآخرين يتطورون."},
		{EN: "Supportive team answers match teaching.", AR: "إجاباتك الداعمة للفريق تناسب مهنة التعليم."},
	},
	"media_comm": {
		{EN: "You like telling stories and sharing ideas.", AR: "تحب سرد القصص ومشاركة الأفكار."},
		{EN: "Languages and creativity point to media work.", AR: "اللغات والإبداع يشيران إلى العمل الإعلامي."},
	},
	"graphic_design": {
		{EN: "Visual creativity stands out across your answers.", AR: "الإبداع البصري بارز في إجاباتك."},
		{EN: "You express ideas best through design.", AR: "تعبر عن أفكارك بأفضل شكل من خلال التصميم."},
	},
	"tourism_hospitality": {
		{EN: "You enjoy meeting people from different cultures.", AR: "تستمتع بلقاء أشخاص من ثقافات مختلفة."},
		{EN: "Languages and social energy fit hospitality.", AR: "اللغات والطاقة الاجتماعية تناسبان قطاع الضيافة."},
	},
}

// ReasonsFor returns up to three reasons for a slug, falling back to the
// generic pair so the list is never empty.
func ReasonsFor(slug string) []model.LocalizedText {
	if rs, ok := ReasonTemplates[slug]; ok && len(rs) > 0 {
		if len(rs) > 3 {
			rs = rs[:3]
		}
		return rs
	}
	return GenericReasons
}

// BadgeFor returns the badge for a slug, or the default badge.
func BadgeFor(slug string) model.Badge {
	if b, ok := Badges[slug]; ok {
		return b
	}
	return DefaultBadge
}

// NameFor returns the display name for a slug.
func NameFor(slug string) model.LocalizedText {
	if n, ok := MajorNames[slug]; ok {
		return n
	}
	return model.LocalizedText{EN: slug, AR: slug}
}
