package catalog

// MajorKeywords maps each major to the lowercase keywords used to match
// catalog program titles. Matching is case-insensitive substring search.
var MajorKeywords = map[string][]string{
	"medicine":                {"medicine", "mbbs", "medical"},
	"dentistry":               {"dentistry", "dental"},
	"pharmacy":                {"pharmacy", "pharmaceutical"},
	"nursing":                 {"nursing"},
	"physiotherapy":           {"physiotherapy", "physical therapy", "rehabilitation"},
	"vet_med":                 {"veterinary"},
	"cs_ai":                   {"computer science", "artificial intelligence", "machine intelligence"},
	"software_eng":            {"software"},
	"cybersecurity":           {"cybersecurity", "cyber security", "information security"},
	"data_science":            {"data science", "data analytics", "statistics"},
	"civil_eng":               {"civil"},
	"mechanical_eng":          {"mechanical", "mechatronics"},
	"electrical_eng":          {"electrical", "electronics"},
	"architecture":            {"architecture", "interior design"},
	"business_admin":          {"business administration", "management"},
	"finance":                 {"finance", "accounting", "banking"},
	"marketing":               {"marketing", "advertising"},
	"economics":               {"economics"},
	"law":                     {"law", "legal"},
	"international_relations": {"international relations", "political science", "diplomacy"},
	"psychology":              {"psychology", "counseling"},
	"education":               {"education", "teaching"},
	"media_comm":              {"media", "communication", "journalism"},
	"graphic_design":          {"graphic design", "visual arts", "animation"},
	"tourism_hospitality":     {"tourism", "hospitality", "hotel"},
}
