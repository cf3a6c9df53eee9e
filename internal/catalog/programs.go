package catalog

import "github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"

// Programs is the displayable catalog of partner-university program titles,
// in presentation order.
var Programs = []model.Program{
	{Title: "Doctor of Medicine (MBBS)"},
	{Title: "Bachelor of Dentistry (BDS)"},
	{Title: "Bachelor of Pharmacy"},
	{Title: "Doctor of Pharmacy (PharmD)"},
	{Title: "Bachelor of Nursing"},
	{Title: "Bachelor of Physiotherapy and Rehabilitation"},
	{Title: "Doctor of Veterinary Medicine"},
	{Title: "Bachelor of Computer Science (AI Focus)"},
	{Title: "Bachelor of Artificial Intelligence Engineering"},
	{Title: "Bachelor of Software Engineering"},
	{Title: "Bachelor of Cyber Security"},
	{Title: "Bachelor of Data Science and Analytics"},
	{Title: "Bachelor of Civil Engineering"},
	{Title: "Bachelor of Mechanical Engineering"},
	{Title: "Bachelor of Mechatronics Engineering"},
	{Title: "Bachelor of Electrical and Electronics Engineering"},
	{Title: "Bachelor of Architecture"},
	{Title: "Bachelor of Interior Design"},
	{Title: "Bachelor of Business Administration"},
	{Title: "Bachelor of International Business Management"},
	{Title: "Bachelor of Finance and Banking"},
	{Title: "Bachelor of Accounting and Auditing"},
	{Title: "Bachelor of Marketing and Advertising"},
	{Title: "Bachelor of Economics"},
	{Title: "Bachelor of Law (LLB)"},
	{Title: "Bachelor of International Relations"},
	{Title: "Bachelor of Political Science and Public Administration"},
	{Title: "Bachelor of Psychology"},
	{Title: "Bachelor of Guidance and Psychological Counseling"},
	{Title: "Bachelor of Primary School Teaching"},
	{Title: "Bachelor of English Language Education"},
	{Title: "Bachelor of Media and Communication"},
	{Title: "Bachelor of Journalism"},
	{Title: "Bachelor of Graphic Design"},
	{Title: "Bachelor of Visual Arts and Animation"},
	{Title: "Bachelor of Tourism and Hotel Management"},
}
