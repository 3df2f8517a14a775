package skills

// Demand is one row of the market demand table. Demand is a 0-100 index and
// Growth a yearly percentage.
type Demand struct {
	Skill  string `json:"skill"`
	Demand int    `json:"demand"`
	Growth int    `json:"growth"`
	Jobs   int    `json:"jobs"`
}

var demandTable = []Demand{
	{Skill: "JavaScript", Demand: 95, Growth: 12, Jobs: 45000},
	{Skill: "Python", Demand: 92, Growth: 18, Jobs: 42000},
	{Skill: "React", Demand: 88, Growth: 25, Jobs: 38000},
	{Skill: "Node.js", Demand: 85, Growth: 20, Jobs: 35000},
	{Skill: "AWS", Demand: 90, Growth: 30, Jobs: 40000},
	{Skill: "Docker", Demand: 82, Growth: 35, Jobs: 28000},
	{Skill: "Kubernetes", Demand: 78, Growth: 40, Jobs: 25000},
	{Skill: "Machine Learning", Demand: 85, Growth: 45, Jobs: 32000},
	{Skill: "Data Science", Demand: 83, Growth: 38, Jobs: 30000},
	{Skill: "DevOps", Demand: 80, Growth: 28, Jobs: 27000},
}

// DemandTable returns a copy of the demand table.
func DemandTable() []Demand {
	return append([]Demand{}, demandTable...)
}

const tipsShown = 5

var careerTips = []string{
	"Focus on learning in-demand skills like React, Python, and AWS",
	"Build projects that showcase your problem-solving abilities",
	"Contribute to open-source projects to build your portfolio",
	"Network with professionals in your target industry",
	"Keep your resume updated with quantifiable achievements",
	"Practice coding interviews regularly on platforms like LeetCode",
	"Stay updated with industry trends and technologies",
	"Consider getting relevant certifications in your field",
}
