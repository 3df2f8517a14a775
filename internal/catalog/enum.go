package catalog

import "strings"

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

var AllDifficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

type Category string

const (
	JavaScript   Category = "JavaScript"
	React        Category = "React"
	Python       Category = "Python"
	NodeJS       Category = "Node.js"
	DSA          Category = "DSA"
	MongoDB      Category = "MongoDB"
	AI           Category = "AI"
	Development  Category = "Development"
	Cloud        Category = "Cloud"
	SystemDesign Category = "System Design"
)

var AllCategories = []Category{
	JavaScript,
	React,
	Python,
	NodeJS,
	DSA,
	MongoDB,
	AI,
	Development,
	Cloud,
	SystemDesign,
}

func (c Category) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ParseCategory matches s against the known categories ignoring case and
// surrounding spaces, returning the canonical spelling.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, v := range AllCategories {
		if strings.EqualFold(s, string(v)) {
			return v, true
		}
	}
	return "", false
}
