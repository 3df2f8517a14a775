package skills

import (
	"time"

	"github.com/saulo-duarte/careercoach/internal/resume"
)

type DemandResponse struct {
	Skills      []Demand  `json:"skills"`
	LastUpdated time.Time `json:"lastUpdated"`
	TotalJobs   int       `json:"totalJobs"`
}

// CoverLetterProfile describes the applicant. When the request omits it the
// stored profile of the caller is used.
type CoverLetterProfile struct {
	Name        string   `json:"name"`
	CurrentRole string   `json:"currentRole,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

type CoverLetterRequest struct {
	JobTitle       string              `json:"jobTitle"`
	Company        string              `json:"company"`
	JobDescription string              `json:"jobDescription"`
	UserProfile    *CoverLetterProfile `json:"userProfile"`
}

type CoverLetterResponse struct {
	CoverLetter string        `json:"coverLetter"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Source      resume.Source `json:"source"`
}

type TipsResponse struct {
	Tips            []string `json:"tips"`
	PersonalizedFor string   `json:"personalizedFor"`
}
