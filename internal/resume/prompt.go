package resume

import "fmt"

const defaultRole = "General software development role"

func buildPrompt(resumeText, jobDescription string) string {
	if jobDescription == "" {
		jobDescription = defaultRole
	}

	return fmt.Sprintf(`Analyze this resume and provide an ATS score (0-100) and detailed feedback.

Resume Content:
%s

Job Description:
%s

Answer with a single JSON object and nothing else, using exactly this structure:
{
  "atsScore": number (0-100),
  "suggestions": ["specific actionable suggestion", "..."],
  "missingKeywords": ["keyword", "..."],
  "strengths": ["strength", "..."]
}

Focus on:
1. ATS compatibility and keyword optimization
2. Quantifiable achievements and metrics
3. Technical skills alignment
4. Format and structure improvements
5. Industry-specific terminology

Give at most 5 suggestions.`, resumeText, jobDescription)
}
