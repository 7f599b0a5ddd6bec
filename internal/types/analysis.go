package types

// Types for the structured responses of the AI analysis boundary.
// The backend is an opaque text-generation service; these shapes are
// enforced by JSON Schema validation before decoding.

// ATSFeedback is one actionable issue found during an ATS check.
type ATSFeedback struct {
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
	Severity   string `json:"severity"` // High, Medium or Low
}

// ScoreBreakdownItem is one category of an ATS score.
type ScoreBreakdownItem struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore"`
}

// ATSScore is the full result of an ATS compatibility check.
type ATSScore struct {
	OverallScore int                  `json:"overallScore"`
	Breakdown    []ScoreBreakdownItem `json:"breakdown"`
	Feedback     []ATSFeedback        `json:"feedback"`
}

// JDOptimizationSuggestion is one targeted improvement from a job
// description match analysis.
type JDOptimizationSuggestion struct {
	Area       string `json:"area"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"` // High, Medium or Low
}

// JDMatchAnalysis is the result of matching a resume against a job
// description.
type JDMatchAnalysis struct {
	MatchPercentage   int                        `json:"matchPercentage"`
	ATSScoreAsPerJD   int                        `json:"atsScoreAsPerJD"`
	MissingKeywords   []string                   `json:"missingKeywords"`
	RedundantKeywords []string                   `json:"redundantKeywords"`
	Suggestions       []JDOptimizationSuggestion `json:"suggestions"`
}

// ContentSuggestions holds generated summary or bullet alternatives.
type ContentSuggestions struct {
	Suggestions []string `json:"suggestions"`
}

// RewrittenExperience is one experience entry from a full rewrite.
type RewrittenExperience struct {
	Company              string   `json:"company"`
	Role                 string   `json:"role"`
	Location             string   `json:"location"`
	Date                 string   `json:"date"`
	OriginalDescription  string   `json:"originalDescription"`
	RewrittenDescription string   `json:"rewrittenDescription"`
	Improvements         []string `json:"improvements"`
}

// RewrittenSummary pairs the rewritten summary with the model's
// reasoning for the change.
type RewrittenSummary struct {
	Content   string `json:"content"`
	Reasoning string `json:"reasoning"`
}

// RewrittenSkills is the consolidated skill list after a rewrite.
type RewrittenSkills struct {
	FinalList string   `json:"finalList"`
	Added     []string `json:"added"`
	Removed   []string `json:"removed"`
}

// RewrittenResume is the full rewritten-resume structure returned by
// the rewrite operation. Personal info, education and certifications
// are preserved verbatim by contract.
type RewrittenResume struct {
	PersonalInfo   PersonalInfo          `json:"personalInfo"`
	Summary        RewrittenSummary      `json:"summary"`
	Experience     []RewrittenExperience `json:"experience"`
	Education      []Education           `json:"education"`
	Projects       []Project             `json:"projects"`
	Certifications []Certification       `json:"certifications"`
	Skills         RewrittenSkills       `json:"skills"`
}

// ParsedResumeWithTemplate is the result of parsing an uploaded
// resume file: extracted content plus the detected template style.
type ParsedResumeWithTemplate struct {
	ResumeData    ResumeData          `json:"resumeData"`
	TemplateStyle ResumeTemplateStyle `json:"templateStyle"`
}
