package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// Kind names one analysis request in the dispatch union.
type Kind string

const (
	KindATS                Kind = "ats"
	KindJDMatch            Kind = "jdMatch"
	KindContentSuggestions Kind = "contentSuggestions"
	KindRewrite            Kind = "rewrite"
	KindParseResume        Kind = "parseResume"
)

// promptFile holds the analysis prompt templates.
const promptFile = "analysis.json"

// ResumeInput carries a resume either as plain text or as inline
// binary file content. Exactly one representation is set.
type ResumeInput struct {
	Text string
	// Data/MIMEType pass the original file bytes through for formats
	// the backend reads directly (PDF, images).
	Data     []byte
	MIMEType string
}

// TextResume wraps serialized resume text as an input.
func TextResume(text string) ResumeInput {
	return ResumeInput{Text: text}
}

// FileResume wraps raw file content as an input.
func FileResume(mimeType string, data []byte) ResumeInput {
	return ResumeInput{Data: data, MIMEType: mimeType}
}

func (r ResumeInput) part(label string) Part {
	if r.MIMEType != "" {
		return BlobPart(r.MIMEType, r.Data)
	}
	return TextPart(fmt.Sprintf("%s:\n---\n%s\n---", label, r.Text))
}

// SuggestionTarget selects which field content suggestions are for.
type SuggestionTarget string

const (
	SuggestSummary    SuggestionTarget = "summary"
	SuggestExperience SuggestionTarget = "experience"
)

// SuggestionPayload is the context for a content suggestion request.
type SuggestionPayload struct {
	Target  SuggestionTarget  `json:"type"`
	Context map[string]string `json:"context"`
}

// Service dispatches analysis requests over a Client and enforces the
// response contracts.
type Service struct {
	client Client
}

// NewService wraps a backend client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// generate runs one request and returns the response only after it
// passed schema validation.
func (s *Service) generate(ctx context.Context, kind Kind, schemaName string, parts []Part, out any) error {
	raw, err := s.client.GenerateJSON(ctx, parts)
	if err != nil {
		return &AnalysisError{Kind: kind, Message: "backend request failed", Cause: err}
	}
	if err := schemas.Validate(schemaName, []byte(raw)); err != nil {
		return &AnalysisError{Kind: kind, Message: "response failed validation", Cause: err}
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &AnalysisError{Kind: kind, Message: "response failed to decode", Cause: err}
	}
	return nil
}

// AnalyzeATS scores a resume for tracking-system compatibility.
func (s *Service) AnalyzeATS(ctx context.Context, resume ResumeInput) (*types.ATSScore, error) {
	prompt, err := prompts.Get(promptFile, "ats-check")
	if err != nil {
		return nil, &AnalysisError{Kind: KindATS, Message: "prompt unavailable", Cause: err}
	}

	var score types.ATSScore
	parts := []Part{TextPart(prompt), resume.part("Resume Text")}
	if err := s.generate(ctx, KindATS, schemas.ATSScore, parts, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

// MatchJD analyzes a resume against a job description.
func (s *Service) MatchJD(ctx context.Context, resume ResumeInput, jdText string) (*types.JDMatchAnalysis, error) {
	prompt, err := prompts.Get(promptFile, "jd-match")
	if err != nil {
		return nil, &AnalysisError{Kind: KindJDMatch, Message: "prompt unavailable", Cause: err}
	}

	var analysis types.JDMatchAnalysis
	parts := []Part{
		TextPart(prompt),
		TextPart(fmt.Sprintf("Job Description:\n---\n%s\n---", jdText)),
		resume.part("Resume Text"),
	}
	if err := s.generate(ctx, KindJDMatch, schemas.JDMatch, parts, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// SuggestContent generates summary or experience bullet alternatives.
func (s *Service) SuggestContent(ctx context.Context, payload SuggestionPayload) (*types.ContentSuggestions, error) {
	key := "summary-suggestions"
	data := map[string]string{
		"ResumeContext": payload.Context["resumeContext"],
		"CurrentText":   payload.Context["currentText"],
	}
	if payload.Target == SuggestExperience {
		key = "experience-suggestions"
		data = map[string]string{
			"Role":        orDefault(payload.Context["role"], "Professional"),
			"Company":     orDefault(payload.Context["company"], "Company"),
			"CurrentText": payload.Context["currentText"],
		}
	}

	template, err := prompts.Get(promptFile, key)
	if err != nil {
		return nil, &AnalysisError{Kind: KindContentSuggestions, Message: "prompt unavailable", Cause: err}
	}

	var suggestions types.ContentSuggestions
	parts := []Part{TextPart(prompts.Format(template, data))}
	if err := s.generate(ctx, KindContentSuggestions, schemas.ContentSuggestions, parts, &suggestions); err != nil {
		return nil, err
	}
	return &suggestions, nil
}

// Rewrite produces a full rewritten resume targeted at a job
// description. Personal info, education and certifications are
// preserved by the prompt contract.
func (s *Service) Rewrite(ctx context.Context, resume ResumeInput, jdText string) (*types.RewrittenResume, error) {
	prompt, err := prompts.Get(promptFile, "rewrite")
	if err != nil {
		return nil, &AnalysisError{Kind: KindRewrite, Message: "prompt unavailable", Cause: err}
	}

	var rewritten types.RewrittenResume
	parts := []Part{
		TextPart(prompt),
		TextPart(fmt.Sprintf("Target Job Description:\n---\n%s\n---", jdText)),
		resume.part("Original Resume"),
	}
	if err := s.generate(ctx, KindRewrite, schemas.RewrittenResume, parts, &rewritten); err != nil {
		return nil, err
	}
	return &rewritten, nil
}

// ParseResume extracts structured content and a detected template
// style from an uploaded resume file. Items missing ids get fresh
// ones; the style is normalized before return.
func (s *Service) ParseResume(ctx context.Context, file ResumeInput) (*types.ParsedResumeWithTemplate, error) {
	prompt, err := prompts.Get(promptFile, "parse-resume")
	if err != nil {
		return nil, &AnalysisError{Kind: KindParseResume, Message: "prompt unavailable", Cause: err}
	}

	var parsed types.ParsedResumeWithTemplate
	parts := []Part{TextPart(prompt), file.part("Resume Text")}
	if err := s.generate(ctx, KindParseResume, schemas.ParsedResume, parts, &parsed); err != nil {
		return nil, err
	}

	parsed.ResumeData.EnsureIDs()
	parsed.TemplateStyle.Normalize()
	return &parsed, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
