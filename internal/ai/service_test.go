package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns canned responses and records the parts it saw.
type fakeClient struct {
	response string
	err      error
	parts    []Part
}

func (f *fakeClient) GenerateJSON(_ context.Context, parts []Part) (string, error) {
	f.parts = parts
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestAnalyzeATS(t *testing.T) {
	client := &fakeClient{response: `{
		"overallScore": 82,
		"breakdown": [{"category": "Keywords & Content", "score": 32, "maxScore": 40}],
		"feedback": [{"issue": "Weak verbs", "suggestion": "Use action verbs", "severity": "Low"}]
	}`}
	svc := NewService(client)

	score, err := svc.AnalyzeATS(context.Background(), TextResume("Ada Lovelace\nEngineer"))
	require.NoError(t, err)
	assert.Equal(t, 82, score.OverallScore)
	require.Len(t, score.Breakdown, 1)
	assert.Equal(t, "Keywords & Content", score.Breakdown[0].Category)

	// The resume text rides along as a delimited prompt part.
	require.Len(t, client.parts, 2)
	assert.Contains(t, client.parts[1].Text, "Ada Lovelace")
}

func TestAnalyzeATSInvalidResponse(t *testing.T) {
	client := &fakeClient{response: `{"overallScore": "not a number"}`}
	svc := NewService(client)

	_, err := svc.AnalyzeATS(context.Background(), TextResume("resume"))
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, KindATS, analysisErr.Kind)
}

func TestAnalyzeATSBackendFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("service unavailable")}
	svc := NewService(client)

	_, err := svc.AnalyzeATS(context.Background(), TextResume("resume"))
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.ErrorContains(t, err, "service unavailable")
}

func TestMatchJDSendsJobDescription(t *testing.T) {
	client := &fakeClient{response: `{
		"matchPercentage": 70,
		"atsScoreAsPerJD": 65,
		"missingKeywords": ["Go"],
		"redundantKeywords": [],
		"suggestions": []
	}`}
	svc := NewService(client)

	analysis, err := svc.MatchJD(context.Background(), TextResume("resume"), "Senior Go Engineer")
	require.NoError(t, err)
	assert.Equal(t, 70, analysis.MatchPercentage)
	assert.Equal(t, []string{"Go"}, analysis.MissingKeywords)

	require.Len(t, client.parts, 3)
	assert.Contains(t, client.parts[1].Text, "Senior Go Engineer")
}

func TestSuggestContentExperienceUsesRoleContext(t *testing.T) {
	client := &fakeClient{response: `{"suggestions": ["Did a thing", "Did another"]}`}
	svc := NewService(client)

	suggestions, err := svc.SuggestContent(context.Background(), SuggestionPayload{
		Target:  SuggestExperience,
		Context: map[string]string{"role": "Engineer", "company": "Acme"},
	})
	require.NoError(t, err)
	assert.Len(t, suggestions.Suggestions, 2)

	require.Len(t, client.parts, 1)
	assert.Contains(t, client.parts[0].Text, "Role: Engineer")
	assert.Contains(t, client.parts[0].Text, "Company: Acme")
}

func TestRewrite(t *testing.T) {
	client := &fakeClient{response: `{
		"personalInfo": {"name": "Ada Lovelace"},
		"summary": {"content": "Rewritten summary", "reasoning": "Sharper focus"},
		"experience": [],
		"education": [],
		"projects": [],
		"certifications": [],
		"skills": {"finalList": "Go, SQL", "added": ["SQL"], "removed": []}
	}`}
	svc := NewService(client)

	rewritten, err := svc.Rewrite(context.Background(), TextResume("resume"), "job description")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", rewritten.PersonalInfo.Name)
	assert.Equal(t, "Rewritten summary", rewritten.Summary.Content)
	assert.Equal(t, "Go, SQL", rewritten.Skills.FinalList)
}

func TestParseResumeEnsuresIDsAndNormalizesStyle(t *testing.T) {
	client := &fakeClient{response: `{
		"resumeData": {
			"personalInfo": {"name": "Ada Lovelace"},
			"summary": "Engineer",
			"experience": [{"company": "Acme", "role": "Engineer"}],
			"education": [],
			"skills": [],
			"projects": [],
			"certifications": []
		},
		"templateStyle": {"layout": "two-column", "colorScheme": {"primary": "#123456"}}
	}`}
	svc := NewService(client)

	parsed, err := svc.ParseResume(context.Background(), FileResume("application/pdf", []byte("%PDF")))
	require.NoError(t, err)

	// Items without ids get fresh ones.
	require.Len(t, parsed.ResumeData.Experience, 1)
	assert.NotEmpty(t, parsed.ResumeData.Experience[0].ID)

	// Partial color schemes are healed to a complete one.
	assert.True(t, parsed.TemplateStyle.ColorScheme.Complete())
	assert.Equal(t, "#123456", parsed.TemplateStyle.ColorScheme.Primary)

	// The file content goes out as an inline blob part.
	require.Len(t, client.parts, 2)
	assert.Equal(t, "application/pdf", client.parts[1].MIMEType)
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock(`{"a":1}`))
}
