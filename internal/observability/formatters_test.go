package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/style"
	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

func TestPrintStoredResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	source := "uploaded.docx"
	record := &types.StoredResume{
		ID:               "resume_1",
		Name:             "Backend Role",
		UploadedFileName: &source,
		ResumeData: types.ResumeData{
			PersonalInfo: types.PersonalInfo{Name: "Ada Lovelace"},
			Summary:      "Engineer",
			Experience: []types.WorkExperience{
				{Role: "Lead Engineer", Company: "Analytical Engines Ltd"},
			},
		},
	}

	p.PrintStoredResume(record)
	output := buf.String()

	assert.Contains(t, output, "STORED RESUME")
	assert.Contains(t, output, "Backend Role")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "uploaded.docx")
	assert.Contains(t, output, "experience(1)")
}

func TestPrintStoredResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStoredResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResolvedStyle(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resolved := style.Resolve(templates.Default(), style.ContextInteractive, false)
	p.PrintResolvedStyle(&resolved)
	output := buf.String()

	assert.Contains(t, output, "RESOLVED STYLE")
	assert.Contains(t, output, "#000000")
	assert.Contains(t, output, "Georgia")
	assert.Contains(t, output, "centered")
}

func TestPrintAnalysisSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := &types.ATSScore{
		OverallScore: 82,
		Breakdown: []types.ScoreBreakdownItem{
			{Category: "Keywords & Content", Score: 32, MaxScore: 40},
		},
		Feedback: []types.ATSFeedback{
			{Issue: "Weak verbs", Suggestion: "Use action verbs", Severity: "Low"},
		},
	}

	p.PrintAnalysisSummary(score)
	output := buf.String()

	assert.Contains(t, output, "ATS ANALYSIS")
	assert.Contains(t, output, "82/100")
	assert.Contains(t, output, "Keywords & Content")
	assert.Contains(t, output, "Weak verbs")
}

func TestSummarizeSectionsEmpty(t *testing.T) {
	data := types.NewResumeData()
	assert.Equal(t, "(none)", summarizeSections(&data))
}
