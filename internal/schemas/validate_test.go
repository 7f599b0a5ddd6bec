package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateATSScore(t *testing.T) {
	valid := []byte(`{
		"overallScore": 82,
		"breakdown": [{"category": "Format & Structure", "score": 25, "maxScore": 30}],
		"feedback": [{"issue": "Missing keywords", "suggestion": "Add role-specific terms", "severity": "Medium"}]
	}`)
	assert.NoError(t, Validate(ATSScore, valid))
}

func TestValidateATSScoreMissingField(t *testing.T) {
	invalid := []byte(`{"overallScore": 82, "breakdown": []}`)
	err := Validate(ATSScore, invalid)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJDMatch(t *testing.T) {
	valid := []byte(`{
		"matchPercentage": 74,
		"atsScoreAsPerJD": 68,
		"missingKeywords": ["Kubernetes"],
		"redundantKeywords": [],
		"suggestions": [{"area": "Skills", "suggestion": "Mention container orchestration", "impact": "High"}]
	}`)
	assert.NoError(t, Validate(JDMatch, valid))

	// Wrong element shape inside suggestions.
	invalid := []byte(`{
		"matchPercentage": 74,
		"atsScoreAsPerJD": 68,
		"missingKeywords": [],
		"redundantKeywords": [],
		"suggestions": [{"area": "Skills"}]
	}`)
	assert.Error(t, Validate(JDMatch, invalid))
}

func TestValidateContentSuggestions(t *testing.T) {
	assert.NoError(t, Validate(ContentSuggestions, []byte(`{"suggestions": ["one", "two"]}`)))
	assert.Error(t, Validate(ContentSuggestions, []byte(`{"suggestions": []}`)))
	assert.Error(t, Validate(ContentSuggestions, []byte(`{"suggestions": "not an array"}`)))
}

func TestValidateParsedResume(t *testing.T) {
	valid := []byte(`{
		"resumeData": {"personalInfo": {"name": "Ada Lovelace"}},
		"templateStyle": {"layout": "single-column"}
	}`)
	assert.NoError(t, Validate(ParsedResume, valid))
	assert.Error(t, Validate(ParsedResume, []byte(`{"resumeData": {"personalInfo": {}}}`)))
}

func TestValidateBundle(t *testing.T) {
	valid := []byte(`{
		"resumes": [{"id": "resume_1", "name": "My Resume"}],
		"activeId": "resume_1",
		"version": 1
	}`)
	assert.NoError(t, Validate(Bundle, valid))
	assert.Error(t, Validate(Bundle, []byte(`{"version": 1}`)))
	assert.Error(t, Validate(Bundle, []byte(`{"resumes": "nope", "version": 1}`)))
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("nope.json", []byte(`{}`))
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateMalformedDocument(t *testing.T) {
	assert.Error(t, Validate(ATSScore, []byte(`{not json`)))
}
