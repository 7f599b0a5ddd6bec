package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResumeData_ListsInitialized(t *testing.T) {
	data := NewResumeData()
	assert.NotNil(t, data.Experience)
	assert.NotNil(t, data.Education)
	assert.NotNil(t, data.Skills)
	assert.NotNil(t, data.Projects)
	assert.NotNil(t, data.Certifications)
}

func TestNewItemID_Prefix(t *testing.T) {
	id := NewItemID("exp")
	assert.True(t, strings.HasPrefix(id, "exp_"))
	assert.NotEqual(t, id, NewItemID("exp"))
}

func TestSectionEmpty(t *testing.T) {
	data := NewResumeData()
	assert.True(t, data.SectionEmpty(SectionSummary))
	assert.True(t, data.SectionEmpty(SectionExperience))

	data.Summary = "   "
	assert.True(t, data.SectionEmpty(SectionSummary), "whitespace summary is empty")

	data.Summary = "Engineer."
	data.Experience = append(data.Experience, WorkExperience{Role: "Engineer"})
	assert.False(t, data.SectionEmpty(SectionSummary))
	assert.False(t, data.SectionEmpty(SectionExperience))
}

func TestEnsureIDs_FillsMissing(t *testing.T) {
	data := NewResumeData()
	data.Experience = []WorkExperience{{Role: "Engineer"}}
	data.Education = []Education{{ID: "edu_keep", Institution: "University"}}
	data.Skills = []CategorizedSkill{{Category: "Languages"}}

	data.EnsureIDs()

	assert.True(t, strings.HasPrefix(data.Experience[0].ID, "exp_"))
	assert.True(t, strings.HasPrefix(data.Skills[0].ID, "skill_"))
	// Existing ids are never overwritten.
	assert.Equal(t, "edu_keep", data.Education[0].ID)
}
