package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func fullResume() types.ResumeData {
	data := types.NewResumeData()
	data.Summary = "Engineer."
	data.Experience = []types.WorkExperience{{Role: "Engineer"}}
	data.Education = []types.Education{{Institution: "University"}}
	data.Projects = []types.Project{{Title: "Engine"}}
	data.Certifications = []types.Certification{{Name: "Cert"}}
	data.Skills = []types.CategorizedSkill{{Category: "Languages"}}
	return data
}

func keys(sections []Section) []types.SectionKey {
	out := make([]types.SectionKey, len(sections))
	for i, s := range sections {
		out[i] = s.Key
	}
	return out
}

func TestProject_SingleColumn(t *testing.T) {
	data := fullResume()
	p := Project(&data, types.DefaultSectionOrder(), types.LayoutSingleColumn)

	assert.False(t, p.TwoColumn)
	assert.Empty(t, p.Sidebar)
	assert.Equal(t, []types.SectionKey{
		types.SectionSummary, types.SectionExperience, types.SectionEducation,
		types.SectionProjects, types.SectionCertifications, types.SectionSkills,
	}, keys(p.Main))
}

func TestProject_SkipsEmptySections(t *testing.T) {
	data := fullResume()
	data.Projects = nil
	data.Summary = "  "

	p := Project(&data, types.DefaultSectionOrder(), types.LayoutSingleColumn)
	assert.NotContains(t, keys(p.Main), types.SectionProjects)
	assert.NotContains(t, keys(p.Main), types.SectionSummary)
}

func TestProject_TwoColumnPartition(t *testing.T) {
	data := fullResume()
	p := Project(&data, types.DefaultSectionOrder(), types.LayoutTwoColumn)

	assert.True(t, p.TwoColumn)
	assert.False(t, p.SidebarLeft)
	assert.Equal(t, []types.SectionKey{
		types.SectionSummary, types.SectionExperience, types.SectionProjects,
	}, keys(p.Main))
	assert.Equal(t, []types.SectionKey{
		types.SectionEducation, types.SectionCertifications, types.SectionSkills,
	}, keys(p.Sidebar))
}

func TestProject_SidebarLeftFlag(t *testing.T) {
	data := fullResume()

	left := Project(&data, types.DefaultSectionOrder(), types.LayoutSidebarLeft)
	assert.True(t, left.TwoColumn)
	assert.True(t, left.SidebarLeft)

	right := Project(&data, types.DefaultSectionOrder(), types.LayoutSidebarRight)
	assert.True(t, right.TwoColumn)
	assert.False(t, right.SidebarLeft)
}

func TestProject_OrderPreservedWithinPartitions(t *testing.T) {
	data := fullResume()
	order := types.SectionOrder{
		types.SectionSkills, types.SectionCertifications, types.SectionEducation,
		types.SectionProjects, types.SectionExperience, types.SectionSummary,
	}
	p := Project(&data, order, types.LayoutTwoColumn)

	assert.Equal(t, []types.SectionKey{
		types.SectionSkills, types.SectionCertifications, types.SectionEducation,
	}, keys(p.Sidebar))
	assert.Equal(t, []types.SectionKey{
		types.SectionProjects, types.SectionExperience, types.SectionSummary,
	}, keys(p.Main))
}

func TestAllSections_MainFirst(t *testing.T) {
	data := fullResume()
	p := Project(&data, types.DefaultSectionOrder(), types.LayoutSidebarLeft)

	all := keys(p.AllSections())
	require.Len(t, all, 6)
	// Document order keeps main content first even when the sidebar
	// renders on the left.
	assert.Equal(t, types.SectionSummary, all[0])
	assert.Equal(t, types.SectionSkills, all[5])
}

func TestSectionTitlesCarried(t *testing.T) {
	data := fullResume()
	p := Project(&data, types.DefaultSectionOrder(), types.LayoutSingleColumn)
	assert.Equal(t, "Summary", p.Main[0].Title)
}
