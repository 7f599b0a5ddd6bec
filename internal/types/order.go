package types

import "fmt"

// SectionKey identifies one of the six resume sections.
type SectionKey string

const (
	SectionSummary        SectionKey = "summary"
	SectionExperience     SectionKey = "experience"
	SectionEducation      SectionKey = "education"
	SectionProjects       SectionKey = "projects"
	SectionCertifications SectionKey = "certifications"
	SectionSkills         SectionKey = "skills"
)

// SectionOrder is a user-controlled permutation of the six section
// keys. Reordering only rearranges; whether a section renders is
// decided by the emptiness of its data, never by membership here.
type SectionOrder []SectionKey

// sectionTitles maps section keys to their display headings.
var sectionTitles = map[SectionKey]string{
	SectionSummary:        "Summary",
	SectionExperience:     "Experience",
	SectionEducation:      "Education",
	SectionProjects:       "Projects",
	SectionCertifications: "Certifications",
	SectionSkills:         "Skills",
}

// Title returns the display heading for a section key.
func (k SectionKey) Title() string {
	return sectionTitles[k]
}

// DefaultSectionOrder returns the canonical section sequence.
func DefaultSectionOrder() SectionOrder {
	return SectionOrder{
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionProjects,
		SectionCertifications,
		SectionSkills,
	}
}

// Validate checks that the order is a permutation of exactly the six
// section keys: no duplicates, no omissions, no unknown keys.
func (o SectionOrder) Validate() error {
	if len(o) != len(sectionTitles) {
		return fmt.Errorf("section order has %d entries, want %d", len(o), len(sectionTitles))
	}
	seen := make(map[SectionKey]bool, len(o))
	for _, key := range o {
		if _, known := sectionTitles[key]; !known {
			return fmt.Errorf("unknown section key %q", key)
		}
		if seen[key] {
			return fmt.Errorf("duplicate section key %q", key)
		}
		seen[key] = true
	}
	return nil
}

// Normalize repairs an order read from storage or an import: unknown
// keys and duplicates are dropped, and any missing keys are appended
// in default order. The result always passes Validate.
func (o SectionOrder) Normalize() SectionOrder {
	result := make(SectionOrder, 0, len(sectionTitles))
	seen := make(map[SectionKey]bool, len(sectionTitles))
	for _, key := range o {
		if _, known := sectionTitles[key]; !known || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, key)
	}
	for _, key := range DefaultSectionOrder() {
		if !seen[key] {
			result = append(result, key)
		}
	}
	return result
}
