// Package types defines the core data model for resume content,
// template styling, section ordering and stored resume records.
package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PersonalInfo holds the contact block of a resume. All fields are
// free-form strings; empty fields are simply omitted at render time.
type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// WorkExperience is a single role at a company. Description lines
// starting with "- " are treated as bullet points.
type WorkExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is a single degree or program.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
}

// Project is a personal or professional project entry. Technologies
// is a comma-separated list; both link fields are optional.
type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	LiveLink     string `json:"liveLink"`
	GithubLink   string `json:"githubLink"`
}

// Certification is a named credential with its issuer and date.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// CategorizedSkill groups a comma-separated skill list under a
// free-text category label.
type CategorizedSkill struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Skills   string `json:"skills"`
}

// ResumeData is the normalized resume content: personal info, a free
// text summary, and the five list sections. Every list item carries a
// stable id used as a render/edit key; ids are generated once at
// creation and never reused.
type ResumeData struct {
	PersonalInfo   PersonalInfo       `json:"personalInfo"`
	Summary        string             `json:"summary"`
	Experience     []WorkExperience   `json:"experience"`
	Education      []Education        `json:"education"`
	Skills         []CategorizedSkill `json:"skills"`
	Projects       []Project          `json:"projects"`
	Certifications []Certification    `json:"certifications"`
}

// NewResumeData returns an empty resume with all lists initialized.
func NewResumeData() ResumeData {
	return ResumeData{
		Experience:     []WorkExperience{},
		Education:      []Education{},
		Skills:         []CategorizedSkill{},
		Projects:       []Project{},
		Certifications: []Certification{},
	}
}

// NewItemID generates a fresh id for a list item. The prefix names
// the item kind (e.g. "exp", "edu") so ids stay readable in exports.
func NewItemID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}

// SectionEmpty reports whether the named section has no renderable
// content: a blank summary, or a list section with zero items.
func (d *ResumeData) SectionEmpty(key SectionKey) bool {
	switch key {
	case SectionSummary:
		return strings.TrimSpace(d.Summary) == ""
	case SectionExperience:
		return len(d.Experience) == 0
	case SectionEducation:
		return len(d.Education) == 0
	case SectionProjects:
		return len(d.Projects) == 0
	case SectionCertifications:
		return len(d.Certifications) == 0
	case SectionSkills:
		return len(d.Skills) == 0
	default:
		return true
	}
}

// EnsureIDs fills in ids for any list item missing one. Parsed
// resumes coming back from the AI boundary may omit ids; existing ids
// are never overwritten.
func (d *ResumeData) EnsureIDs() {
	for i := range d.Experience {
		if d.Experience[i].ID == "" {
			d.Experience[i].ID = NewItemID("exp")
		}
	}
	for i := range d.Education {
		if d.Education[i].ID == "" {
			d.Education[i].ID = NewItemID("edu")
		}
	}
	for i := range d.Skills {
		if d.Skills[i].ID == "" {
			d.Skills[i].ID = NewItemID("skill")
		}
	}
	for i := range d.Projects {
		if d.Projects[i].ID == "" {
			d.Projects[i].ID = NewItemID("proj")
		}
	}
	for i := range d.Certifications {
		if d.Certifications[i].ID == "" {
			d.Certifications[i].ID = NewItemID("cert")
		}
	}
}
