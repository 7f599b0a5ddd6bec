// Package rendering projects resume content into the output formats:
// interactive HTML preview, print-ready pages, a word-processor
// document and plain text. All renderers consume the same projection
// and resolved style, and share the formatting rules in this file.
package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// DefaultExportName is used when the person's name is blank.
const DefaultExportName = "resume"

// contactSeparator joins the non-empty contact fields.
const contactSeparator = " | "

// DateRange formats a start/end pair as "start – end". Either side
// may be empty; a fully empty pair yields an empty string.
func DateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return fmt.Sprintf("%s – %s", start, end)
}

// ContactLine joins the non-empty fields with the standard separator.
func ContactLine(fields ...string) string {
	nonEmpty := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, contactSeparator)
}

// ExportFileName derives a download filename from the person's name:
// whitespace runs collapse to single underscores, falling back to
// DefaultExportName when the name is blank. ext is appended with a
// dot, e.g. ExportFileName("Ada Lovelace", "docx") → "Ada_Lovelace.docx".
func ExportFileName(name, ext string) string {
	base := strings.Join(strings.Fields(name), "_")
	if base == "" {
		base = DefaultExportName
	}
	return base + "." + ext
}

// PlainText serializes resume content into the plain-text form sent
// to the analysis backend as prompt input. Sections follow the given
// order with empty sections skipped, mirroring the rendered output.
func PlainText(data *types.ResumeData, order types.SectionOrder) string {
	var sb strings.Builder

	info := data.PersonalInfo
	if info.Name != "" {
		sb.WriteString(info.Name)
		sb.WriteString("\n")
	}
	if contact := ContactLine(info.Location, info.Phone, info.Email, info.LinkedIn, info.Portfolio); contact != "" {
		sb.WriteString(contact)
		sb.WriteString("\n")
	}

	for _, key := range order {
		if data.SectionEmpty(key) {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(strings.ToUpper(key.Title()))
		sb.WriteString("\n")
		writePlainSection(&sb, data, key)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func writePlainSection(sb *strings.Builder, data *types.ResumeData, key types.SectionKey) {
	switch key {
	case types.SectionSummary:
		sb.WriteString(strings.TrimSpace(data.Summary))
		sb.WriteString("\n")
	case types.SectionExperience:
		for _, exp := range data.Experience {
			fmt.Fprintf(sb, "%s | %s, %s", exp.Role, exp.Company, exp.Location)
			if dr := DateRange(exp.StartDate, exp.EndDate); dr != "" {
				fmt.Fprintf(sb, " (%s)", dr)
			}
			sb.WriteString("\n")
			for _, bullet := range types.SplitBullets(exp.Description) {
				fmt.Fprintf(sb, "- %s\n", bullet)
			}
		}
	case types.SectionEducation:
		for _, edu := range data.Education {
			fmt.Fprintf(sb, "%s, %s", edu.Institution, edu.Location)
			if dr := DateRange(edu.StartDate, edu.EndDate); dr != "" {
				fmt.Fprintf(sb, " (%s)", dr)
			}
			sb.WriteString("\n")
			sb.WriteString(edu.Degree)
			if edu.GPA != "" {
				fmt.Fprintf(sb, " | CGPA: %s", edu.GPA)
			}
			sb.WriteString("\n")
		}
	case types.SectionProjects:
		for _, proj := range data.Projects {
			fmt.Fprintf(sb, "%s | %s", proj.Title, proj.Technologies)
			if dr := DateRange(proj.StartDate, proj.EndDate); dr != "" {
				fmt.Fprintf(sb, " (%s)", dr)
			}
			sb.WriteString("\n")
			for _, bullet := range types.SplitBullets(proj.Description) {
				fmt.Fprintf(sb, "- %s\n", bullet)
			}
		}
	case types.SectionCertifications:
		for _, cert := range data.Certifications {
			fmt.Fprintf(sb, "%s - %s", cert.Name, cert.Issuer)
			if cert.Date != "" {
				fmt.Fprintf(sb, " (%s)", cert.Date)
			}
			sb.WriteString("\n")
		}
	case types.SectionSkills:
		for _, skill := range data.Skills {
			fmt.Fprintf(sb, "%s: %s\n", skill.Category, skill.Skills)
		}
	}
}
