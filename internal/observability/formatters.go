// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/style"
	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStoredResume outputs a human-readable summary of one stored
// resume record.
func (p *Printer) PrintStoredResume(record *types.StoredResume) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("ID:       %s\n", record.ID))
	if record.UploadedFileName != nil {
		sb.WriteString(fmt.Sprintf("Source:   %s\n", *record.UploadedFileName))
	}
	sb.WriteString("\n")

	data := record.ResumeData
	if data.PersonalInfo.Name != "" {
		sb.WriteString(fmt.Sprintf("Person:   %s\n", data.PersonalInfo.Name))
	}
	sb.WriteString(fmt.Sprintf("Sections: %s\n", summarizeSections(&data)))

	if len(data.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(data.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := data.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", exp.Role, exp.Company))
		}
		if len(data.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Experience)-maxItemsToShow))
		}
	}

	p.printBox("STORED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// summarizeSections lists non-empty sections with item counts.
func summarizeSections(data *types.ResumeData) string {
	parts := []string{}
	for _, key := range types.DefaultSectionOrder() {
		if data.SectionEmpty(key) {
			continue
		}
		switch key {
		case types.SectionSummary:
			parts = append(parts, "summary")
		case types.SectionExperience:
			parts = append(parts, fmt.Sprintf("experience(%d)", len(data.Experience)))
		case types.SectionEducation:
			parts = append(parts, fmt.Sprintf("education(%d)", len(data.Education)))
		case types.SectionProjects:
			parts = append(parts, fmt.Sprintf("projects(%d)", len(data.Projects)))
		case types.SectionCertifications:
			parts = append(parts, fmt.Sprintf("certifications(%d)", len(data.Certifications)))
		case types.SectionSkills:
			parts = append(parts, fmt.Sprintf("skills(%d)", len(data.Skills)))
		}
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, ", ")
}

// PrintResolvedStyle outputs the concrete style primitives a template
// resolved to.
func (p *Printer) PrintResolvedStyle(resolved *style.ResolvedStyle) {
	if resolved == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Primary:  %s\n", resolved.Palette.Primary))
	sb.WriteString(fmt.Sprintf("Accent:   %s\n", resolved.Palette.Accent))
	sb.WriteString(fmt.Sprintf("Heading:  %s %dpt\n", resolved.HeadingFont, resolved.HeadingSizePt))
	sb.WriteString(fmt.Sprintf("Body:     %s\n", resolved.BodyFont))
	sb.WriteString(fmt.Sprintf("Spacing:  %dpt\n", resolved.SectionSpacingPt))

	header := "left-aligned"
	if resolved.Banner {
		header = "banner"
	} else if resolved.HeaderCenter {
		header = "centered"
	}
	sb.WriteString(fmt.Sprintf("Header:   %s\n", header))

	if resolved.Divider.Present {
		kind := "line"
		if resolved.Divider.Dotted {
			kind = "dots"
		} else if resolved.Divider.WeightPx > 1 {
			kind = "thick line"
		}
		sb.WriteString(fmt.Sprintf("Divider:  %s\n", kind))
	} else {
		sb.WriteString("Divider:  none\n")
	}

	bullet := string(resolved.BulletStyle)
	if resolved.BulletGlyph != "" {
		bullet = fmt.Sprintf("%s (%s)", bullet, resolved.BulletGlyph)
	}
	sb.WriteString(fmt.Sprintf("Bullets:  %s", bullet))

	p.printBox("RESOLVED STYLE", sb.String())
}

// PrintAnalysisSummary outputs a one-box summary of an ATS check.
func (p *Printer) PrintAnalysisSummary(score *types.ATSScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %d/100\n", score.OverallScore))

	if len(score.Breakdown) > 0 {
		sb.WriteString("\nBreakdown:\n")
		for _, item := range score.Breakdown {
			sb.WriteString(fmt.Sprintf("  %s: %d/%d\n", item.Category, item.Score, item.MaxScore))
		}
	}

	if len(score.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		count := min(len(score.Feedback), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := score.Feedback[i].Issue
			if len(issue) > 45 {
				issue = issue[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", issue))
		}
		if len(score.Feedback) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.Feedback)-maxItemsToShow))
		}
	}

	p.printBox("ATS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
