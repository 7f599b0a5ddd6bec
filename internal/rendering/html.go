package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-studio/internal/projection"
	"github.com/jonathan/resume-studio/internal/style"
	"github.com/jonathan/resume-studio/internal/types"
)

//go:embed templates/resume.html.tmpl
var templateFiles embed.FS

// htmlTemplate is parsed once; rendering is a pure execution over it.
var htmlTemplate = template.Must(
	template.New("resume.html.tmpl").Funcs(template.FuncMap{
		"bullets":     types.SplitBullets,
		"dateRange":   DateRange,
		"contactLine": ContactLine,
		"stylesheet":  buildStylesheet,
		"sect": func(root *htmlData, section projection.Section) sectionData {
			return sectionData{Section: section, Data: root.Data}
		},
	}).ParseFS(templateFiles, "templates/resume.html.tmpl"),
)

// htmlData is the root template payload.
type htmlData struct {
	Data     *types.ResumeData
	Style    style.ResolvedStyle
	Sections projection.ProjectedSections
	// Print constrains the output to a fixed page geometry.
	Print bool
}

// sectionData carries one projected section plus the resume content
// into the section sub-template.
type sectionData struct {
	Section projection.Section
	Data    *types.ResumeData
}

// RenderHTML produces the interactive preview markup from the shared
// projection and resolved style. Stateless: identical inputs yield
// byte-identical output.
func RenderHTML(data *types.ResumeData, resolved style.ResolvedStyle, projected projection.ProjectedSections) (string, error) {
	return renderHTML(data, resolved, projected, false)
}

// RenderPrintHTML produces the same markup constrained to a fixed A4
// page geometry. Callers must resolve the style in export context so
// printed output ignores the UI dark-mode state.
func RenderPrintHTML(data *types.ResumeData, resolved style.ResolvedStyle, projected projection.ProjectedSections) (string, error) {
	return renderHTML(data, resolved, projected, true)
}

func renderHTML(data *types.ResumeData, resolved style.ResolvedStyle, projected projection.ProjectedSections, print bool) (string, error) {
	var sb strings.Builder
	err := htmlTemplate.Execute(&sb, &htmlData{
		Data:     data,
		Style:    resolved,
		Sections: projected,
		Print:    print,
	})
	if err != nil {
		return "", &TemplateError{Message: "failed to execute resume template", Cause: err}
	}
	return sb.String(), nil
}

// buildStylesheet derives the document CSS from the resolved style.
// Built in code rather than the template so hex colors and numeric
// sizes stay out of the HTML sanitizer's way.
func buildStylesheet(s style.ResolvedStyle, print bool) template.CSS {
	var sb strings.Builder

	p := s.Palette
	fmt.Fprintf(&sb, "body { margin: 0; background: %s; color: %s; font-family: %s, sans-serif; font-size: 11pt; }\n",
		p.Background, p.Text, cssFont(s.BodyFont))
	sb.WriteString(".resume { padding: 2rem; }\n")

	align := "left"
	if s.HeaderCenter {
		align = "center"
	}
	fmt.Fprintf(&sb, "header { text-align: %s; margin-bottom: 1.5rem; }\n", align)
	fmt.Fprintf(&sb, "header h1 { margin: 0 0 0.25rem; color: %s; font-family: %s, serif; }\n",
		p.Primary, cssFont(s.HeadingFont))
	fmt.Fprintf(&sb, "header .contact { margin: 0.15rem 0; font-size: 9pt; color: %s; }\n", p.Secondary)
	fmt.Fprintf(&sb, "header .contact a { color: %s; }\n", p.Accent)
	if s.Banner {
		// Banner headers get a full-width primary band with inverse text.
		fmt.Fprintf(&sb, "header.banner { background: %s; padding: 1rem 1.5rem; border-radius: 6px; }\n", p.Primary)
		sb.WriteString("header.banner h1, header.banner .contact, header.banner .contact a { color: #ffffff; }\n")
	}

	fmt.Fprintf(&sb, "section { margin-bottom: %dpt; }\n", s.SectionSpacingPt)
	fmt.Fprintf(&sb, "section h2 { font-size: %dpt; color: %s; font-family: %s, serif; margin: 0 0 0.5rem; padding-bottom: 2px;",
		s.HeadingSizePt, p.Primary, cssFont(s.HeadingFont))
	if s.Divider.Present {
		borderStyle := "solid"
		if s.Divider.Dotted {
			borderStyle = "dotted"
		}
		fmt.Fprintf(&sb, " border-bottom: %dpx %s %s;", s.Divider.WeightPx, borderStyle, p.Accent)
	}
	sb.WriteString(" }\n")

	fmt.Fprintf(&sb, "ul { list-style-type: %s; margin: 0.25rem 0 0; padding-left: 1.25rem; }\n", s.ListStyleCSS)
	sb.WriteString(".item { margin-bottom: 0.75rem; }\n")
	sb.WriteString(".item-head { display: flex; justify-content: space-between; align-items: baseline; }\n")
	fmt.Fprintf(&sb, ".item-head .dates { font-size: 9pt; white-space: nowrap; color: %s; }\n", p.Secondary)
	fmt.Fprintf(&sb, ".item-head .where, .meta { color: %s; }\n", p.Secondary)
	fmt.Fprintf(&sb, ".tech { font-style: italic; color: %s; }\n", p.Accent)
	fmt.Fprintf(&sb, ".links a { color: %s; font-size: 9pt; margin-right: 0.75rem; }\n", p.Accent)
	fmt.Fprintf(&sb, ".skill-category { font-weight: 600; color: %s; }\n", p.Secondary)

	sb.WriteString(".columns { display: flex; gap: 1.5rem; }\n")
	sb.WriteString(".columns main { flex: 2; }\n")
	fmt.Fprintf(&sb, ".columns aside { flex: 1; border-left: 1px solid %s; padding-left: 1rem; font-size: 10pt; }\n", p.Accent)
	// DOM keeps main content first; row-reverse flips the physical
	// sides so the sidebar lands on the left.
	fmt.Fprintf(&sb, ".columns.sidebar-left { flex-direction: row-reverse; }\n")
	fmt.Fprintf(&sb, ".columns.sidebar-left aside { border-left: none; border-right: 1px solid %s; padding-left: 0; padding-right: 1rem; }\n", p.Accent)

	if print {
		sb.WriteString("@page { size: A4; margin: 15mm; }\n")
		sb.WriteString("body { width: 180mm; margin: 0 auto; }\n")
	}

	return template.CSS(sb.String())
}

// cssFont quotes a font family name when it contains spaces.
func cssFont(family string) string {
	if family == "" {
		return "system-ui"
	}
	if strings.ContainsAny(family, " \t") {
		return fmt.Sprintf("%q", family)
	}
	return family
}
