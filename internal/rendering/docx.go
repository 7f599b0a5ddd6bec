package rendering

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/projection"
	"github.com/jonathan/resume-studio/internal/style"
	"github.com/jonathan/resume-studio/internal/types"
)

// The export document is a minimal WordprocessingML package built by
// hand: document.xml plus the numbering, styles and relationship
// parts it references, zipped with fixed metadata so identical input
// produces byte-identical output.

const (
	// nameHalfPoints is the person-name run size (26pt).
	nameHalfPoints = 52
	// bodyHalfPoints is the default entry-heading run size (11pt).
	bodyHalfPoints = 22
	// rightTabTwips places date ranges at the right page margin.
	rightTabTwips = 9360
	// bulletIndentTwips indents bullet items half an inch.
	bulletIndentTwips = 720
	// hyperlinkColor is the fixed blue used for link runs.
	hyperlinkColor = "0000FF"
)

// docxBuilder accumulates paragraphs and hyperlink relationships.
type docxBuilder struct {
	body strings.Builder
	rels []hyperlinkRel
	res  style.ResolvedStyle
}

type hyperlinkRel struct {
	id     string
	target string
}

// run is one styled text run within a paragraph.
type run struct {
	text      string
	bold      bool
	italic    bool
	underline bool
	color     string // hex without '#', empty for default
	size      int    // half-points, 0 for default
	tabBefore bool   // emit a tab character before the text
}

// paraOpts carries paragraph-level properties.
type paraOpts struct {
	center       bool
	rightTab     bool
	bullet       bool
	indent       int // twips
	spacingAfter int // twentieths of a point
	border       bool
}

// RenderDOCX produces the word-processor export document. Sections
// follow the projection's document order (main content first), with
// the same emptiness-skipping as the preview.
func RenderDOCX(data *types.ResumeData, resolved style.ResolvedStyle, projected projection.ProjectedSections) ([]byte, error) {
	b := &docxBuilder{res: resolved}

	b.writeHeader(data.PersonalInfo)
	for _, section := range projected.AllSections() {
		b.writeSection(data, section.Key)
	}

	return b.pack()
}

// hexColor strips the '#' prefix for the OOXML color attribute.
func hexColor(hex string) string {
	return strings.TrimPrefix(hex, "#")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

// addHyperlink registers an external hyperlink target and returns its
// relationship id.
func (b *docxBuilder) addHyperlink(target string) string {
	id := fmt.Sprintf("rIdHl%d", len(b.rels)+1)
	b.rels = append(b.rels, hyperlinkRel{id: id, target: target})
	return id
}

func (b *docxBuilder) writeParagraphProps(opts paraOpts) {
	b.body.WriteString("<w:pPr>")
	if opts.bullet && b.res.BulletGlyph != "" {
		b.body.WriteString(`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr>`)
	}
	if opts.border && b.res.Divider.Present {
		val := "single"
		switch {
		case b.res.Divider.Dotted:
			val = "dotted"
		case b.res.Divider.SizeEighths >= 12:
			val = "thick"
		}
		fmt.Fprintf(&b.body, `<w:pBdr><w:bottom w:val="%s" w:sz="%d" w:space="1" w:color="%s"/></w:pBdr>`,
			val, b.res.Divider.SizeEighths, hexColor(b.res.Palette.Primary))
	}
	if opts.indent > 0 {
		fmt.Fprintf(&b.body, `<w:ind w:left="%d"/>`, opts.indent)
	}
	if opts.spacingAfter > 0 {
		fmt.Fprintf(&b.body, `<w:spacing w:after="%d"/>`, opts.spacingAfter)
	}
	if opts.rightTab {
		fmt.Fprintf(&b.body, `<w:tabs><w:tab w:val="right" w:pos="%d"/></w:tabs>`, rightTabTwips)
	}
	if opts.center {
		b.body.WriteString(`<w:jc w:val="center"/>`)
	}
	b.body.WriteString("</w:pPr>")
}

func (b *docxBuilder) writeRun(r run) {
	b.body.WriteString("<w:r>")
	if r.bold || r.italic || r.underline || r.color != "" || r.size > 0 {
		b.body.WriteString("<w:rPr>")
		if r.bold {
			b.body.WriteString("<w:b/>")
		}
		if r.italic {
			b.body.WriteString("<w:i/>")
		}
		if r.underline {
			b.body.WriteString(`<w:u w:val="single"/>`)
		}
		if r.color != "" {
			fmt.Fprintf(&b.body, `<w:color w:val="%s"/>`, r.color)
		}
		if r.size > 0 {
			fmt.Fprintf(&b.body, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.size, r.size)
		}
		b.body.WriteString("</w:rPr>")
	}
	if r.tabBefore {
		b.body.WriteString("<w:tab/>")
	}
	fmt.Fprintf(&b.body, `<w:t xml:space="preserve">%s</w:t>`, xmlEscape(r.text))
	b.body.WriteString("</w:r>")
}

// writeHyperlinkRun emits a hyperlink element wrapping one blue
// underlined run with a stable display label.
func (b *docxBuilder) writeHyperlinkRun(label, target string) {
	id := b.addHyperlink(target)
	fmt.Fprintf(&b.body, `<w:hyperlink r:id="%s">`, id)
	b.writeRun(run{text: label, color: hyperlinkColor, underline: true})
	b.body.WriteString("</w:hyperlink>")
}

func (b *docxBuilder) openParagraph(opts paraOpts) {
	b.body.WriteString("<w:p>")
	b.writeParagraphProps(opts)
}

func (b *docxBuilder) closeParagraph() {
	b.body.WriteString("</w:p>")
}

func (b *docxBuilder) paragraph(opts paraOpts, runs ...run) {
	b.openParagraph(opts)
	for _, r := range runs {
		b.writeRun(r)
	}
	b.closeParagraph()
}

func (b *docxBuilder) emptyParagraph() {
	b.body.WriteString("<w:p/>")
}

// sectionTitle emits the styled section heading with its divider
// bottom border.
func (b *docxBuilder) sectionTitle(title string) {
	b.paragraph(
		paraOpts{border: true, spacingAfter: b.res.SectionSpacingTw},
		run{
			text:  strings.ToUpper(title),
			bold:  true,
			color: hexColor(b.res.Palette.Primary),
			size:  b.res.HeadingHalfPoints,
		},
	)
}

func (b *docxBuilder) writeHeader(info types.PersonalInfo) {
	primary := hexColor(b.res.Palette.Primary)
	secondary := hexColor(b.res.Palette.Secondary)

	b.paragraph(
		paraOpts{center: b.res.HeaderCenter},
		run{text: info.Name, bold: true, size: nameHalfPoints, color: primary},
	)
	b.paragraph(
		paraOpts{center: b.res.HeaderCenter},
		run{text: ContactLine(info.Location, info.Phone, info.Email), color: secondary},
	)

	b.openParagraph(paraOpts{center: b.res.HeaderCenter, spacingAfter: 400})
	if info.LinkedIn != "" {
		b.writeHyperlinkRun("LinkedIn", info.LinkedIn)
	}
	if info.LinkedIn != "" && info.Portfolio != "" {
		b.writeRun(run{text: " | "})
	}
	if info.Portfolio != "" {
		b.writeHyperlinkRun("Portfolio", info.Portfolio)
	}
	b.closeParagraph()
}

func (b *docxBuilder) writeBullets(description string) {
	for _, bullet := range types.SplitBullets(description) {
		b.paragraph(
			paraOpts{bullet: true, indent: bulletIndentTwips},
			run{text: bullet},
		)
	}
}

func (b *docxBuilder) writeSection(data *types.ResumeData, key types.SectionKey) {
	secondary := hexColor(b.res.Palette.Secondary)
	primary := hexColor(b.res.Palette.Primary)

	switch key {
	case types.SectionSummary:
		b.sectionTitle(key.Title())
		b.paragraph(paraOpts{spacingAfter: 200}, run{text: data.Summary})

	case types.SectionExperience:
		b.sectionTitle(key.Title())
		for _, exp := range data.Experience {
			b.paragraph(
				paraOpts{rightTab: true},
				run{text: exp.Role + " | ", bold: true, size: bodyHalfPoints},
				run{text: fmt.Sprintf("%s, %s", exp.Company, exp.Location), size: bodyHalfPoints, color: secondary},
				run{text: DateRange(exp.StartDate, exp.EndDate), color: secondary, tabBefore: true},
			)
			b.writeBullets(exp.Description)
			b.emptyParagraph()
		}

	case types.SectionEducation:
		b.sectionTitle(key.Title())
		for _, edu := range data.Education {
			b.paragraph(
				paraOpts{rightTab: true},
				run{text: fmt.Sprintf("%s, %s", edu.Institution, edu.Location), bold: true, size: bodyHalfPoints},
				run{text: DateRange(edu.StartDate, edu.EndDate), color: secondary, tabBefore: true},
			)
			runs := []run{{text: edu.Degree}}
			if edu.GPA != "" {
				runs = append(runs, run{text: "CGPA: " + edu.GPA, color: secondary, tabBefore: true})
			}
			b.paragraph(paraOpts{rightTab: true}, runs...)
			b.emptyParagraph()
		}

	case types.SectionProjects:
		b.sectionTitle(key.Title())
		for _, proj := range data.Projects {
			b.paragraph(
				paraOpts{rightTab: true},
				run{text: proj.Title + " | ", bold: true, size: bodyHalfPoints},
				run{text: proj.Technologies, size: 20, italic: true, color: primary},
				run{text: DateRange(proj.StartDate, proj.EndDate), color: secondary, tabBefore: true},
			)
			b.writeBullets(proj.Description)
			if proj.LiveLink != "" || proj.GithubLink != "" {
				b.openParagraph(paraOpts{indent: bulletIndentTwips})
				if proj.LiveLink != "" {
					b.writeHyperlinkRun("Live Demo", proj.LiveLink)
				}
				if proj.LiveLink != "" && proj.GithubLink != "" {
					b.writeRun(run{text: " | "})
				}
				if proj.GithubLink != "" {
					b.writeHyperlinkRun("GitHub", proj.GithubLink)
				}
				b.closeParagraph()
			}
			b.emptyParagraph()
		}

	case types.SectionCertifications:
		b.sectionTitle(key.Title())
		for _, cert := range data.Certifications {
			b.paragraph(
				paraOpts{rightTab: true},
				run{text: cert.Name + " - ", bold: true, size: bodyHalfPoints},
				run{text: cert.Issuer, size: bodyHalfPoints},
				run{text: cert.Date, color: secondary, tabBefore: true},
			)
		}
		b.emptyParagraph()

	case types.SectionSkills:
		b.sectionTitle(key.Title())
		for _, skill := range data.Skills {
			b.paragraph(
				paraOpts{},
				run{text: skill.Category + ": ", bold: true, size: bodyHalfPoints, color: secondary},
				run{text: skill.Skills, size: bodyHalfPoints},
			)
		}
	}
}

// pack assembles the OOXML zip package.
func (b *docxBuilder) pack() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", b.documentXML()},
		{"word/_rels/document.xml.rels", b.documentRelsXML()},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", b.numberingXML()},
	}

	for _, part := range parts {
		// Fixed header metadata keeps output byte-identical for
		// identical input.
		w, err := zw.CreateHeader(&zip.FileHeader{Name: part.name, Method: zip.Deflate})
		if err != nil {
			return nil, &RenderError{Message: "failed to create document part " + part.name, Cause: err}
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, &RenderError{Message: "failed to write document part " + part.name, Cause: err}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &RenderError{Message: "failed to finalize document package", Cause: err}
	}
	return buf.Bytes(), nil
}

func (b *docxBuilder) documentXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		"<w:body>" + b.body.String() +
		`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1134" w:right="1134" w:bottom="1134" w:left="1134"/></w:sectPr>` +
		"</w:body></w:document>"
}

func (b *docxBuilder) documentRelsXML() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	sb.WriteString(`<Relationship Id="rIdStyles" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	sb.WriteString(`<Relationship Id="rIdNumbering" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>`)
	for _, rel := range b.rels {
		fmt.Fprintf(&sb, `<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="%s" TargetMode="External"/>`,
			rel.id, xmlEscape(rel.target))
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

// numberingXML defines the single bullet list level using the
// resolved bullet glyph.
func (b *docxBuilder) numberingXML() string {
	glyph := b.res.BulletGlyph
	if glyph == "" {
		glyph = "•"
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:abstractNum w:abstractNumId="0">` +
		`<w:lvl w:ilvl="0"><w:numFmt w:val="bullet"/><w:lvlText w:val="` + xmlEscape(glyph) + `"/>` +
		`<w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>` +
		`</w:abstractNum>` +
		`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
		`</w:numbering>`
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:docDefaults><w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="22"/><w:szCs w:val="22"/>` +
	`</w:rPr></w:rPrDefault></w:docDefaults>` +
	`</w:styles>`
