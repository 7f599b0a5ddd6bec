package rendering

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/projection"
	"github.com/jonathan/resume-studio/internal/style"
	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

// readDocxPart unzips one part of the generated package.
func readDocxPart(t *testing.T, pkg []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatalf("part %s not found in package", name)
	return ""
}

func renderSampleDocx(t *testing.T, tpl types.ResumeTemplateStyle, data *types.ResumeData) []byte {
	t.Helper()
	resolved := style.Resolve(tpl, style.ContextExport, false)
	projected := projection.Project(data, types.DefaultSectionOrder(), tpl.Layout)
	pkg, err := RenderDOCX(data, resolved, projected)
	require.NoError(t, err)
	return pkg
}

func TestRenderDOCXStructure(t *testing.T) {
	pkg := renderSampleDocx(t, templates.Default(), sampleResume())

	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "[Content_Types].xml")
	assert.Contains(t, names, "_rels/.rels")
	assert.Contains(t, names, "word/document.xml")
	assert.Contains(t, names, "word/numbering.xml")
}

func TestRenderDOCXContent(t *testing.T) {
	pkg := renderSampleDocx(t, templates.Default(), sampleResume())
	doc := readDocxPart(t, pkg, "word/document.xml")

	// Name run at 26pt, centered header per the default template.
	assert.Contains(t, doc, `<w:sz w:val="52"/>`)
	assert.Contains(t, doc, `<w:jc w:val="center"/>`)
	assert.Contains(t, doc, `>Ada Lovelace</w:t>`)

	// Section titles are uppercased with a bottom border.
	assert.Contains(t, doc, `>SUMMARY</w:t>`)
	assert.Contains(t, doc, `>EXPERIENCE</w:t>`)
	assert.Contains(t, doc, `<w:bottom w:val="single" w:sz="6"`)

	// Date ranges ride a right tab stop.
	assert.Contains(t, doc, `<w:tab w:val="right" w:pos="9360"/>`)
	assert.Contains(t, doc, `Jan 2020 – Present`)

	// Bullet lines become numbered list paragraphs.
	assert.Contains(t, doc, `<w:numId w:val="1"/>`)
	assert.Contains(t, doc, `>Designed the core loop</w:t>`)

	// Empty sections are skipped.
	assert.NotContains(t, doc, ">PROJECTS</w:t>")
	assert.NotContains(t, doc, ">CERTIFICATIONS</w:t>")
}

func TestRenderDOCXHyperlinks(t *testing.T) {
	data := sampleResume()
	data.Projects = []types.Project{{
		ID:         "proj_1",
		Title:      "Difference Engine",
		LiveLink:   "https://demo.example.com",
		GithubLink: "https://github.com/ada/engine",
	}}
	pkg := renderSampleDocx(t, templates.Default(), data)

	doc := readDocxPart(t, pkg, "word/document.xml")
	assert.Contains(t, doc, `>LinkedIn</w:t>`)
	assert.Contains(t, doc, `>Live Demo</w:t>`)
	assert.Contains(t, doc, `>GitHub</w:t>`)
	assert.Contains(t, doc, `<w:color w:val="0000FF"/>`)
	assert.Contains(t, doc, `<w:u w:val="single"/>`)

	rels := readDocxPart(t, pkg, "word/_rels/document.xml.rels")
	assert.Contains(t, rels, `Target="https://linkedin.com/in/ada" TargetMode="External"`)
	assert.Contains(t, rels, `Target="https://github.com/ada/engine" TargetMode="External"`)
}

func TestRenderDOCXDividerVariants(t *testing.T) {
	data := sampleResume()

	tpl := templates.Default()
	tpl.SectionStyle.DividerType = types.DividerThickLine
	doc := readDocxPart(t, renderSampleDocx(t, tpl, data), "word/document.xml")
	assert.Contains(t, doc, `<w:bottom w:val="thick" w:sz="12"`)

	tpl.SectionStyle.DividerType = types.DividerDots
	doc = readDocxPart(t, renderSampleDocx(t, tpl, data), "word/document.xml")
	assert.Contains(t, doc, `<w:bottom w:val="dotted" w:sz="6"`)

	tpl.SectionStyle.DividerType = types.DividerNone
	doc = readDocxPart(t, renderSampleDocx(t, tpl, data), "word/document.xml")
	assert.NotContains(t, doc, "<w:pBdr>")
}

func TestRenderDOCXBulletGlyph(t *testing.T) {
	tpl := templates.Default()
	tpl.SectionStyle.BulletStyle = types.BulletArrow
	numbering := readDocxPart(t, renderSampleDocx(t, tpl, sampleResume()), "word/numbering.xml")
	assert.Contains(t, numbering, `<w:lvlText w:val="→"/>`)
}

func TestRenderDOCXDeterministic(t *testing.T) {
	data := sampleResume()
	tpl := templates.Default()
	first := renderSampleDocx(t, tpl, data)
	second := renderSampleDocx(t, tpl, data)
	assert.Equal(t, first, second)
}
