package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptPlainText(t *testing.T) {
	upload, err := Accept("resume.txt", []byte("Ada Lovelace\r\nEngineer\n\n\n\nLondon"))
	require.NoError(t, err)
	assert.False(t, upload.PassThrough())
	assert.Equal(t, "Ada Lovelace\nEngineer\n\nLondon", upload.Text)
}

func TestAcceptMarkdown(t *testing.T) {
	upload, err := Accept("resume.md", []byte("# Ada Lovelace\n- Built engines"))
	require.NoError(t, err)
	assert.Contains(t, upload.Text, "# Ada Lovelace")
	assert.Contains(t, upload.Text, "- Built engines")
}

func TestAcceptHTML(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head>
		<body><h1>Ada Lovelace</h1><p>Engineer in London</p>
		<script>alert("hi")</script></body></html>`
	upload, err := Accept("resume.html", []byte(html))
	require.NoError(t, err)
	assert.Contains(t, upload.Text, "Ada Lovelace")
	assert.Contains(t, upload.Text, "Engineer in London")
	assert.NotContains(t, upload.Text, "alert")
	assert.NotContains(t, upload.Text, "color:red")
}

func TestAcceptImagePassThrough(t *testing.T) {
	content := []byte{0x89, 'P', 'N', 'G'}
	upload, err := Accept("resume.png", content)
	require.NoError(t, err)
	assert.True(t, upload.PassThrough())
	assert.Equal(t, "image/png", upload.MIMEType)
	assert.Equal(t, content, upload.Data)

	upload, err = Accept("photo.JPG", []byte{0xff, 0xd8})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", upload.MIMEType)
}

func TestAcceptScannedPDFFallsBackToPassThrough(t *testing.T) {
	// Not a parseable PDF, so extraction fails and the bytes pass
	// through for the backend to read.
	content := []byte("%PDF-1.4 garbage")
	upload, err := Accept("resume.pdf", content)
	require.NoError(t, err)
	assert.True(t, upload.PassThrough())
	assert.Equal(t, "application/pdf", upload.MIMEType)
	assert.Equal(t, content, upload.Data)
}

func TestAcceptUnsupportedType(t *testing.T) {
	_, err := Accept("resume.xlsx", []byte("data"))
	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "resume.xlsx", unsupported.Filename)
}

func TestFlattenDocxXML(t *testing.T) {
	xml := `<w:document><w:p><w:r><w:t>Ada Lovelace</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Engineer</w:t></w:r></w:p></w:document>`
	text := flattenDocxXML(xml)
	assert.Contains(t, text, "Ada Lovelace\n")
	assert.Contains(t, text, "Engineer\n")
	assert.NotContains(t, text, "<")
}
