package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

func TestResolve_LightPalette(t *testing.T) {
	resolved := Resolve(templates.Default(), ContextInteractive, false)
	assert.Equal(t, "#000000", resolved.Palette.Primary)
	assert.Equal(t, "#ffffff", resolved.Palette.Background)
}

func TestResolve_DarkOnlyInInteractive(t *testing.T) {
	tpl := templates.Default()

	dark := Resolve(tpl, ContextInteractive, true)
	assert.Equal(t, "#60a5fa", dark.Palette.Primary)
	assert.Equal(t, "#1f2937", dark.Palette.Background)

	// Exports ignore the dark-mode flag entirely.
	export := Resolve(tpl, ContextExport, true)
	assert.Equal(t, "#000000", export.Palette.Primary)
	assert.Equal(t, "#ffffff", export.Palette.Background)
}

func TestResolve_HeadingSizes(t *testing.T) {
	tests := []struct {
		size       types.HeadingSize
		pt         int
		halfPoints int
	}{
		{types.HeadingSmall, 12, 22},
		{types.HeadingMedium, 14, 24},
		{types.HeadingLarge, 16, 28},
	}
	for _, tt := range tests {
		tpl := templates.Default()
		tpl.FontStyle.HeadingSize = tt.size
		resolved := Resolve(tpl, ContextExport, false)
		assert.Equal(t, tt.pt, resolved.HeadingSizePt, string(tt.size))
		assert.Equal(t, tt.halfPoints, resolved.HeadingHalfPoints, string(tt.size))
	}
}

func TestResolve_Spacing(t *testing.T) {
	tests := []struct {
		spacing types.SectionSpacing
		pt      int
		tw      int
	}{
		{types.SpacingCompact, 8, 100},
		{types.SpacingNormal, 12, 200},
		{types.SpacingSpacious, 16, 300},
	}
	for _, tt := range tests {
		tpl := templates.Default()
		tpl.SectionStyle.SectionSpacing = tt.spacing
		resolved := Resolve(tpl, ContextExport, false)
		assert.Equal(t, tt.pt, resolved.SectionSpacingPt, string(tt.spacing))
		assert.Equal(t, tt.tw, resolved.SectionSpacingTw, string(tt.spacing))
	}
}

func TestResolve_Dividers(t *testing.T) {
	tpl := templates.Default()

	tpl.SectionStyle.DividerType = types.DividerNone
	assert.False(t, Resolve(tpl, ContextExport, false).Divider.Present)

	tpl.SectionStyle.DividerType = types.DividerLine
	line := Resolve(tpl, ContextExport, false).Divider
	assert.Equal(t, Divider{Present: true, WeightPx: 1, SizeEighths: 6}, line)

	tpl.SectionStyle.DividerType = types.DividerThickLine
	thick := Resolve(tpl, ContextExport, false).Divider
	assert.Equal(t, Divider{Present: true, WeightPx: 3, SizeEighths: 12}, thick)

	tpl.SectionStyle.DividerType = types.DividerDots
	dots := Resolve(tpl, ContextExport, false).Divider
	assert.True(t, dots.Dotted)
}

func TestResolve_Bullets(t *testing.T) {
	tests := []struct {
		style types.BulletStyle
		glyph string
		css   string
	}{
		{types.BulletCircle, "•", "disc"},
		{types.BulletSquare, "▪", "square"},
		{types.BulletDash, "-", `"- "`},
		{types.BulletArrow, "→", `"\2192  "`},
		{types.BulletNone, "", "none"},
	}
	for _, tt := range tests {
		tpl := templates.Default()
		tpl.SectionStyle.BulletStyle = tt.style
		resolved := Resolve(tpl, ContextExport, false)
		assert.Equal(t, tt.glyph, resolved.BulletGlyph, string(tt.style))
		assert.Equal(t, tt.css, resolved.ListStyleCSS, string(tt.style))
	}
}

func TestResolve_HeaderFlags(t *testing.T) {
	tpl := templates.Default()

	tpl.HeaderStyle = types.HeaderCentered
	resolved := Resolve(tpl, ContextExport, false)
	assert.True(t, resolved.HeaderCenter)
	assert.False(t, resolved.Banner)

	tpl.HeaderStyle = types.HeaderBanner
	resolved = Resolve(tpl, ContextExport, false)
	assert.True(t, resolved.HeaderCenter)
	assert.True(t, resolved.Banner)

	tpl.HeaderStyle = types.HeaderLeftAligned
	resolved = Resolve(tpl, ContextExport, false)
	assert.False(t, resolved.HeaderCenter)
}

func TestResolve_NormalizesIncompleteStyle(t *testing.T) {
	var tpl types.ResumeTemplateStyle
	resolved := Resolve(tpl, ContextExport, false)
	assert.Equal(t, "#000000", resolved.Palette.Primary)
	assert.Equal(t, 14, resolved.HeadingSizePt)
}

func TestResolve_Deterministic(t *testing.T) {
	tpl := templates.Default()
	assert.Equal(t, Resolve(tpl, ContextInteractive, true), Resolve(tpl, ContextInteractive, true))
}
