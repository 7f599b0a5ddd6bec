// Package style resolves a template style into concrete primitives
// shared by every renderer, so preview and export never diverge in
// theme-derived properties.
package style

import "github.com/jonathan/resume-studio/internal/types"

// RenderContext distinguishes the interactive preview from export
// surfaces. Export output always uses the resolved light palette;
// only the interactive preview honors the UI dark-mode flag.
type RenderContext string

const (
	ContextInteractive RenderContext = "interactive"
	ContextExport      RenderContext = "export"
)

// darkPalette is the fixed dark-mode override. It deliberately
// replaces the stored scheme wholesale rather than blending with it.
var darkPalette = types.ColorScheme{
	Primary:    "#60a5fa",
	Secondary:  "#9ca3af",
	Accent:     "#818cf8",
	Background: "#1f2937",
	Text:       "#f3f4f6",
}

// Divider is the resolved section heading underline.
type Divider struct {
	Present bool
	// WeightPx is the border thickness for HTML-based renderers.
	WeightPx int
	// SizeEighths is the border size in eighths of a point for the
	// word-processor document.
	SizeEighths int
	Dotted      bool
}

// ResolvedStyle holds concrete style primitives derived from a
// template style plus render context. It is renderer-agnostic: each
// renderer maps these values into its own format.
type ResolvedStyle struct {
	Palette types.ColorScheme

	// HeaderCenter is true for centered and banner header styles.
	HeaderCenter bool
	// Banner requests a full-width colored header band with inverse
	// (white) text on top of the primary color.
	Banner bool

	HeadingFont string
	BodyFont    string
	// HeadingSizePt is the section heading size in points.
	HeadingSizePt int
	// HeadingHalfPoints is the same size in half-points for the
	// word-processor document format.
	HeadingHalfPoints int

	// SectionSpacingPt is the vertical gap between sections in points.
	SectionSpacingPt int
	// SectionSpacingTw is the same gap in twentieths of a point.
	SectionSpacingTw int

	Divider Divider

	BulletStyle types.BulletStyle
	// BulletGlyph is the literal marker character, empty for none.
	BulletGlyph string
	// ListStyleCSS is the CSS list-style-type value for HTML output.
	ListStyleCSS string
}

// Resolve maps a template style and render context into concrete
// style primitives. Pure: identical inputs yield identical output.
func Resolve(s types.ResumeTemplateStyle, ctx RenderContext, darkMode bool) ResolvedStyle {
	s.Normalize()

	palette := s.ColorScheme
	if ctx == ContextInteractive && darkMode {
		palette = darkPalette
	}

	resolved := ResolvedStyle{
		Palette:      palette,
		HeaderCenter: s.HeaderStyle == types.HeaderCentered || s.HeaderStyle == types.HeaderBanner,
		Banner:       s.HeaderStyle == types.HeaderBanner,
		HeadingFont:  s.FontStyle.HeadingFont,
		BodyFont:     s.FontStyle.BodyFont,
		BulletStyle:  s.SectionStyle.BulletStyle,
	}

	switch s.FontStyle.HeadingSize {
	case types.HeadingSmall:
		resolved.HeadingSizePt = 12
		resolved.HeadingHalfPoints = 22
	case types.HeadingLarge:
		resolved.HeadingSizePt = 16
		resolved.HeadingHalfPoints = 28
	default:
		resolved.HeadingSizePt = 14
		resolved.HeadingHalfPoints = 24
	}

	switch s.SectionStyle.SectionSpacing {
	case types.SpacingCompact:
		resolved.SectionSpacingPt = 8
		resolved.SectionSpacingTw = 100
	case types.SpacingSpacious:
		resolved.SectionSpacingPt = 16
		resolved.SectionSpacingTw = 300
	default:
		resolved.SectionSpacingPt = 12
		resolved.SectionSpacingTw = 200
	}

	switch s.SectionStyle.DividerType {
	case types.DividerNone:
		resolved.Divider = Divider{}
	case types.DividerThickLine:
		resolved.Divider = Divider{Present: true, WeightPx: 3, SizeEighths: 12}
	case types.DividerDots:
		resolved.Divider = Divider{Present: true, WeightPx: 2, SizeEighths: 6, Dotted: true}
	default: // line
		resolved.Divider = Divider{Present: true, WeightPx: 1, SizeEighths: 6}
	}

	switch s.SectionStyle.BulletStyle {
	case types.BulletSquare:
		resolved.BulletGlyph = "▪"
		resolved.ListStyleCSS = "square"
	case types.BulletDash:
		resolved.BulletGlyph = "-"
		resolved.ListStyleCSS = `"- "`
	case types.BulletArrow:
		resolved.BulletGlyph = "→"
		resolved.ListStyleCSS = `"\2192  "`
	case types.BulletNone:
		resolved.BulletGlyph = ""
		resolved.ListStyleCSS = "none"
	default: // circle
		resolved.BulletGlyph = "•"
		resolved.ListStyleCSS = "disc"
	}

	return resolved
}
