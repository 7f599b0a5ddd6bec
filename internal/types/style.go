package types

// Layout selects how sections are arranged on the page.
type Layout string

const (
	LayoutSingleColumn Layout = "single-column"
	LayoutTwoColumn    Layout = "two-column"
	LayoutSidebarLeft  Layout = "sidebar-left"
	LayoutSidebarRight Layout = "sidebar-right"
)

// TwoColumn reports whether the layout splits content into a main
// column and a sidebar.
func (l Layout) TwoColumn() bool {
	return l == LayoutTwoColumn || l == LayoutSidebarLeft || l == LayoutSidebarRight
}

// HeaderStyle selects the presentation of the name/contact header.
type HeaderStyle string

const (
	HeaderCentered    HeaderStyle = "centered"
	HeaderLeftAligned HeaderStyle = "left-aligned"
	HeaderBanner      HeaderStyle = "banner"
	HeaderMinimal     HeaderStyle = "minimal"
)

// HeadingSize is the heading font-size category.
type HeadingSize string

const (
	HeadingSmall  HeadingSize = "small"
	HeadingMedium HeadingSize = "medium"
	HeadingLarge  HeadingSize = "large"
)

// DividerType selects the section heading underline.
type DividerType string

const (
	DividerLine      DividerType = "line"
	DividerThickLine DividerType = "thick-line"
	DividerDots      DividerType = "dots"
	DividerNone      DividerType = "none"
)

// BulletStyle selects the list item glyph.
type BulletStyle string

const (
	BulletCircle BulletStyle = "circle"
	BulletSquare BulletStyle = "square"
	BulletDash   BulletStyle = "dash"
	BulletArrow  BulletStyle = "arrow"
	BulletNone   BulletStyle = "none"
)

// SectionSpacing selects vertical spacing between sections.
type SectionSpacing string

const (
	SpacingCompact  SectionSpacing = "compact"
	SpacingNormal   SectionSpacing = "normal"
	SpacingSpacious SectionSpacing = "spacious"
)

// ColorScheme holds the five hex colors of a template.
type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Complete reports whether all five colors are populated.
func (c ColorScheme) Complete() bool {
	return c.Primary != "" && c.Secondary != "" && c.Accent != "" &&
		c.Background != "" && c.Text != ""
}

// FontStyle holds the font family names and heading size category.
// Family names are free text interpreted loosely by each renderer.
type FontStyle struct {
	HeadingFont string      `json:"headingFont"`
	BodyFont    string      `json:"bodyFont"`
	HeadingSize HeadingSize `json:"headingSize"`
}

// SectionStyle holds the divider, bullet and spacing selections.
type SectionStyle struct {
	DividerType    DividerType    `json:"dividerType"`
	BulletStyle    BulletStyle    `json:"bulletStyle"`
	SectionSpacing SectionSpacing `json:"sectionSpacing"`
}

// ResumeTemplateStyle is the presentation configuration of a resume,
// independent of its content.
type ResumeTemplateStyle struct {
	Layout       Layout       `json:"layout"`
	HeaderStyle  HeaderStyle  `json:"headerStyle"`
	ColorScheme  ColorScheme  `json:"colorScheme"`
	FontStyle    FontStyle    `json:"fontStyle"`
	SectionStyle SectionStyle `json:"sectionStyle"`
	OverallTheme string       `json:"overallTheme"`
	Description  string       `json:"description"`
}

// defaultColorScheme backs Normalize when a stored or parsed style
// arrives with missing colors.
var defaultColorScheme = ColorScheme{
	Primary:    "#000000",
	Secondary:  "#374151",
	Accent:     "#1f2937",
	Background: "#ffffff",
	Text:       "#111827",
}

// Normalize repairs a style read from storage or the AI boundary so
// the color scheme invariant holds: any blank color falls back to the
// default theme's value. Unset enums fall back to their defaults.
func (s *ResumeTemplateStyle) Normalize() {
	if s.ColorScheme.Primary == "" {
		s.ColorScheme.Primary = defaultColorScheme.Primary
	}
	if s.ColorScheme.Secondary == "" {
		s.ColorScheme.Secondary = defaultColorScheme.Secondary
	}
	if s.ColorScheme.Accent == "" {
		s.ColorScheme.Accent = defaultColorScheme.Accent
	}
	if s.ColorScheme.Background == "" {
		s.ColorScheme.Background = defaultColorScheme.Background
	}
	if s.ColorScheme.Text == "" {
		s.ColorScheme.Text = defaultColorScheme.Text
	}
	if s.Layout == "" {
		s.Layout = LayoutSingleColumn
	}
	if s.HeaderStyle == "" {
		s.HeaderStyle = HeaderCentered
	}
	if s.FontStyle.HeadingSize == "" {
		s.FontStyle.HeadingSize = HeadingMedium
	}
	if s.SectionStyle.DividerType == "" {
		s.SectionStyle.DividerType = DividerLine
	}
	if s.SectionStyle.BulletStyle == "" {
		s.SectionStyle.BulletStyle = BulletCircle
	}
	if s.SectionStyle.SectionSpacing == "" {
		s.SectionStyle.SectionSpacing = SpacingNormal
	}
}
