// Package templates holds the built-in preset template styles.
package templates

import "github.com/jonathan/resume-studio/internal/types"

// Preset is a named, ready-to-apply template style.
type Preset struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Style       types.ResumeTemplateStyle `json:"style"`
}

var presets = []Preset{
	{
		ID:          "default",
		Name:        "Default Professional",
		Description: "Clean single-column layout with traditional serif headings.",
		Style: types.ResumeTemplateStyle{
			Layout:      types.LayoutSingleColumn,
			HeaderStyle: types.HeaderCentered,
			ColorScheme: types.ColorScheme{
				Primary:    "#000000",
				Secondary:  "#374151",
				Accent:     "#1f2937",
				Background: "#ffffff",
				Text:       "#111827",
			},
			FontStyle:    types.FontStyle{HeadingFont: "Georgia", BodyFont: "system-ui", HeadingSize: types.HeadingMedium},
			SectionStyle: types.SectionStyle{DividerType: types.DividerLine, BulletStyle: types.BulletCircle, SectionSpacing: types.SpacingNormal},
			OverallTheme: "Default Professional",
			Description:  "A clean, professional single-column layout with black text and traditional serif headings.",
		},
	},
	{
		ID:          "modern-blue",
		Name:        "Modern Blue",
		Description: "Contemporary design with blue accents and clean typography.",
		Style: types.ResumeTemplateStyle{
			Layout:      types.LayoutSingleColumn,
			HeaderStyle: types.HeaderBanner,
			ColorScheme: types.ColorScheme{
				Primary:    "#2563eb",
				Secondary:  "#64748b",
				Accent:     "#3b82f6",
				Background: "#ffffff",
				Text:       "#1e293b",
			},
			FontStyle:    types.FontStyle{HeadingFont: "Inter", BodyFont: "system-ui", HeadingSize: types.HeadingMedium},
			SectionStyle: types.SectionStyle{DividerType: types.DividerThickLine, BulletStyle: types.BulletArrow, SectionSpacing: types.SpacingNormal},
			OverallTheme: "Modern Blue",
			Description:  "Contemporary design with blue banner header and arrow bullets.",
		},
	},
	{
		ID:          "sidebar-left",
		Name:        "Sidebar Left",
		Description: "Two-column layout with skills and education in a left sidebar.",
		Style: types.ResumeTemplateStyle{
			Layout:      types.LayoutSidebarLeft,
			HeaderStyle: types.HeaderLeftAligned,
			ColorScheme: types.ColorScheme{
				Primary:    "#0f766e",
				Secondary:  "#475569",
				Accent:     "#14b8a6",
				Background: "#ffffff",
				Text:       "#0f172a",
			},
			FontStyle:    types.FontStyle{HeadingFont: "system-ui", BodyFont: "system-ui", HeadingSize: types.HeadingSmall},
			SectionStyle: types.SectionStyle{DividerType: types.DividerLine, BulletStyle: types.BulletDash, SectionSpacing: types.SpacingCompact},
			OverallTheme: "Sidebar Left",
			Description:  "Two-column layout with teal accents and compact spacing.",
		},
	},
	{
		ID:          "sidebar-right",
		Name:        "Sidebar Right",
		Description: "Two-column layout with skills and certifications on the right.",
		Style: types.ResumeTemplateStyle{
			Layout:      types.LayoutSidebarRight,
			HeaderStyle: types.HeaderCentered,
			ColorScheme: types.ColorScheme{
				Primary:    "#7c3aed",
				Secondary:  "#6b7280",
				Accent:     "#8b5cf6",
				Background: "#ffffff",
				Text:       "#1f2937",
			},
			FontStyle:    types.FontStyle{HeadingFont: "Georgia", BodyFont: "system-ui", HeadingSize: types.HeadingMedium},
			SectionStyle: types.SectionStyle{DividerType: types.DividerDots, BulletStyle: types.BulletSquare, SectionSpacing: types.SpacingSpacious},
			OverallTheme: "Sidebar Right",
			Description:  "Purple-accented layout with skills in a right sidebar.",
		},
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Ultra-clean design with minimal dividers and subtle styling.",
		Style: types.ResumeTemplateStyle{
			Layout:      types.LayoutSingleColumn,
			HeaderStyle: types.HeaderMinimal,
			ColorScheme: types.ColorScheme{
				Primary:    "#374151",
				Secondary:  "#6b7280",
				Accent:     "#9ca3af",
				Background: "#ffffff",
				Text:       "#374151",
			},
			FontStyle:    types.FontStyle{HeadingFont: "system-ui", BodyFont: "system-ui", HeadingSize: types.HeadingSmall},
			SectionStyle: types.SectionStyle{DividerType: types.DividerNone, BulletStyle: types.BulletDash, SectionSpacing: types.SpacingCompact},
			OverallTheme: "Minimal",
			Description:  "Ultra-clean design with no section dividers.",
		},
	},
	{
		ID:          "classic-academic",
		Name:        "Classic Academic",
		Description: "Traditional academic style with formal typography.",
		Style: types.ResumeTemplateStyle{
			Layout:      types.LayoutSingleColumn,
			HeaderStyle: types.HeaderCentered,
			ColorScheme: types.ColorScheme{
				Primary:    "#1e3a5f",
				Secondary:  "#4b5563",
				Accent:     "#1e40af",
				Background: "#ffffff",
				Text:       "#111827",
			},
			FontStyle:    types.FontStyle{HeadingFont: "Georgia", BodyFont: "Georgia", HeadingSize: types.HeadingLarge},
			SectionStyle: types.SectionStyle{DividerType: types.DividerThickLine, BulletStyle: types.BulletCircle, SectionSpacing: types.SpacingSpacious},
			OverallTheme: "Classic Academic",
			Description:  "Traditional academic style with navy blue and serif fonts.",
		},
	},
}

// All returns every built-in preset in display order.
func All() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Default returns the default professional preset style.
func Default() types.ResumeTemplateStyle {
	return presets[0].Style
}

// ByID returns the preset with the given id, or false if none.
func ByID(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
