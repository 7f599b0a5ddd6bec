// Package projection turns resume data, a section order and a layout
// into the ordered section blocks every renderer consumes. Computed
// once and shared, so the three renderers cannot diverge on
// section-skipping or column placement.
package projection

import "github.com/jonathan/resume-studio/internal/types"

// Section is one renderable section block.
type Section struct {
	Key   types.SectionKey
	Title string
}

// ProjectedSections is the renderer-ready projection. For two-column
// layouts the non-empty sections are partitioned into Main and
// Sidebar; for single-column layouts everything is in Main. Document
// order lists main content first regardless of which physical side
// the sidebar lands on.
type ProjectedSections struct {
	Main    []Section
	Sidebar []Section
	// TwoColumn is true for two-column and both sidebar layouts.
	TwoColumn bool
	// SidebarLeft places the sidebar partition physically first.
	SidebarLeft bool
}

// sidebarSections is the fixed set routed to the sidebar under
// two-column layouts. All other sections belong to the main column.
var sidebarSections = map[types.SectionKey]bool{
	types.SectionSkills:         true,
	types.SectionCertifications: true,
	types.SectionEducation:      true,
}

// Project filters empty sections and routes the remainder per the
// layout, preserving the relative order of `order` within each
// partition.
func Project(data *types.ResumeData, order types.SectionOrder, layout types.Layout) ProjectedSections {
	out := ProjectedSections{
		TwoColumn:   layout.TwoColumn(),
		SidebarLeft: layout == types.LayoutSidebarLeft,
	}

	for _, key := range order {
		if data.SectionEmpty(key) {
			continue
		}
		section := Section{Key: key, Title: key.Title()}
		if out.TwoColumn && sidebarSections[key] {
			out.Sidebar = append(out.Sidebar, section)
		} else {
			out.Main = append(out.Main, section)
		}
	}

	return out
}

// AllSections returns the projection in document order: main content
// first, then the sidebar partition. Export formats that have no
// notion of columns emit sections in this order.
func (p ProjectedSections) AllSections() []Section {
	if !p.TwoColumn {
		return p.Main
	}
	all := make([]Section, 0, len(p.Main)+len(p.Sidebar))
	all = append(all, p.Main...)
	all = append(all, p.Sidebar...)
	return all
}
