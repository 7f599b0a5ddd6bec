package types

import "time"

// StoredResume is one durable named snapshot of resume content,
// template style, section order and metadata. The persistence layer
// owns the collection of these records plus the active-id pointer.
type StoredResume struct {
	ID               string              `json:"id" validate:"required"`
	Name             string              `json:"name" validate:"required"`
	ResumeData       ResumeData          `json:"resumeData"`
	TemplateStyle    ResumeTemplateStyle `json:"templateStyle"`
	SectionOrder     SectionOrder        `json:"sectionOrder"`
	UploadedFileName *string             `json:"uploadedFileName"`
	UpdatedAt        int64               `json:"updatedAt"`
}

// Touch refreshes the last-updated timestamp to now (unix millis,
// matching the persisted wire format).
func (r *StoredResume) Touch() {
	r.UpdatedAt = time.Now().UnixMilli()
}
