package domain

// Announcement is an announcement record. The viewer's titles listing serves
// it without content; the detail endpoints fill every field.
type Announcement struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedBy *string `json:"updated_by"`
	UpdatedAt *string `json:"updated_at"`
}

// AnnouncementDraft is the editable subset of an Announcement.
type AnnouncementDraft struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}
