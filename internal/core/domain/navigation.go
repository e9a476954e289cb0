package domain

// Screen identifies one management or viewing surface of the portal.
type Screen string

const (
	ScreenCompanies        Screen = "companies"
	ScreenUsers            Screen = "users"
	ScreenAnnouncements    Screen = "announcements"
	ScreenAnnouncementFeed Screen = "announcement-feed"
)

// NavItem is a single navigation entry offered to an authenticated user.
type NavItem struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Screen Screen `json:"screen"`
}
