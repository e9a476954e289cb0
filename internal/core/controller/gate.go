package controller

import "github.com/HairulDev/tsn-asia-next/internal/core/domain"

// screensByRole is the single source of truth for which screens a role may
// reach. Roles absent from the map (or empty) see nothing — fail-closed.
var screensByRole = map[string][]domain.Screen{
	domain.RoleAdmin:    {domain.ScreenCompanies, domain.ScreenUsers},
	domain.RoleHRD:      {domain.ScreenAnnouncements},
	domain.RoleEmployee: {domain.ScreenAnnouncementFeed},
}

var navItems = map[domain.Screen]domain.NavItem{
	domain.ScreenCompanies:        {Name: "Perusahaan", Path: "/companymanagement", Screen: domain.ScreenCompanies},
	domain.ScreenUsers:            {Name: "Pengguna", Path: "/usermanagement", Screen: domain.ScreenUsers},
	domain.ScreenAnnouncements:    {Name: "Pengumuman", Path: "/announcementmanagement", Screen: domain.ScreenAnnouncements},
	domain.ScreenAnnouncementFeed: {Name: "Pengumuman", Path: "/announcement", Screen: domain.ScreenAnnouncementFeed},
}

// ScreensFor returns the screens reachable by role.
func ScreensFor(role string) []domain.Screen {
	return screensByRole[role]
}

// CanAccess reports whether role may use screen.
func CanAccess(role string, screen domain.Screen) bool {
	for _, s := range screensByRole[role] {
		if s == screen {
			return true
		}
	}
	return false
}

// NavigationFor returns the navigation entries shown to role, in menu order.
// An unrecognised or absent role yields an empty menu.
func NavigationFor(role string) []domain.NavItem {
	screens := screensByRole[role]
	items := make([]domain.NavItem, 0, len(screens))
	for _, s := range screens {
		items = append(items, navItems[s])
	}
	return items
}
