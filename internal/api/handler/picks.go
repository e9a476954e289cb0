package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// NewDraftValidator builds the validator instance shared by every form
// controller. Drafts carry their rules as struct tags.
func NewDraftValidator() *validator.Validate {
	return validator.New()
}

// Screen accessors handed to the generic ScreenHandler instances.

func PickCompanies(s *ScreenSet) *screenPair[domain.Company, domain.CompanyDraft] {
	return s.companies
}

func PickUsers(s *ScreenSet) *screenPair[domain.User, domain.UserDraft] {
	return s.users
}

func PickAnnouncements(s *ScreenSet) *screenPair[domain.Announcement, domain.AnnouncementDraft] {
	return s.announcements
}

func PickFeed(s *ScreenSet) *screenPair[domain.Announcement, domain.AnnouncementDraft] {
	return s.feed
}
