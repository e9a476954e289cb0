package controller

import "github.com/HairulDev/tsn-asia-next/internal/core/domain"

// Draft mappers used by OpenEdit. They copy only the editable subset of a
// record; server-only fields stay at their zero value.

func CompanyDraftFromRecord(c domain.Company) domain.CompanyDraft {
	return domain.CompanyDraft{
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Website: c.Website,
	}
}

// UserDraftFromRecord never populates the password: the server does not return
// it and the edit form always starts with an empty one.
func UserDraftFromRecord(u domain.User) domain.UserDraft {
	return domain.UserDraft{
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		IsActive:  u.IsActive,
	}
}

func AnnouncementDraftFromRecord(a domain.Announcement) domain.AnnouncementDraft {
	return domain.AnnouncementDraft{
		Title:   a.Title,
		Content: a.Content,
	}
}

// UserPasswordRule is the mode-dependent half of user validation: a password
// is mandatory when creating, optional when editing (an empty one means
// "leave unchanged"; non-empty values still need min length via the tag).
func UserPasswordRule(mode FormMode, d domain.UserDraft) []domain.FieldError {
	if mode == ModeCreate && d.Password == "" {
		return []domain.FieldError{{Field: "password", Message: "password is required"}}
	}
	return nil
}
