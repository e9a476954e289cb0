package handler

import (
	"github.com/HairulDev/tsn-asia-next/internal/core/controller"
	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// The portal mirrors the backend's envelope on its own surface: every
// response carries success and message, payloads ride in data.

type errorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type sessionUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CompanyID   string `json:"company_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token,omitempty"`
	User    *sessionUser `json:"user,omitempty"`
}

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Navigation ---

type navigationResponse struct {
	Success bool             `json:"success"`
	Data    []domain.NavItem `json:"data"`
}

// --- Screens ---

type searchRequest struct {
	Query string `json:"query"`
}

type pageRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

type limitRequest struct {
	Limit int `json:"limit" validate:"required"`
}

// screenView is the full renderable state of one screen: current rows and
// meta, query state, the form draft when one is open, and pending notices.
type screenView[R any, D any] struct {
	List    controller.ListView[R]  `json:"list"`
	Form    *controller.FormView[D] `json:"form,omitempty"`
	Notices []domain.Notice         `json:"notices"`
}

type screenResponse[R any, D any] struct {
	Success bool             `json:"success"`
	Data    screenView[R, D] `json:"data"`
}

type detailResponse[R any] struct {
	Success bool `json:"success"`
	Data    R    `json:"data"`
}

type validateResponse struct {
	Success bool                `json:"success"`
	Valid   bool                `json:"valid"`
	Errors  []domain.FieldError `json:"errors"`
}

type companyOptionsResponse struct {
	Success bool             `json:"success"`
	Data    []domain.Company `json:"data"`
	Meta    domain.PageMeta  `json:"meta"`
}
