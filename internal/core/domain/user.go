package domain

// Recognised roles. Anything else is treated as no role at all (fail-closed).
const (
	RoleAdmin    = "admin"
	RoleHRD      = "hrd"
	RoleEmployee = "employee"
)

// User is an account record as served by the backend.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Role      string  `json:"role"`
	CompanyID string  `json:"company_id"`
	IsActive  bool    `json:"is_active"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedBy *string `json:"updated_by"`
	UpdatedAt *string `json:"updated_at"`
}

// UserDraft is the editable subset of a User. Admin is deliberately absent
// from the role set: it cannot be assigned through this form. Password rules
// differ by mode (required on create, optional on edit) and are enforced by
// the form controller on top of these tags.
type UserDraft struct {
	Name      string `json:"name"       validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"required,min=8"`
	Role      string `json:"role"       validate:"required,oneof=hrd employee"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
	IsActive  bool   `json:"is_active"`
	Password  string `json:"password"   validate:"omitempty,min=6"`
}
