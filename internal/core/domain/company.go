package domain

// Company is a tenant record as served by the backend.
type Company struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Website   string  `json:"website"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedBy *string `json:"updated_by"`
	UpdatedAt *string `json:"updated_at"`
}

// CompanyDraft is the editable subset of a Company.
type CompanyDraft struct {
	Name    string `json:"name"     validate:"required"`
	Address string `json:"address"  validate:"required"`
	Phone   string `json:"phone"    validate:"required,min=8"`
	Website string `json:"website"  validate:"required,url"`
}
