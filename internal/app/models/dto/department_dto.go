package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name         string `json:"name" binding:"required"`
	Hod          string `json:"hod" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	InstituteID  int64  `json:"institute" binding:"required,gt=0"`
}

// UpdateDepartmentRequest represents department update data; zero-valued
// fields keep their stored values.
type UpdateDepartmentRequest struct {
	Name         string `json:"name"`
	Hod          string `json:"hod"`
	ContactEmail string `json:"contactEmail"`
	InstituteID  int64  `json:"institute"`
}
