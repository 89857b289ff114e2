package dto

// CreateUserRequest registers a console account.
type CreateUserRequest struct {
	Name      string  `json:"name"       binding:"required,min=2,max=150"`
	Email     string  `json:"email"      binding:"required,email,max=150"`
	Password  string  `json:"password"   binding:"required,min=8,max=72"`
	Role      string  `json:"role"       binding:"required,oneof=admin dean teacher"`
	FacultyID *string `json:"faculty_id" binding:"omitempty,uuid"`
}

// UpdateUserRequest updates an account. Nil fields are left untouched.
type UpdateUserRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=2,max=150"`
	Role      *string `json:"role"       binding:"omitempty,oneof=admin dean teacher"`
	FacultyID *string `json:"faculty_id" binding:"omitempty,uuid"`
	IsActive  *bool   `json:"is_active"`
}

// UserListRequest filters the account list.
type UserListRequest struct {
	PaginationRequest
	Role            string `form:"role"       binding:"omitempty,oneof=admin dean teacher"`
	FacultyID       string `form:"faculty_id" binding:"omitempty,uuid"`
	IncludeInactive bool   `form:"include_inactive"`
}
