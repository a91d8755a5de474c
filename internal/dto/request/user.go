package request

type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required,username,max=150"`
	Email     string  `json:"email" validate:"required,email"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio       string  `json:"bio,omitempty"`
	Role      string  `json:"role,omitempty" validate:"omitempty,oneof=admin moderator user"`
}

type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio       *string `json:"bio,omitempty"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=admin moderator user"`
}
