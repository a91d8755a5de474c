package request

type SignupRequest struct {
	Username string `json:"username" validate:"required,username,max=150"`
	Email    string `json:"email" validate:"required,email"`
}

type TokenRequest struct {
	Username         string `json:"username" validate:"required,max=150"`
	ConfirmationCode string `json:"confirmation_code" validate:"required,max=128"`
}
