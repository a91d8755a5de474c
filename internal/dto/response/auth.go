package response

// SignupResponse echoes the accepted payload back to the caller.
type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"Token"`
}
