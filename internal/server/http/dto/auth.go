package dto

// SignupRequest describes account creation payload.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes credentials payload. The identifier may be a username or an email.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// SignupResponse is returned after successful account creation.
type SignupResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// LoginResponse is returned after successful authentication.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
