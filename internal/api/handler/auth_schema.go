package handler

// loginRequest is the credential payload for POST /api/auth/login.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginResponse mirrors the legacy back-office contract: flat envelope with
// a success flag, consumed by the static login page.
type loginResponse struct {
	Success  bool   `json:"success"`
	Role     string `json:"role,omitempty"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message"`
}

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type currentUserResponse struct {
	Username      string `json:"username,omitempty"`
	Role          string `json:"role,omitempty"`
	Authenticated bool   `json:"authenticated"`
	Message       string `json:"message,omitempty"`
}
