// Heftly | 2026
// dto.go

package auth

// LoginResponse mirrors the body the portal's login form consumes.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// loginErrorResponse is the fixed body for failed credentials. The
// same payload answers unknown usernames and wrong passwords.
type loginErrorResponse struct {
	Error string `json:"error"`
}
