package domain

// Profile is the cached view of the authenticated user as last reported by
// the backend.
type Profile struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// AuthResult is what login and registration hand back: an opaque bearer
// token and the user it belongs to.
type AuthResult struct {
	Token     string
	TokenType string
	ExpiresIn int64
	User      Profile
}

// Registration carries a sign-up form.
type Registration struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}
