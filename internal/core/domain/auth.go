package domain

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name,omitempty"`
}

// AuthResult is what login and register hand back: the bearer credential
// plus the identity it belongs to.
type AuthResult struct {
	Token string `json:"access_token"`
	User  *User  `json:"user"`
}
