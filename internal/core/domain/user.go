package domain

// Roles recognised by the portal backend.
const (
	RoleJobSeeker = "job_seeker"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// User models the authenticated actor as the backend reports it. Only the
// fields the client layer depends on are typed; endpoint payloads that need
// the full backend shape work with the raw envelope instead.
type User struct {
	ID             int64  `json:"id" validate:"required"`
	Role           string `json:"role" validate:"required,oneof=job_seeker employer admin"`
	FullName       string `json:"full_name,omitempty"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	Location       string `json:"location,omitempty"`
}

// IsEmployer reports whether the user may call employer aggregate endpoints.
func (u *User) IsEmployer() bool { return u != nil && u.Role == RoleEmployer }

// IsAdmin reports whether the user may call admin endpoints.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
