package domain

// Durable storage keys shared by the gateway and the session service. The
// gateway reads TokenKey on every request and deletes both keys when the
// backend rejects the credential; the session service is the only other
// writer.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Session is an immutable snapshot of the authentication state, as handed
// to session subscribers. Token and User are set and cleared together; a
// non-nil User with an empty Token is never observable outside the
// rehydration window.
type Session struct {
	User    *User
	Token   string
	Loading bool
}

// Authenticated reports whether the snapshot represents a live session.
func (s Session) Authenticated() bool {
	return s.User != nil && s.Token != ""
}
