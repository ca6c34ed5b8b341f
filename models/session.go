package models

// Session is the logged-in state of the current process. It is rehydrated
// at startup from the persisted session token and cleared on logout.
type Session struct {
	// CurrentUser is the identity of the logged-in user, empty when no one
	// is logged in.
	CurrentUser string `json:"currentUser"`

	// IsAdmin reports whether the logged-in user holds administrator
	// privileges.
	IsAdmin bool `json:"isAdmin"`
}

// LoggedIn reports whether the session carries an authenticated identity.
func (s Session) LoggedIn() bool {
	return s.CurrentUser != ""
}
