package models

import "strings"

// User is the minimal signed-in user record, persisted across restarts.
type User struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// UserFromEmail derives the display record created at login: the name is the
// local part of the email address.
func UserFromEmail(email string) User {
	name := email
	if i := strings.Index(email, "@"); i >= 0 {
		name = email[:i]
	}
	return User{Email: email, Name: name}
}
