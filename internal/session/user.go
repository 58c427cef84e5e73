package session

import "strings"

// User is the signed-in profile. PasswordHash is stored with the
// snapshot but never returned to clients and never checked at login;
// sign-in is intentionally a stub.
type User struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// Public strips fields that must not leave the process.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// NameFromEmail derives the display name from the part of the address
// before the "@".
func NameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

// NormalizeEmail lowercases and trims the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
