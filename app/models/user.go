package models

// User represents a studio account. Member accounts carry no credentials;
// staff and administrator accounts authenticate with username + password hash.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Alias        string `json:"alias"`
	Role         Role   `json:"role"`
	Username     string `json:"username,omitempty"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// Public returns a copy of the user safe to send to clients.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// FullName returns the display name used in rosters.
func (u User) FullName() string {
	return u.Name + " " + u.Surname
}
