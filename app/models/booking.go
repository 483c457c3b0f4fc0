package models

// Booking pairs one session with one account. A (session, user) pair exists
// at most once; bookings are created whole and removed whole, never updated.
type Booking struct {
	SessionID int `json:"sessionId"`
	UserID    int `json:"userId"`
}
