package models

import "time"

// Session is one recurring weekly class occurrence. Sessions are generated
// once at startup and never edited or deleted afterwards.
type Session struct {
	ID         int       `json:"id"`
	Day        DayOfWeek `json:"day"`
	Time       string    `json:"time"`
	Title      string    `json:"title"`
	Instructor string    `json:"instructor"`
	Capacity   int       `json:"capacity"`
	StartsAt   time.Time `json:"starts_at"`
}
