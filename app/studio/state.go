package studio

import (
	"pilates-studio/app/models"
)

// State is the joint Directory + Ledger state. It is owned by exactly one
// Service and only ever mutated under its lock.
type State struct {
	Users      []*models.User
	Bookings   []models.Booking
	NextUserID int
}

// Saver persists a snapshot of the state. Implementations must be safe to
// fail: the service logs Save errors and keeps going.
type Saver interface {
	Save(users []*models.User, bookings []models.Booking, nextUserID int) error
}

// SeedState builds the initial directory: one administrator and one staff
// account, ids 1 and 2, counter at 3. Exactly one administrator exists at
// seed time and no normal operation can demote or delete it.
func SeedState(adminUsername, adminHash, staffUsername, staffHash string) *State {
	return &State{
		Users: []*models.User{
			{
				ID:           1,
				Name:         "Admin",
				Surname:      "User",
				Alias:        "Admin",
				Role:         models.RoleAdministrator,
				Username:     adminUsername,
				PasswordHash: adminHash,
			},
			{
				ID:           2,
				Name:         "Monitor",
				Surname:      "User",
				Alias:        "Monitor",
				Role:         models.RoleStaff,
				Username:     staffUsername,
				PasswordHash: staffHash,
			},
		},
		Bookings:   []models.Booking{},
		NextUserID: 3,
	}
}
