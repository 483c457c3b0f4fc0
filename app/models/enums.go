package models

// Role defines the access levels of studio accounts.
type Role string

const (
	RoleMember        Role = "member"
	RoleStaff         Role = "staff"
	RoleAdministrator Role = "administrator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleStaff, RoleAdministrator:
		return true
	}
	return false
}

// DayOfWeek defines the days of the week for the class schedule.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)
