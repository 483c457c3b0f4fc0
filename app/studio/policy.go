package studio

import (
	"log"
	"time"

	"pilates-studio/app/models"
)

// BookingWindow is how far ahead of a session's start a member may reserve.
// Booking opens exactly this long before the start time.
const BookingWindow = 48 * time.Hour

// Permissions is the per-role rule table. Every mutating request from the
// outer layer is checked against this table in exactly one place; rule
// changes happen here and nowhere else.
type Permissions struct {
	ManageUsers  bool // directory administration (staff creation, roles, removal)
	ViewRoster   bool // see who is booked on a session
	BookOnBehalf bool // create reservations for other accounts
	CancelOthers bool // remove other accounts' reservations
	ExemptWindow bool // not bound by the 48h booking window
	ExemptPast   bool // may book and cancel sessions already started
}

var rolePermissions = map[models.Role]Permissions{
	models.RoleMember: {},
	models.RoleStaff: {
		ViewRoster:   true,
		ExemptWindow: true,
	},
	models.RoleAdministrator: {
		ManageUsers:  true,
		ViewRoster:   true,
		BookOnBehalf: true,
		CancelOthers: true,
		ExemptWindow: true,
		ExemptPast:   true,
	},
}

// PermissionsFor returns the rule set for a role.
func PermissionsFor(role models.Role) Permissions {
	return rolePermissions[role]
}

// timeRefusal applies the clock-dependent rules for a booking attempt.
// Administrators are exempt from both; staff only from the window.
func timeRefusal(role models.Role, session models.Session, now time.Time) error {
	perms := rolePermissions[role]
	if !perms.ExemptPast && session.StartsAt.Before(now) {
		return models.ErrSessionInPast
	}
	if !perms.ExemptWindow && now.Before(session.StartsAt.Add(-BookingWindow)) {
		return models.ErrBookingWindowNotOpen
	}
	return nil
}

// BookSession is the policy-gated booking entry point used by the outer
// layer: entity existence, role exemptions, time rules and ledger rules are
// all checked here before the reservation is appended.
func (s *Service) BookSession(acting *models.User, sessionID, targetID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	perms := rolePermissions[acting.Role]
	if targetID != acting.ID && !perms.BookOnBehalf {
		return models.ErrForbiddenForRole
	}

	session, ok := s.sessionLocked(sessionID)
	if !ok {
		return models.ErrNotFound
	}
	if err := timeRefusal(acting.Role, session, s.now()); err != nil {
		return err
	}
	if err := s.bookRefusalLocked(sessionID, targetID, acting.Role); err != nil {
		log.Printf("Booking refused (session=%d user=%d role=%s): %v", sessionID, targetID, acting.Role, err)
		return err
	}

	s.state.Bookings = append(s.state.Bookings, models.Booking{SessionID: sessionID, UserID: targetID})
	s.persist()
	return nil
}

// CancelSession is the policy-gated cancellation entry point. Members may
// only release their own spot and not once the session has started;
// administrators may remove anyone's reservation at any time.
func (s *Service) CancelSession(acting *models.User, sessionID, targetID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	perms := rolePermissions[acting.Role]
	if targetID != acting.ID && !perms.CancelOthers {
		return models.ErrForbiddenForRole
	}

	session, ok := s.sessionLocked(sessionID)
	if !ok {
		return models.ErrNotFound
	}
	if acting.Role == models.RoleMember && session.StartsAt.Before(s.now()) {
		return models.ErrSessionInPast
	}

	bookings := s.state.Bookings[:0]
	removed := false
	for _, b := range s.state.Bookings {
		if b.SessionID == sessionID && b.UserID == targetID {
			removed = true
			continue
		}
		bookings = append(bookings, b)
	}
	s.state.Bookings = bookings

	if removed {
		s.persist()
	}
	return nil
}
