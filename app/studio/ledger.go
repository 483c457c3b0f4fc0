package studio

import (
	"log"

	"pilates-studio/app/models"
)

// WeeklyQuota is the maximum number of active reservations a member may
// hold. The count is the member's total active reservations; since the
// schedule only ever spans the coming seven days the total and the weekly
// count coincide.
const WeeklyQuota = 2

// Book appends a (session, user) reservation. acting is the role of the
// account performing the request, not necessarily the account being booked:
// staff and administrators book on behalf of others. An administrator
// bypasses every ledger rule, including capacity, and may overfill a
// session; the rest of the system must keep working when that happens.
func (s *Service) Book(sessionID, userID int, acting models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.bookRefusalLocked(sessionID, userID, acting); err != nil {
		log.Printf("Booking refused (session=%d user=%d role=%s): %v", sessionID, userID, acting, err)
		return err
	}

	s.state.Bookings = append(s.state.Bookings, models.Booking{SessionID: sessionID, UserID: userID})
	s.persist()
	return nil
}

// bookRefusalLocked applies the ledger rules in order: existence, then, for
// non-administrators, capacity, duplicate, and the member quota. The quota
// is checked against the account being booked, not the acting account.
func (s *Service) bookRefusalLocked(sessionID, userID int, acting models.Role) error {
	target := s.lookupLocked(userID)
	if target == nil {
		return models.ErrNotFound
	}
	session, ok := s.sessionLocked(sessionID)
	if !ok {
		return models.ErrNotFound
	}

	if acting == models.RoleAdministrator {
		return nil
	}

	if s.countForSessionLocked(sessionID) >= session.Capacity {
		return models.ErrCapacityExceeded
	}
	for _, b := range s.state.Bookings {
		if b.SessionID == sessionID && b.UserID == userID {
			return models.ErrDuplicateReservation
		}
	}
	if target.Role == models.RoleMember && s.countForUserLocked(userID) >= WeeklyQuota {
		return models.ErrWeeklyQuotaExceeded
	}
	return nil
}

// Cancel removes the reservation pair if present; absent pairs are a no-op.
// Role gating for cancellation lives in the policy layer, not here.
func (s *Service) Cancel(sessionID, userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	bookings := s.state.Bookings[:0]
	for _, b := range s.state.Bookings {
		if b.SessionID == sessionID && b.UserID == userID {
			removed = true
			continue
		}
		bookings = append(bookings, b)
	}
	s.state.Bookings = bookings

	if removed {
		s.persist()
	}
}

// BookingsFor returns the reservations on a session in insertion order.
func (s *Service) BookingsFor(sessionID int) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.state.Bookings {
		if b.SessionID == sessionID {
			out = append(out, b)
		}
	}
	return out
}

// BookingsOf returns an account's reservations in insertion order.
func (s *Service) BookingsOf(userID int) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.state.Bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Service) countForSessionLocked(sessionID int) int {
	n := 0
	for _, b := range s.state.Bookings {
		if b.SessionID == sessionID {
			n++
		}
	}
	return n
}

func (s *Service) countForUserLocked(userID int) int {
	n := 0
	for _, b := range s.state.Bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n
}

func (s *Service) sessionLocked(sessionID int) (models.Session, bool) {
	for _, sess := range s.sessions {
		if sess.ID == sessionID {
			return sess, true
		}
	}
	return models.Session{}, false
}
