package studio

import (
	"pilates-studio/app/models"
)

// SessionView is the read projection of one session for a given viewer.
type SessionView struct {
	models.Session
	BookedCount   int  `json:"booked_count"`
	IsFull        bool `json:"is_full"`
	IsPast        bool `json:"is_past"`
	IsBookableNow bool `json:"is_bookable_now"`
	BookedByMe    bool `json:"booked_by_me"`
}

// SessionDetail is the roster projection a staff member or administrator
// sees for one session.
type SessionDetail struct {
	Session     models.Session `json:"session"`
	BookedCount int            `json:"booked_count"`
	Roster      []models.User  `json:"roster"`
	IsFull      bool           `json:"is_full"`
	IsPast      bool           `json:"is_past"`
}

// SessionsFor projects the whole schedule for one viewer. IsBookableNow
// reflects every rule that would apply to the viewer booking their own spot
// right now, so the outer layer renders state without re-deriving rules.
func (s *Service) SessionsFor(viewer *models.User) []SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := make([]SessionView, 0, len(s.sessions))
	for _, sess := range s.sessions {
		count := s.countForSessionLocked(sess.ID)

		booked := false
		for _, b := range s.state.Bookings {
			if b.SessionID == sess.ID && b.UserID == viewer.ID {
				booked = true
				break
			}
		}

		bookable := !booked &&
			timeRefusal(viewer.Role, sess, now) == nil &&
			s.bookRefusalLocked(sess.ID, viewer.ID, viewer.Role) == nil

		out = append(out, SessionView{
			Session:       sess,
			BookedCount:   count,
			IsFull:        count >= sess.Capacity,
			IsPast:        sess.StartsAt.Before(now),
			IsBookableNow: bookable,
			BookedByMe:    booked,
		})
	}
	return out
}

// Detail returns the roster for one session, resolved through the
// directory in reservation insertion order. Accounts removed since their
// booking cannot appear: removal cascades, so bookings never dangle.
func (s *Service) Detail(sessionID int) (SessionDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessionLocked(sessionID)
	if !ok {
		return SessionDetail{}, models.ErrNotFound
	}

	var roster []models.User
	for _, b := range s.state.Bookings {
		if b.SessionID != sessionID {
			continue
		}
		if u := s.lookupLocked(b.UserID); u != nil {
			roster = append(roster, u.Public())
		}
	}

	count := len(roster)
	return SessionDetail{
		Session:     session,
		BookedCount: count,
		Roster:      roster,
		IsFull:      count >= session.Capacity,
		IsPast:      session.StartsAt.Before(s.now()),
	}, nil
}

// Candidates lists the accounts not yet reserved on a session, used when an
// administrator adds a reservation on someone's behalf. Administrator
// accounts are not candidates.
func (s *Service) Candidates(sessionID int) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessionLocked(sessionID); !ok {
		return nil, models.ErrNotFound
	}

	onSession := map[int]bool{}
	for _, b := range s.state.Bookings {
		if b.SessionID == sessionID {
			onSession[b.UserID] = true
		}
	}

	var out []models.User
	for _, u := range s.state.Users {
		if u.Role == models.RoleAdministrator || onSession[u.ID] {
			continue
		}
		out = append(out, u.Public())
	}
	return out, nil
}

// ActiveReservationCount returns how many reservations an account currently
// holds. This is the number the weekly quota compares against.
func (s *Service) ActiveReservationCount(userID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countForUserLocked(userID)
}
