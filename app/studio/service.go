package studio

import (
	"log"
	"sync"
	"time"

	"pilates-studio/app/models"
)

// Service owns the studio state and the generated schedule. Every mutation
// goes through its lock: booking checks must observe a consistent joint
// snapshot of directory and ledger, so a single writer guards both.
type Service struct {
	mu       sync.Mutex
	state    *State
	sessions []models.Session
	saver    Saver
	now      func() time.Time
}

// New wires a service around an already loaded (or freshly seeded) state and
// the one-shot session schedule. saver may be nil in tests.
func New(state *State, sessions []models.Session, saver Saver) *Service {
	return &Service{
		state:    state,
		sessions: sessions,
		saver:    saver,
		now:      time.Now,
	}
}

// SetClock overrides the service clock. Tests use this to pin "now".
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// persist pushes the current state to the saver. Failures are logged and
// never roll back the in-memory mutation. Callers hold the lock.
func (s *Service) persist() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.state.Users, s.state.Bookings, s.state.NextUserID); err != nil {
		log.Printf("Failed to persist studio state: %v", err)
	}
}

// Sessions returns the full schedule in start-time order.
func (s *Service) Sessions() []models.Session {
	out := make([]models.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Session looks up one session by id.
func (s *Service) Session(id int) (models.Session, bool) {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return models.Session{}, false
}

// Snapshot returns copies of the current directory and ledger plus the id
// counter. Used by the maintenance reporter and ops tooling.
func (s *Service) Snapshot() (users []models.User, bookings []models.Booking, nextUserID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users = make([]models.User, 0, len(s.state.Users))
	for _, u := range s.state.Users {
		users = append(users, *u)
	}
	bookings = make([]models.Booking, len(s.state.Bookings))
	copy(bookings, s.state.Bookings)
	return users, bookings, s.state.NextUserID
}
