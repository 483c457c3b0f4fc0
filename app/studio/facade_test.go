package studio

import (
	"errors"
	"testing"

	"pilates-studio/app/models"
)

func findView(t *testing.T, views []SessionView, sessionID int) SessionView {
	t.Helper()
	for _, v := range views {
		if v.ID == sessionID {
			return v
		}
	}
	t.Fatalf("session %d missing from views", sessionID)
	return SessionView{}
}

func TestSessionsForMember(t *testing.T) {
	svc := newTestService(t, nil)
	member := svc.Register("Ana", "Lopez", "ana")

	views := svc.SessionsFor(member)
	if len(views) != 4 {
		t.Fatalf("views = %d, want 4", len(views))
	}

	open := findView(t, views, 1)
	if !open.IsBookableNow || open.IsPast || open.IsFull || open.BookedByMe {
		t.Errorf("session 1 view = %+v, want bookable", open)
	}

	tooEarly := findView(t, views, 2)
	if tooEarly.IsBookableNow {
		t.Error("session 2 outside the 48h window must not be bookable for a member")
	}

	past := findView(t, views, 3)
	if !past.IsPast || past.IsBookableNow {
		t.Errorf("session 3 view = %+v, want past and not bookable", past)
	}
}

func TestSessionsForReflectsOwnBooking(t *testing.T) {
	svc := newTestService(t, nil)
	member := svc.Register("Ana", "Lopez", "ana")

	if err := svc.BookSession(member, 1, member.ID); err != nil {
		t.Fatalf("book: %v", err)
	}

	view := findView(t, svc.SessionsFor(member), 1)
	if !view.BookedByMe || view.IsBookableNow {
		t.Errorf("view after booking = %+v, want booked and not bookable", view)
	}
	if view.BookedCount != 1 {
		t.Errorf("booked count = %d, want 1", view.BookedCount)
	}
}

func TestSessionsForQuotaExhaustedMember(t *testing.T) {
	svc := newTestService(t, nil)
	member := svc.Register("Ana", "Lopez", "ana")

	if err := svc.BookSession(member, 1, member.ID); err != nil {
		t.Fatalf("book 1: %v", err)
	}
	if err := svc.BookSession(member, 4, member.ID); err != nil {
		t.Fatalf("book 4: %v", err)
	}

	// Quota spent: nothing else is bookable even where other rules pass.
	for _, v := range svc.SessionsFor(member) {
		if v.IsBookableNow {
			t.Errorf("session %d bookable with quota exhausted", v.ID)
		}
	}
}

func TestSessionsForStaffIgnoresWindow(t *testing.T) {
	svc := newTestService(t, nil)
	coach := staff(t, svc)

	view := findView(t, svc.SessionsFor(coach), 2)
	if !view.IsBookableNow {
		t.Error("session 2 must be bookable for staff despite the window")
	}
}

func TestDetailRosterOrder(t *testing.T) {
	svc := newTestService(t, nil)

	a := svc.Register("Ana", "Lopez", "ana")
	b := svc.Register("Eva", "Marco", "eva")
	for _, m := range []*models.User{a, b} {
		if err := svc.Book(1, m.ID, models.RoleMember); err != nil {
			t.Fatalf("book: %v", err)
		}
	}

	detail, err := svc.Detail(1)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.BookedCount != 2 || detail.IsFull {
		t.Fatalf("detail = %+v, want 2 booked and not full", detail)
	}
	if detail.Roster[0].ID != a.ID || detail.Roster[1].ID != b.ID {
		t.Fatal("roster not in reservation order")
	}
	for _, u := range detail.Roster {
		if u.PasswordHash != "" {
			t.Fatal("roster leaks password hashes")
		}
	}

	if _, err := svc.Detail(42); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("unknown session detail: got %v, want ErrNotFound", err)
	}
}

func TestCandidatesExcludeBookedAndAdministrators(t *testing.T) {
	svc := newTestService(t, nil)

	a := svc.Register("Ana", "Lopez", "ana")
	b := svc.Register("Eva", "Marco", "eva")
	if err := svc.Book(1, a.ID, models.RoleMember); err != nil {
		t.Fatalf("book: %v", err)
	}

	candidates, err := svc.Candidates(1)
	if err != nil {
		t.Fatalf("candidates: %v", err)
	}

	for _, u := range candidates {
		if u.ID == a.ID {
			t.Error("booked account listed as candidate")
		}
		if u.Role == models.RoleAdministrator {
			t.Error("administrator listed as candidate")
		}
	}

	found := false
	for _, u := range candidates {
		if u.ID == b.ID {
			found = true
		}
	}
	if !found {
		t.Error("unbooked member missing from candidates")
	}
}

func TestActiveReservationCount(t *testing.T) {
	svc := newTestService(t, nil)
	member := svc.Register("Ana", "Lopez", "ana")

	if got := svc.ActiveReservationCount(member.ID); got != 0 {
		t.Fatalf("fresh count = %d, want 0", got)
	}
	if err := svc.Book(1, member.ID, models.RoleMember); err != nil {
		t.Fatalf("book: %v", err)
	}
	if err := svc.Book(2, member.ID, models.RoleStaff); err != nil {
		t.Fatalf("book: %v", err)
	}
	if got := svc.ActiveReservationCount(member.ID); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}
	svc.Cancel(1, member.ID)
	if got := svc.ActiveReservationCount(member.ID); got != 1 {
		t.Fatalf("count after cancel = %d, want 1", got)
	}
}
