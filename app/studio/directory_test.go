package studio

import (
	"errors"
	"fmt"
	"testing"

	"pilates-studio/app/models"
)

func TestRegisterAlwaysCreatesFreshAccount(t *testing.T) {
	svc := newTestService(t, nil)

	first := svc.Register("Ana", "Lopez", "ana")
	second := svc.Register("Ana", "Lopez", "ana")

	if first.ID == second.ID {
		t.Fatalf("both registrations got id %d", first.ID)
	}
	if first.ID != 3 || second.ID != 4 {
		t.Fatalf("ids = %d, %d, want 3, 4", first.ID, second.ID)
	}
	if first.Role != models.RoleMember || second.Role != models.RoleMember {
		t.Fatal("registered accounts must be members")
	}
	if len(svc.Users()) != 4 {
		t.Fatalf("directory size = %d, want 4", len(svc.Users()))
	}
}

func TestIDsNeverReused(t *testing.T) {
	svc := newTestService(t, nil)

	member := svc.Register("Ana", "Lopez", "ana") // id 3
	if err := svc.Remove(member.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	next := svc.Register("Eva", "Marco", "eva")
	if next.ID != 4 {
		t.Fatalf("id after removal = %d, want 4", next.ID)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t, nil)

	u, err := svc.Authenticate(models.RoleAdministrator, "admin", "adminpw")
	if err != nil {
		t.Fatalf("authenticate admin: %v", err)
	}
	if u.ID != 1 {
		t.Fatalf("admin id = %d, want 1", u.ID)
	}

	if _, err := svc.Authenticate(models.RoleAdministrator, "admin", "wrong"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	// Right credentials paired with the wrong role do not match.
	if _, err := svc.Authenticate(models.RoleStaff, "admin", "adminpw"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("role mismatch: got %v, want ErrInvalidCredentials", err)
	}
	// Members have no credentials to authenticate.
	if _, err := svc.Authenticate(models.RoleMember, "ana", ""); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("member role: got %v, want ErrInvalidCredentials", err)
	}
}

func TestCreateStaffDuplicateUsername(t *testing.T) {
	svc := newTestService(t, nil)

	u, err := svc.CreateStaff("coach1", "pw")
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	if u.Role != models.RoleStaff || u.Alias != "coach1" {
		t.Fatalf("staff = %+v, want staff role with alias coach1", u)
	}

	if _, err := svc.CreateStaff("coach1", "otherpw"); !errors.Is(err, models.ErrDuplicateUsername) {
		t.Fatalf("second create: got %v, want ErrDuplicateUsername", err)
	}

	count := 0
	for _, existing := range svc.Users() {
		if existing.Username == "coach1" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("coach1 accounts = %d, want exactly 1", count)
	}

	if _, err := svc.Authenticate(models.RoleStaff, "coach1", "pw"); err != nil {
		t.Fatalf("new staff cannot authenticate: %v", err)
	}
}

func TestSetRole(t *testing.T) {
	svc := newTestService(t, nil)
	member := svc.Register("Ana", "Lopez", "ana")

	if err := svc.SetRole(member.ID, models.RoleStaff); err != nil {
		t.Fatalf("promote member: %v", err)
	}
	if u, _ := svc.Lookup(member.ID); u.Role != models.RoleStaff {
		t.Fatalf("role = %s, want staff", u.Role)
	}

	if err := svc.SetRole(1, models.RoleMember); !errors.Is(err, models.ErrForbiddenForRole) {
		t.Fatalf("demote administrator: got %v, want ErrForbiddenForRole", err)
	}
	if err := svc.SetRole(999, models.RoleStaff); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("unknown account: got %v, want ErrNotFound", err)
	}
	if err := svc.SetRole(member.ID, models.Role("owner")); !errors.Is(err, models.ErrForbiddenForRole) {
		t.Fatalf("invalid role: got %v, want ErrForbiddenForRole", err)
	}
}

func TestRemoveCascadesBookings(t *testing.T) {
	svc := newTestService(t, nil)
	member := svc.Register("Ana", "Lopez", "ana")

	if err := svc.Book(1, member.ID, models.RoleMember); err != nil {
		t.Fatalf("book 1: %v", err)
	}
	if err := svc.Book(2, member.ID, models.RoleStaff); err != nil {
		t.Fatalf("book 2: %v", err)
	}

	if err := svc.Remove(member.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if _, ok := svc.Lookup(member.ID); ok {
		t.Fatal("removed account still in directory")
	}
	if got := len(svc.BookingsOf(member.ID)); got != 0 {
		t.Fatalf("bookings after removal = %d, want 0", got)
	}
	// Sessions themselves are untouched.
	if _, ok := svc.Session(1); !ok {
		t.Fatal("session disappeared with its reservations")
	}
}

func TestRemoveAdministratorRefused(t *testing.T) {
	svc := newTestService(t, nil)

	if err := svc.Remove(1); !errors.Is(err, models.ErrForbiddenForRole) {
		t.Fatalf("remove administrator: got %v, want ErrForbiddenForRole", err)
	}
	if _, ok := svc.Lookup(1); !ok {
		t.Fatal("administrator gone")
	}
}

func TestUsersReturnsCreationOrder(t *testing.T) {
	svc := newTestService(t, nil)
	for i := 0; i < 3; i++ {
		svc.Register("M", "Ember", fmt.Sprintf("m%d", i))
	}

	users := svc.Users()
	for i := 1; i < len(users); i++ {
		if users[i].ID <= users[i-1].ID {
			t.Fatalf("directory out of creation order at %d", i)
		}
	}
}
