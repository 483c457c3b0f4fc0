package studio

import (
	"golang.org/x/crypto/bcrypt"

	"pilates-studio/app/models"
)

// Register creates a member account. It always succeeds and always creates a
// fresh account with the next id: member login is registration, there is no
// member authentication and aliases are never reused for lookup.
func (s *Service) Register(name, surname, alias string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{
		ID:      s.state.NextUserID,
		Name:    name,
		Surname: surname,
		Alias:   alias,
		Role:    models.RoleMember,
	}
	s.state.Users = append(s.state.Users, user)
	s.state.NextUserID++
	s.persist()

	out := *user
	return &out
}

// Authenticate checks credentials for staff and administrator accounts. An
// account matches on role and username together; anything else is
// ErrInvalidCredentials, including member roles, which have no credentials.
func (s *Service) Authenticate(role models.Role, username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role != models.RoleStaff && role != models.RoleAdministrator {
		return nil, models.ErrInvalidCredentials
	}

	for _, u := range s.state.Users {
		if u.Role != role || u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, models.ErrInvalidCredentials
		}
		out := *u
		return &out, nil
	}
	return nil, models.ErrInvalidCredentials
}

// CreateStaff creates a staff account with the alias set to the username.
// Usernames are unique across all accounts regardless of role.
func (s *Service) CreateStaff(username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.state.Users {
		if u.Username != "" && u.Username == username {
			return nil, models.ErrDuplicateUsername
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           s.state.NextUserID,
		Name:         "New",
		Surname:      "Monitor",
		Alias:        username,
		Role:         models.RoleStaff,
		Username:     username,
		PasswordHash: string(hash),
	}
	s.state.Users = append(s.state.Users, user)
	s.state.NextUserID++
	s.persist()

	out := *user
	return &out, nil
}

// SetRole reassigns an account's role. Administrator accounts are never
// reassigned through this operation.
func (s *Service) SetRole(userID int, role models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !role.Valid() {
		return models.ErrForbiddenForRole
	}

	user := s.lookupLocked(userID)
	if user == nil {
		return models.ErrNotFound
	}
	if user.Role == models.RoleAdministrator {
		return models.ErrForbiddenForRole
	}

	user.Role = role
	s.persist()
	return nil
}

// Remove deletes an account and every booking referencing it. Administrator
// accounts are never removable.
func (s *Service) Remove(userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.lookupLocked(userID)
	if user == nil {
		return models.ErrNotFound
	}
	if user.Role == models.RoleAdministrator {
		return models.ErrForbiddenForRole
	}

	users := s.state.Users[:0]
	for _, u := range s.state.Users {
		if u.ID != userID {
			users = append(users, u)
		}
	}
	s.state.Users = users

	bookings := s.state.Bookings[:0]
	for _, b := range s.state.Bookings {
		if b.UserID != userID {
			bookings = append(bookings, b)
		}
	}
	s.state.Bookings = bookings

	s.persist()
	return nil
}

// Lookup returns the account with the given id.
func (s *Service) Lookup(userID int) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.lookupLocked(userID)
	if user == nil {
		return nil, false
	}
	out := *user
	return &out, true
}

// Users returns the whole directory in creation order.
func (s *Service) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.state.Users))
	for _, u := range s.state.Users {
		out = append(out, *u)
	}
	return out
}

func (s *Service) lookupLocked(userID int) *models.User {
	for _, u := range s.state.Users {
		if u.ID == userID {
			return u
		}
	}
	return nil
}
