package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"pilates-studio/app/models"
)

// State keys in the app_state table. Each key holds one JSON document; the
// three together are the whole durable state of the studio.
const (
	keyUsers      = "users"
	keyBookings   = "bookings"
	keyNextUserID = "next_user_id"
)

// Store persists the studio state as three key-value rows in Postgres.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save writes the full state. It is called after every successful mutation;
// callers treat failures as log-and-continue, so Save never needs to be
// transactionally coupled to the in-memory update.
func (s *Store) Save(users []*models.User, bookings []models.Booking, nextUserID int) error {
	if err := s.setJSON(keyUsers, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	if err := s.setJSON(keyBookings, bookings); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	if err := s.setJSON(keyNextUserID, nextUserID); err != nil {
		return fmt.Errorf("save next user id: %w", err)
	}
	return nil
}

// Load reads the full state. found is false when no state has ever been
// saved, in which case the caller seeds fresh state.
func (s *Store) Load() (users []*models.User, bookings []models.Booking, nextUserID int, found bool, err error) {
	found, err = s.getJSON(keyUsers, &users)
	if err != nil || !found {
		return nil, nil, 0, false, err
	}
	if _, err = s.getJSON(keyBookings, &bookings); err != nil {
		return nil, nil, 0, false, err
	}
	if _, err = s.getJSON(keyNextUserID, &nextUserID); err != nil {
		return nil, nil, 0, false, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return users, bookings, nextUserID, true, nil
}

func (s *Store) setJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	query := `INSERT INTO app_state (key, value, updated_at)
			  VALUES ($1, $2, NOW())
			  ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	_, err = s.db.Exec(query, key, data)
	return err
}

func (s *Store) getJSON(key string, out interface{}) (bool, error) {
	var data []byte
	query := `SELECT value FROM app_state WHERE key = $1`

	err := s.db.QueryRow(query, key).Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, out)
}
