package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the state table if it does not exist yet.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	query := `
		CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create app_state table: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
