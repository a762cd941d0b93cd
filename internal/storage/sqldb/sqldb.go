// Package sqldb implements event and attendee persistence over database/sql.
// The driver is chosen by config: sqlite3 (default, embedded file) or postgres.
package sqldb

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"meetPlanner/internal/config"
	"meetPlanner/internal/models"
	"meetPlanner/internal/storage"
)

type Storage struct {
	DB *sqlx.DB
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	date TEXT,
	location TEXT,
	created_at TIMESTAMP
);
CREATE TABLE IF NOT EXISTS attendees (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	email TEXT,
	phone TEXT,
	rsvp_status TEXT DEFAULT 'Attending',
	checked_in INTEGER DEFAULT 0,
	created_at TIMESTAMP,
	FOREIGN KEY (event_id) REFERENCES events(id)
);`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS events (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	date TEXT,
	location TEXT,
	created_at TIMESTAMPTZ
);
CREATE TABLE IF NOT EXISTS attendees (
	id SERIAL PRIMARY KEY,
	event_id INTEGER NOT NULL REFERENCES events(id),
	name TEXT NOT NULL,
	email TEXT,
	phone TEXT,
	rsvp_status TEXT DEFAULT 'Attending',
	checked_in BOOLEAN DEFAULT FALSE,
	created_at TIMESTAMPTZ
);`

func InitDB(dbCfg *config.Storage) (*Storage, error) {
	var dsn string

	switch dbCfg.Driver {
	case "postgres":
		dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dbCfg.Host,
			dbCfg.Port,
			dbCfg.User,
			dbCfg.Password,
			dbCfg.DBName,
			dbCfg.SSLMode,
		)
	case "sqlite3":
		dsn = dbCfg.Path
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", dbCfg.Driver)
	}

	db, err := sqlx.Connect(dbCfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// CreateSchema creates both tables if they do not exist yet. Safe to call
// more than once.
func (s *Storage) CreateSchema() error {
	schema := schemaSQLite
	if s.DB.DriverName() == "postgres" {
		schema = schemaPostgres
	}

	if _, err := s.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *Storage) CreateEvent(title, description, date, location string) (int, error) {
	query := `
		INSERT INTO events (title, description, date, location, created_at)
		VALUES (?, ?, ?, ?, ?)`

	id, err := s.insertReturningID(query, title, description, date, location, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	// date is free text, so DESC here is lexicographic.
	query := `
		SELECT id, title, description, date, location, created_at
		FROM events
		ORDER BY date DESC`

	var events []models.Event
	if err := s.DB.Select(&events, query); err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

func (s *Storage) GetEvent(id int) (*models.Event, error) {
	query := s.DB.Rebind(`
		SELECT id, title, description, date, location, created_at
		FROM events
		WHERE id = ?`)

	var event models.Event
	if err := s.DB.Get(&event, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

// GetEventWithAttendees returns the event and its attendees ordered by
// creation time descending. The id tiebreak keeps the order stable when
// timestamps collide; CSV export relies on it matching the detail view.
func (s *Storage) GetEventWithAttendees(eventID int) (*models.Event, []models.Attendee, error) {
	event, err := s.GetEvent(eventID)
	if err != nil {
		return nil, nil, err
	}

	query := s.DB.Rebind(`
		SELECT id, event_id, name, email, phone, rsvp_status, checked_in, created_at
		FROM attendees
		WHERE event_id = ?
		ORDER BY created_at DESC, id DESC`)

	var attendees []models.Attendee
	if err := s.DB.Select(&attendees, query, eventID); err != nil {
		return nil, nil, fmt.Errorf("failed to get attendees: %w", err)
	}

	return event, attendees, nil
}

// CreateAttendee verifies the event exists and inserts the RSVP in one
// transaction. Duplicate RSVPs are allowed on purpose.
func (s *Storage) CreateAttendee(eventID int, name, email, phone, status string) (int, error) {
	tx, err := s.DB.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	checkQuery := tx.Rebind(`SELECT EXISTS(SELECT 1 FROM events WHERE id = ?)`)

	if err = tx.QueryRow(checkQuery, eventID).Scan(&exists); err != nil {
		return 0, fmt.Errorf("failed to check event: %w", err)
	}

	if !exists {
		return 0, storage.ErrEventNotFound
	}

	insertQuery := `
		INSERT INTO attendees (event_id, name, email, phone, rsvp_status, checked_in, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := insertReturningIDTx(tx, s.DB.DriverName(), insertQuery,
		eventID, name, email, phone, status, false, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to create attendee: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return id, nil
}

// ToggleCheckIn flips the checked-in flag and reports the owning event id
// and the new flag value.
func (s *Storage) ToggleCheckIn(attendeeID int) (int, bool, error) {
	tx, err := s.DB.Beginx()
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		eventID   int
		checkedIn bool
	)

	selectQuery := tx.Rebind(`SELECT event_id, checked_in FROM attendees WHERE id = ?`)

	if err = tx.QueryRow(selectQuery, attendeeID).Scan(&eventID, &checkedIn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, storage.ErrAttendeeNotFound
		}

		return 0, false, fmt.Errorf("failed to get attendee: %w", err)
	}

	updateQuery := tx.Rebind(`UPDATE attendees SET checked_in = ? WHERE id = ?`)

	if _, err = tx.Exec(updateQuery, !checkedIn, attendeeID); err != nil {
		return 0, false, fmt.Errorf("failed to toggle check-in: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit: %w", err)
	}

	return eventID, !checkedIn, nil
}

// insertReturningID hides the driver split on id retrieval: postgres needs
// RETURNING, sqlite exposes LastInsertId.
func (s *Storage) insertReturningID(query string, args ...interface{}) (int, error) {
	if s.DB.DriverName() == "postgres" {
		var id int
		err := s.DB.QueryRow(s.DB.Rebind(query+" RETURNING id"), args...).Scan(&id)

		return id, err
	}

	res, err := s.DB.Exec(s.DB.Rebind(query), args...)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return int(id), nil
}

func insertReturningIDTx(tx *sqlx.Tx, driver, query string, args ...interface{}) (int, error) {
	if driver == "postgres" {
		var id int
		err := tx.QueryRow(tx.Rebind(query+" RETURNING id"), args...).Scan(&id)

		return id, err
	}

	res, err := tx.Exec(tx.Rebind(query), args...)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return int(id), nil
}
