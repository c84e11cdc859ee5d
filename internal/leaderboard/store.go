// Package leaderboard persists benchmark records in SQLite. The engine
// only supplies raw per-episode values; aggregation happens in bench and
// storage here.
package leaderboard

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Record is one benchmark run on the leaderboard
type Record struct {
	ID        string
	Name      string
	Episodes  int
	MeanScore float64
	StdScore  float64
	MeanSteps float64
	CreatedAt time.Time
}

// Store wraps the SQLite connection
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the leaderboard database and migrates it
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: open %s: %w", path, err)
	}

	// WAL keeps readers from blocking the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("leaderboard: enable WAL: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			episodes INTEGER NOT NULL,
			mean_score REAL NOT NULL,
			std_score REAL NOT NULL,
			mean_steps REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_score ON records(mean_score)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("leaderboard: migration failed: %w", err)
		}
	}
	return nil
}

// Save inserts a record, assigning a run ID if it has none
func (s *Store) Save(rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `INSERT INTO records (id, name, episodes, mean_score, std_score, mean_steps)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.Exec(query,
		rec.ID, rec.Name, rec.Episodes, rec.MeanScore, rec.StdScore, rec.MeanSteps)
	return err
}

// Top returns up to limit records, best mean score first
func (s *Store) Top(limit int) ([]Record, error) {
	query := `SELECT id, name, episodes, mean_score, std_score, mean_steps, created_at
		FROM records ORDER BY mean_score DESC, mean_steps DESC LIMIT ?`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		err := rows.Scan(&rec.ID, &rec.Name, &rec.Episodes,
			&rec.MeanScore, &rec.StdScore, &rec.MeanSteps, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get retrieves a record by run ID
func (s *Store) Get(id string) (*Record, error) {
	query := `SELECT id, name, episodes, mean_score, std_score, mean_steps, created_at
		FROM records WHERE id = ?`

	var rec Record
	err := s.db.QueryRow(query, id).Scan(&rec.ID, &rec.Name, &rec.Episodes,
		&rec.MeanScore, &rec.StdScore, &rec.MeanSteps, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
