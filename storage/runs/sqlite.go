package runs

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/dariuszzbyrad/jgenetics/entities"
)

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	genome        TEXT NOT NULL,
	fitness       REAL NOT NULL,
	iterations    INTEGER NOT NULL,
	converged     INTEGER NOT NULL,
	population    TEXT NOT NULL,
	creation_time TEXT NOT NULL
)`

type sqlite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database file at path
func OpenSQLite(path string) (Storage, *sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, err
	}
	// a single connection keeps ":memory:" databases alive between calls
	db.SetMaxOpenConns(1)
	s, err := NewSQLite(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return s, db, nil
}

// NewSQLite stores runs in db, creating the table when missing
func NewSQLite(db *sql.DB) (Storage, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &sqlite{db: db}, nil
}

func (s *sqlite) StoreRun(r *entities.Run) error {
	if err := validate(r); err != nil {
		return err
	}
	switch stored, err := s.GetRun(r.ID); {
	case stored != nil:
		return ErrorRunAlreadyExists
	case err != nil && err != ErrorInvalidRun:
		return err
	}

	if r.CreationTime == "" {
		r.CreationTime = time.Now().UTC().Format(time.RFC3339)
	}
	population, err := json.Marshal(r.Population)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO runs (id, genome, fitness, iterations, converged, population, creation_time) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Genome, r.Fitness, r.Iterations, r.Converged, string(population), r.CreationTime,
	)

	return err
}

func (s *sqlite) GetRun(runID string) (*entities.Run, error) {
	if runID == "" {
		return nil, ErrorMissingRunID
	}
	r := &entities.Run{}
	var population string

	err := s.db.QueryRow(
		`SELECT id, genome, fitness, iterations, converged, population, creation_time FROM runs WHERE id = ?`,
		runID,
	).Scan(&r.ID, &r.Genome, &r.Fitness, &r.Iterations, &r.Converged, &population, &r.CreationTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrorInvalidRun
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(population), &r.Population); err != nil {
		return nil, err
	}

	return r, nil
}
