package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/rampa/internal/models"
)

// StoredWorkout is one library entry. The payload is the encoded ZWO
// document text, the metadata columns exist for listing without decoding.
type StoredWorkout struct {
	ID          string
	Name        string
	Author      string
	Description string
	SportType   string
	Tags        []string
	ZWO         string
	CreatedAt   time.Time
}

// SaveWorkout stores the encoded workout under its name, replacing any
// previous entry with the same name.
func (s *Storage) SaveWorkout(w *models.Workout, zwoText string) error {
	tags, err := json.Marshal(w.Metadata.CleanTags())
	if err != nil {
		return fmt.Errorf("Failed to encode tags: %w", err)
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err = s.DB.Exec(
		`INSERT INTO workouts (id, name, author, description, sport_type, tags, zwo, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(name) DO UPDATE SET
             author = excluded.author,
             description = excluded.description,
             sport_type = excluded.sport_type,
             tags = excluded.tags,
             zwo = excluded.zwo,
             created_at = excluded.created_at`,
		uuid.New().String(),
		w.Metadata.Name,
		w.Metadata.Author,
		w.Metadata.Description,
		w.Metadata.SportType,
		string(tags),
		zwoText,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("Failed to save workout: %w", err)
	}
	return nil
}

func (s *Storage) GetWorkoutByName(name string) (*StoredWorkout, error) {
	row := s.DB.QueryRow(
		`SELECT id, name, author, description, sport_type, tags, zwo, created_at
         FROM workouts WHERE name = ?`,
		name,
	)

	sw, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("Workout %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to query workout: %w", err)
	}
	return sw, nil
}

func (s *Storage) ListWorkouts() ([]StoredWorkout, error) {
	rows, err := s.DB.Query(`
        SELECT id, name, author, description, sport_type, tags, zwo, created_at
        FROM workouts
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("Failed to query workouts: %w", err)
	}
	defer rows.Close()

	var workouts []StoredWorkout
	for rows.Next() {
		sw, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("Failed to scan workout: %w", err)
		}
		workouts = append(workouts, *sw)
	}
	return workouts, rows.Err()
}

func (s *Storage) DeleteWorkout(name string) error {
	res, err := s.DB.Exec("DELETE FROM workouts WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("Failed to delete workout: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Failed to delete workout: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("Workout %q not found", name)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row rowScanner) (*StoredWorkout, error) {
	var sw StoredWorkout
	var author, description, sportType, tags sql.NullString
	var createdAt string

	err := row.Scan(&sw.ID, &sw.Name, &author, &description, &sportType, &tags, &sw.ZWO, &createdAt)
	if err != nil {
		return nil, err
	}

	sw.Author = author.String
	sw.Description = description.String
	sw.SportType = sportType.String
	if tags.String != "" {
		// Tags were written by us, a parse failure just means no tags.
		json.Unmarshal([]byte(tags.String), &sw.Tags)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		sw.CreatedAt = t
	}

	return &sw, nil
}
