package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Skills and analysis are stored
// as jsonb.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume record.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, file_name, content, skills, analysis, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	skillsPayload, err := json.Marshal(resume.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	analysisPayload, err := json.Marshal(resume.Analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.FileName,
		resume.Content,
		skillsPayload,
		analysisPayload,
		resume.CreatedAt,
	)
	return err
}

// GetByID fetches one record.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT id, file_name, content, skills, analysis, created_at
FROM resumes
WHERE id = $1`

	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// List returns every record, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Resume, error) {
	const query = `
SELECT id, file_name, content, skills, analysis, created_at
FROM resumes
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var (
		resume          Resume
		skillsPayload   []byte
		analysisPayload []byte
	)
	if err := row.Scan(
		&resume.ID,
		&resume.FileName,
		&resume.Content,
		&skillsPayload,
		&analysisPayload,
		&resume.CreatedAt,
	); err != nil {
		return Resume{}, err
	}
	if len(skillsPayload) > 0 {
		if err := json.Unmarshal(skillsPayload, &resume.Skills); err != nil {
			return Resume{}, fmt.Errorf("unmarshal skills: %w", err)
		}
	}
	if len(analysisPayload) > 0 {
		if err := json.Unmarshal(analysisPayload, &resume.Analysis); err != nil {
			return Resume{}, fmt.Errorf("unmarshal analysis: %w", err)
		}
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
