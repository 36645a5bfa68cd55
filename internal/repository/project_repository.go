package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tidsreg-be/internal/entities"
)

// ProjectRepository defines the interface for project database operations
type ProjectRepository interface {
	List(ctx context.Context) ([]entities.Project, error)
	// DefaultID returns the lowest project id, used as the implicit
	// project when projects are not exposed.
	DefaultID(ctx context.Context) (int64, error)
}

type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// List returns all projects sorted by name
func (r *projectRepository) List(ctx context.Context) ([]entities.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM projects ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []entities.Project{}
	for rows.Next() {
		var p entities.Project
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

func (r *projectRepository) DefaultID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM projects ORDER BY id LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find default project: %w", err)
	}
	return id, nil
}
