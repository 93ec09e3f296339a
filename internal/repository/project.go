package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ssmapp/safety_management_system/internal/models"
	"github.com/ssmapp/safety_management_system/internal/service"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) service.ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
	id,
	name,
	description,
	latitude,
	longitude,
	address,
	status,
	start_date,
	end_date,
	created_at,
	updated_at
`

func scanProject(row pgx.Row) (*models.Project, error) {
	project := &models.Project{}
	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Location.Latitude,
		&project.Location.Longitude,
		&project.Location.Address,
		&project.Status,
		&project.StartDate,
		&project.EndDate,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Create создает новый объект в бд
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (name, description, latitude, longitude, address, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		project.Name,
		project.Description,
		project.Location.Latitude,
		project.Location.Longitude,
		project.Location.Address,
		project.Status,
		project.StartDate,
		project.EndDate,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetByID возвращает объект по его UUID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1;`

	project, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}
	return project, nil
}

// List возвращает все объекты, новые первыми
func (r *ProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return projects, nil
}

// Update обновляет объект
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects SET
			name = $1,
			description = $2,
			latitude = $3,
			longitude = $4,
			address = $5,
			status = $6,
			start_date = $7,
			end_date = $8,
			updated_at = NOW()
		WHERE id = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		project.Name,
		project.Description,
		project.Location.Latitude,
		project.Location.Longitude,
		project.Location.Address,
		project.Status,
		project.StartDate,
		project.EndDate,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("project %s not found for update: %w", project.ID, service.ErrNotFound)
	}
	return nil
}
