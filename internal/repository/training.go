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

type TrainingRepository struct {
	db *pgxpool.Pool
}

func NewTrainingRepository(db *pgxpool.Pool) service.TrainingRepository {
	return &TrainingRepository{db: db}
}

// Create создает новый инструктаж в бд
func (r *TrainingRepository) Create(ctx context.Context, training *models.Training) error {
	query := `
		INSERT INTO trainings (title, description, material_url, material_type, validity_days)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		training.Title,
		training.Description,
		training.MaterialURL,
		training.MaterialType,
		training.ValidityDays,
	).Scan(&training.ID, &training.CreatedAt, &training.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create training: %w", err)
	}
	return nil
}

// GetByID возвращает инструктаж по его UUID
func (r *TrainingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Training, error) {
	query := `
		SELECT id, title, description, material_url, material_type, validity_days, created_at, updated_at
		FROM trainings
		WHERE id = $1;
	`
	training := &models.Training{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&training.ID,
		&training.Title,
		&training.Description,
		&training.MaterialURL,
		&training.MaterialType,
		&training.ValidityDays,
		&training.CreatedAt,
		&training.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("training %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get training by id: %w", err)
	}
	return training, nil
}

// List возвращает все инструктажи, новые первыми
func (r *TrainingRepository) List(ctx context.Context) ([]*models.Training, error) {
	query := `
		SELECT id, title, description, material_url, material_type, validity_days, created_at, updated_at
		FROM trainings
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainings: %w", err)
	}
	defer rows.Close()

	trainings := make([]*models.Training, 0)
	for rows.Next() {
		training := &models.Training{}
		err := rows.Scan(
			&training.ID,
			&training.Title,
			&training.Description,
			&training.MaterialURL,
			&training.MaterialType,
			&training.ValidityDays,
			&training.CreatedAt,
			&training.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan training row: %w", err)
		}
		trainings = append(trainings, training)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return trainings, nil
}

// Update обновляет инструктаж
func (r *TrainingRepository) Update(ctx context.Context, training *models.Training) error {
	query := `
		UPDATE trainings SET
			title = $1,
			description = $2,
			material_url = $3,
			material_type = $4,
			validity_days = $5,
			updated_at = NOW()
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		training.Title,
		training.Description,
		training.MaterialURL,
		training.MaterialType,
		training.ValidityDays,
		training.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update training: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("training %s not found for update: %w", training.ID, service.ErrNotFound)
	}
	return nil
}

// Delete удаляет инструктаж
func (r *TrainingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM trainings WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete training: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("training %s not found for delete: %w", id, service.ErrNotFound)
	}
	return nil
}

// SaveResult записывает результат прохождения инструктажа
func (r *TrainingRepository) SaveResult(ctx context.Context, result *models.TrainingResult) error {
	query := `
		INSERT INTO training_results (user_id, training_id, score, passed, completed_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		result.UserID,
		result.TrainingID,
		result.Score,
		result.Passed,
		result.CompletedAt,
		result.ExpiresAt,
	).Scan(&result.ID)
	if err != nil {
		return fmt.Errorf("failed to save training result: %w", err)
	}
	return nil
}

// ListResultsByUser возвращает результаты пользователя, свежие первыми
func (r *TrainingRepository) ListResultsByUser(ctx context.Context, userID uuid.UUID) ([]*models.TrainingResult, error) {
	query := `
		SELECT id, user_id, training_id, score, passed, completed_at, expires_at
		FROM training_results
		WHERE user_id = $1
		ORDER BY completed_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list training results: %w", err)
	}
	defer rows.Close()

	results := make([]*models.TrainingResult, 0)
	for rows.Next() {
		result := &models.TrainingResult{}
		err := rows.Scan(
			&result.ID,
			&result.UserID,
			&result.TrainingID,
			&result.Score,
			&result.Passed,
			&result.CompletedAt,
			&result.ExpiresAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan training result row: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return results, nil
}
