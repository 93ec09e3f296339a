package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ssmapp/safety_management_system/internal/models"
	"github.com/ssmapp/safety_management_system/internal/service"
)

type RiskAssessmentRepository struct {
	db *pgxpool.Pool
}

func NewRiskAssessmentRepository(db *pgxpool.Pool) service.RiskAssessmentRepository {
	return &RiskAssessmentRepository{db: db}
}

// Create создает оценку рисков. Пункты чек-листа хранятся как JSONB.
func (r *RiskAssessmentRepository) Create(ctx context.Context, assessment *models.RiskAssessment) error {
	items, err := json.Marshal(assessment.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment items: %w", err)
	}

	query := `
		INSERT INTO risk_assessments (user_id, project_id, score, items, signature)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		assessment.UserID,
		assessment.ProjectID,
		assessment.Score,
		items,
		assessment.Signature,
	).Scan(&assessment.ID, &assessment.CreatedAt, &assessment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create risk assessment: %w", err)
	}
	return nil
}

// GetByID возвращает оценку рисков по её UUID
func (r *RiskAssessmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RiskAssessment, error) {
	query := `
		SELECT id, user_id, project_id, score, items, signature, created_at, updated_at
		FROM risk_assessments
		WHERE id = $1;
	`
	assessment := &models.RiskAssessment{}
	var items []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&assessment.ID,
		&assessment.UserID,
		&assessment.ProjectID,
		&assessment.Score,
		&items,
		&assessment.Signature,
		&assessment.CreatedAt,
		&assessment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("risk assessment %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get risk assessment by id: %w", err)
	}

	if err := json.Unmarshal(items, &assessment.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment items: %w", err)
	}
	return assessment, nil
}

// List возвращает оценки рисков с необязательными фильтрами, новые первыми
func (r *RiskAssessmentRepository) List(ctx context.Context, filter models.RiskAssessmentFilter) ([]*models.RiskAssessment, error) {
	query := `
		SELECT id, user_id, project_id, score, items, signature, created_at, updated_at
		FROM risk_assessments
		WHERE ($1::uuid IS NULL OR user_id = $1)
		  AND ($2::uuid IS NULL OR project_id = $2)
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, filter.UserID, filter.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk assessments: %w", err)
	}
	defer rows.Close()

	assessments := make([]*models.RiskAssessment, 0)
	for rows.Next() {
		assessment := &models.RiskAssessment{}
		var items []byte
		err := rows.Scan(
			&assessment.ID,
			&assessment.UserID,
			&assessment.ProjectID,
			&assessment.Score,
			&items,
			&assessment.Signature,
			&assessment.CreatedAt,
			&assessment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan risk assessment row: %w", err)
		}
		if err := json.Unmarshal(items, &assessment.Items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assessment items: %w", err)
		}
		assessments = append(assessments, assessment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return assessments, nil
}
