package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/models"
)

// RiskAssessmentRepository определяет контракт для работы с бд оценок рисков
type RiskAssessmentRepository interface {
	Create(ctx context.Context, assessment *models.RiskAssessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.RiskAssessment, error)
	List(ctx context.Context, filter models.RiskAssessmentFilter) ([]*models.RiskAssessment, error)
}

// RiskAssessmentService определяет контракт работы с оценками рисков
type RiskAssessmentService interface {
	CreateAssessment(ctx context.Context, session *models.Session, assessment *models.RiskAssessment) error
	GetAssessment(ctx context.Context, session *models.Session, id uuid.UUID) (*models.RiskAssessment, error)
	ListAssessments(ctx context.Context, session *models.Session, filter models.RiskAssessmentFilter) ([]*models.RiskAssessment, error)
}

type riskAssessmentService struct {
	repo   RiskAssessmentRepository
	logger *logrus.Logger
}

func NewRiskAssessmentService(repo RiskAssessmentRepository, logger *logrus.Logger) RiskAssessmentService {
	return &riskAssessmentService{
		repo:   repo,
		logger: logger,
	}
}

// CreateAssessment создает оценку рисков от имени вызывающего. Балл считается
// сервером из пунктов чек-листа: high=3, medium=2, low=1 за каждый пункт с
// отрицательным ответом.
func (s *riskAssessmentService) CreateAssessment(ctx context.Context, session *models.Session, assessment *models.RiskAssessment) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "risk_assessment",
		"method":     "CreateAssessment",
		"project_id": assessment.ProjectID,
		"user_id":    session.UserID,
	})
	log.Info("Attempting to create a risk assessment")

	if len(assessment.Items) == 0 {
		return fmt.Errorf("service: assessment must contain at least one item: %w", ErrValidation)
	}
	for i, item := range assessment.Items {
		if !item.Risk.Valid() {
			return fmt.Errorf("service: item %d has unknown risk level %q: %w", i, item.Risk, ErrValidation)
		}
	}

	assessment.UserID = session.UserID
	assessment.Score = scoreAssessment(assessment.Items)

	if err := s.repo.Create(ctx, assessment); err != nil {
		log.WithError(err).Error("Failed to create risk assessment in repository")
		return fmt.Errorf("service: could not create risk assessment: %w", err)
	}

	log.WithField("assessment_id", assessment.ID).Info("Risk assessment created successfully")
	return nil
}

// GetAssessment возвращает оценку рисков по ID
func (s *riskAssessmentService) GetAssessment(ctx context.Context, session *models.Session, id uuid.UUID) (*models.RiskAssessment, error) {
	assessment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get risk assessment: %w", err)
	}
	return assessment, nil
}

// ListAssessments возвращает оценки рисков с фильтром по объекту/пользователю
func (s *riskAssessmentService) ListAssessments(ctx context.Context, session *models.Session, filter models.RiskAssessmentFilter) ([]*models.RiskAssessment, error) {
	assessments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: could not list risk assessments: %w", err)
	}
	return assessments, nil
}

func scoreAssessment(items []models.RiskAssessmentItem) int {
	score := 0
	for _, item := range items {
		if item.Answer {
			continue
		}
		switch item.Risk {
		case models.RiskHigh:
			score += 3
		case models.RiskMedium:
			score += 2
		case models.RiskLow:
			score++
		}
	}
	return score
}
