package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/config"
	"github.com/ssmapp/safety_management_system/internal/models"
)

// TrainingRepository определяет контракт для работы с бд инструктажей
type TrainingRepository interface {
	Create(ctx context.Context, training *models.Training) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Training, error)
	List(ctx context.Context) ([]*models.Training, error)
	Update(ctx context.Context, training *models.Training) error
	Delete(ctx context.Context, id uuid.UUID) error
	SaveResult(ctx context.Context, result *models.TrainingResult) error
	ListResultsByUser(ctx context.Context, userID uuid.UUID) ([]*models.TrainingResult, error)
}

// TrainingService определяет контракт управления инструктажами
type TrainingService interface {
	CreateTraining(ctx context.Context, session *models.Session, training *models.Training) error
	GetTraining(ctx context.Context, session *models.Session, id uuid.UUID) (*models.Training, error)
	ListTrainings(ctx context.Context, session *models.Session) ([]*models.Training, error)
	UpdateTraining(ctx context.Context, session *models.Session, training *models.Training) error
	DeleteTraining(ctx context.Context, session *models.Session, id uuid.UUID) error
	RecordResult(ctx context.Context, session *models.Session, trainingID uuid.UUID, score int) (*models.TrainingResult, error)
	ListMyResults(ctx context.Context, session *models.Session) ([]*models.TrainingResult, error)
}

type trainingService struct {
	repo   TrainingRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewTrainingService(repo TrainingRepository, logger *logrus.Logger, cfg *config.Config) TrainingService {
	return &trainingService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// CreateTraining создает инструктаж. Требует права управления инструктажами.
func (s *trainingService) CreateTraining(ctx context.Context, session *models.Session, training *models.Training) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "training",
		"method":  "CreateTraining",
		"title":   training.Title,
	})
	log.Info("Attempting to create a training")

	if !session.Role.Can(models.OpTrainingManage) {
		return fmt.Errorf("service: create training: %w", ErrForbidden)
	}
	if strings.TrimSpace(training.Title) == "" {
		return fmt.Errorf("service: training title is required: %w", ErrValidation)
	}
	if !training.MaterialType.Valid() {
		return fmt.Errorf("service: unknown material type %q: %w", training.MaterialType, ErrValidation)
	}
	if training.ValidityDays <= 0 {
		return fmt.Errorf("service: validity days must be positive: %w", ErrValidation)
	}

	if err := s.repo.Create(ctx, training); err != nil {
		log.WithError(err).Error("Failed to create training in repository")
		return fmt.Errorf("service: could not create training: %w", err)
	}

	log.WithField("training_id", training.ID).Info("Training created successfully")
	return nil
}

// GetTraining возвращает инструктаж по ID
func (s *trainingService) GetTraining(ctx context.Context, session *models.Session, id uuid.UUID) (*models.Training, error) {
	training, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get training: %w", err)
	}
	return training, nil
}

// ListTrainings возвращает все инструктажи
func (s *trainingService) ListTrainings(ctx context.Context, session *models.Session) ([]*models.Training, error) {
	trainings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list trainings: %w", err)
	}
	return trainings, nil
}

// UpdateTraining обновляет инструктаж. Требует права управления инструктажами.
func (s *trainingService) UpdateTraining(ctx context.Context, session *models.Session, training *models.Training) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "training",
		"method":      "UpdateTraining",
		"training_id": training.ID,
	})
	log.Info("Attempting to update a training")

	if !session.Role.Can(models.OpTrainingManage) {
		return fmt.Errorf("service: update training: %w", ErrForbidden)
	}
	if !training.MaterialType.Valid() {
		return fmt.Errorf("service: unknown material type %q: %w", training.MaterialType, ErrValidation)
	}

	existing, err := s.repo.GetByID(ctx, training.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent training")
		return fmt.Errorf("service: training %s not found for update: %w", training.ID, err)
	}

	existing.Title = training.Title
	existing.Description = training.Description
	existing.MaterialURL = training.MaterialURL
	existing.MaterialType = training.MaterialType
	existing.ValidityDays = training.ValidityDays

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update training in repository")
		return fmt.Errorf("service: could not update training: %w", err)
	}

	log.Info("Training updated successfully")
	return nil
}

// DeleteTraining удаляет инструктаж. Требует права управления инструктажами.
func (s *trainingService) DeleteTraining(ctx context.Context, session *models.Session, id uuid.UUID) error {
	if !session.Role.Can(models.OpTrainingManage) {
		return fmt.Errorf("service: delete training: %w", ErrForbidden)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete training: %w", err)
	}
	return nil
}

// RecordResult записывает результат прохождения инструктажа вызывающим.
// Порог прохождения и срок действия берутся из конфигурации и инструктажа.
func (s *trainingService) RecordResult(ctx context.Context, session *models.Session, trainingID uuid.UUID, score int) (*models.TrainingResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "training",
		"method":      "RecordResult",
		"training_id": trainingID,
		"user_id":     session.UserID,
		"score":       score,
	})
	log.Info("Attempting to record a training result")

	if score < 0 || score > 100 {
		return nil, fmt.Errorf("service: score must be in [0,100]: %w", ErrValidation)
	}

	training, err := s.repo.GetByID(ctx, trainingID)
	if err != nil {
		log.WithError(err).Warn("Attempted to record a result for a non-existent training")
		return nil, fmt.Errorf("service: training %s not found: %w", trainingID, err)
	}

	now := time.Now().UTC()
	result := &models.TrainingResult{
		UserID:      session.UserID,
		TrainingID:  trainingID,
		Score:       score,
		Passed:      score >= s.cfg.TrainingPassScore,
		CompletedAt: now,
		ExpiresAt:   now.AddDate(0, 0, training.ValidityDays),
	}

	if err := s.repo.SaveResult(ctx, result); err != nil {
		log.WithError(err).Error("Failed to save training result")
		return nil, fmt.Errorf("service: could not save training result: %w", err)
	}

	log.WithField("passed", result.Passed).Info("Training result recorded")
	return result, nil
}

// ListMyResults возвращает результаты инструктажей вызывающего
func (s *trainingService) ListMyResults(ctx context.Context, session *models.Session) ([]*models.TrainingResult, error) {
	results, err := s.repo.ListResultsByUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list training results: %w", err)
	}
	return results, nil
}
