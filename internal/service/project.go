package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/models"
)

// ProjectRepository определяет контракт для работы с бд объектов
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
}

// ProjectService определяет контракт управления объектами
type ProjectService interface {
	CreateProject(ctx context.Context, session *models.Session, project *models.Project) error
	GetProject(ctx context.Context, session *models.Session, id uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context, session *models.Session) ([]*models.Project, error)
	UpdateProject(ctx context.Context, session *models.Session, project *models.Project) error
}

type projectService struct {
	repo   ProjectRepository
	logger *logrus.Logger
}

func NewProjectService(repo ProjectRepository, logger *logrus.Logger) ProjectService {
	return &projectService{
		repo:   repo,
		logger: logger,
	}
}

// CreateProject создает объект. Требует права управления объектами.
func (s *projectService) CreateProject(ctx context.Context, session *models.Session, project *models.Project) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "project",
		"method":  "CreateProject",
		"name":    project.Name,
	})
	log.Info("Attempting to create a project")

	if !session.Role.Can(models.OpProjectManage) {
		return fmt.Errorf("service: create project: %w", ErrForbidden)
	}
	if strings.TrimSpace(project.Name) == "" {
		return fmt.Errorf("service: project name is required: %w", ErrValidation)
	}
	if project.Status == "" {
		project.Status = models.ProjectActive
	}
	if !project.Status.Valid() {
		return fmt.Errorf("service: unknown project status %q: %w", project.Status, ErrValidation)
	}

	if err := s.repo.Create(ctx, project); err != nil {
		log.WithError(err).Error("Failed to create project in repository")
		return fmt.Errorf("service: could not create project: %w", err)
	}

	log.WithField("project_id", project.ID).Info("Project created successfully")
	return nil
}

// GetProject возвращает объект по ID. Доступно любому аутентифицированному.
func (s *projectService) GetProject(ctx context.Context, session *models.Session, id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get project: %w", err)
	}
	return project, nil
}

// ListProjects возвращает все объекты. Доступно любому аутентифицированному.
func (s *projectService) ListProjects(ctx context.Context, session *models.Session) ([]*models.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list projects: %w", err)
	}
	return projects, nil
}

// UpdateProject обновляет объект. Требует права управления объектами.
func (s *projectService) UpdateProject(ctx context.Context, session *models.Session, project *models.Project) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "project",
		"method":     "UpdateProject",
		"project_id": project.ID,
	})
	log.Info("Attempting to update a project")

	if !session.Role.Can(models.OpProjectManage) {
		return fmt.Errorf("service: update project: %w", ErrForbidden)
	}
	if !project.Status.Valid() {
		return fmt.Errorf("service: unknown project status %q: %w", project.Status, ErrValidation)
	}

	existing, err := s.repo.GetByID(ctx, project.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent project")
		return fmt.Errorf("service: project %s not found for update: %w", project.ID, err)
	}

	existing.Name = project.Name
	existing.Description = project.Description
	existing.Location = project.Location
	existing.Status = project.Status
	existing.StartDate = project.StartDate
	existing.EndDate = project.EndDate

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update project in repository")
		return fmt.Errorf("service: could not update project: %w", err)
	}

	log.Info("Project updated successfully")
	return nil
}
