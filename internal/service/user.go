package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserService определяет контракт административного управления пользователями
type UserService interface {
	ListUsers(ctx context.Context, session *models.Session) ([]*models.User, error)
	GetUser(ctx context.Context, session *models.Session, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, session *models.Session, input models.CreateUserInput) (*models.User, error)
	UpdateUser(ctx context.Context, session *models.Session, id uuid.UUID, input models.UpdateUserInput) (*models.User, error)
	DeleteUser(ctx context.Context, session *models.Session, id uuid.UUID) error
}

type userService struct {
	users  UserRepository
	logger *logrus.Logger
}

func NewUserService(users UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger,
	}
}

// ListUsers возвращает всех пользователей. Только для администратора.
func (s *userService) ListUsers(ctx context.Context, session *models.Session) ([]*models.User, error) {
	if !session.Role.Can(models.OpUserManage) {
		return nil, fmt.Errorf("service: list users: %w", ErrForbidden)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

// GetUser возвращает пользователя по ID. Только для администратора.
func (s *userService) GetUser(ctx context.Context, session *models.Session, id uuid.UUID) (*models.User, error) {
	if !session.Role.Can(models.OpUserManage) {
		return nil, fmt.Errorf("service: get user: %w", ErrForbidden)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// CreateUser создает пользователя с произвольной ролью. Только для администратора.
func (s *userService) CreateUser(ctx context.Context, session *models.Session, input models.CreateUserInput) (*models.User, error) {
	// Email хранится в нижнем регистре, проверка занятости идет по той же форме
	email := strings.ToLower(strings.TrimSpace(input.Email))

	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "CreateUser",
		"email":   email,
		"role":    input.Role,
	})
	log.Info("Attempting to create a user")

	if !session.Role.Can(models.OpUserManage) {
		return nil, fmt.Errorf("service: create user: %w", ErrForbidden)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("service: unknown role %q: %w", input.Role, ErrValidation)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("service: %s: %w", email, ErrEmailTaken)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("service: could not check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		EmployeeCode: input.EmployeeCode,
		PhoneNumber:  input.PhoneNumber,
	}

	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User created successfully")
	return user, nil
}

// UpdateUser обновляет профиль и роль пользователя. Только для администратора.
func (s *userService) UpdateUser(ctx context.Context, session *models.Session, id uuid.UUID, input models.UpdateUserInput) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateUser",
		"user_id": id,
	})
	log.Info("Attempting to update a user")

	if !session.Role.Can(models.OpUserManage) {
		return nil, fmt.Errorf("service: update user: %w", ErrForbidden)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("service: unknown role %q: %w", input.Role, ErrValidation)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent user")
		return nil, fmt.Errorf("service: user %s not found for update: %w", id, err)
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Role = input.Role
	user.EmployeeCode = input.EmployeeCode
	user.PhoneNumber = input.PhoneNumber

	if err := s.users.Update(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return nil, fmt.Errorf("service: could not update user: %w", err)
	}

	log.Info("User updated successfully")
	return user, nil
}

// DeleteUser удаляет пользователя. Только для администратора; себя удалить нельзя.
func (s *userService) DeleteUser(ctx context.Context, session *models.Session, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "DeleteUser",
		"user_id": id,
	})
	log.Info("Attempting to delete a user")

	if !session.Role.Can(models.OpUserManage) {
		return fmt.Errorf("service: delete user: %w", ErrForbidden)
	}
	if id == session.UserID {
		return fmt.Errorf("service: cannot delete own account: %w", ErrValidation)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete user in repository")
		return fmt.Errorf("service: could not delete user: %w", err)
	}

	log.Info("User deleted successfully")
	return nil
}
