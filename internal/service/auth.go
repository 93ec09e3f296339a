package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/config"
	"github.com/ssmapp/safety_management_system/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionRepository определяет контракт хранилища сессий
type SessionRepository interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// AuthService определяет контракт аутентификации и работы с профилем
type AuthService interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Session, *models.User, error)
	Logout(ctx context.Context, token string) error
	SessionFromToken(ctx context.Context, token string) (*models.Session, error)
	CurrentUser(ctx context.Context, session *models.Session) (*models.User, error)
	UpdateProfile(ctx context.Context, session *models.Session, firstName, lastName, phoneNumber string) (*models.User, error)
}

type authService struct {
	users    UserRepository
	sessions SessionRepository
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewAuthService(users UserRepository, sessions SessionRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		logger:   logger,
		cfg:      cfg,
	}
}

// Register создает нового пользователя с ролью worker. Повышение роли делает
// администратор через управление пользователями.
func (s *authService) Register(ctx context.Context, input models.RegisterInput) (*models.User, error) {
	// Email хранится в нижнем регистре, проверка занятости идет по той же форме
	email := strings.ToLower(strings.TrimSpace(input.Email))

	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   email,
	})
	log.Info("Attempting to register a new user")

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		log.Warn("Registration with an already used email")
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
		Role:         models.RoleWorker,
		EmployeeCode: input.EmployeeCode,
		PhoneNumber:  input.PhoneNumber,
	}

	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

// Login проверяет учетные данные и выдает сессию с непрозрачным токеном
func (s *authService) Login(ctx context.Context, email, password string) (*models.Session, *models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})
	log.Info("Attempting to log in")

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, fmt.Errorf("service: %w", ErrInvalidCredentials)
		}
		return nil, nil, fmt.Errorf("service: could not get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Invalid password")
		return nil, nil, fmt.Errorf("service: %w", ErrInvalidCredentials)
	}

	session := &models.Session{
		Token:     newSessionToken(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, session, s.cfg.SessionTTL); err != nil {
		log.WithError(err).Error("Failed to save session")
		return nil, nil, fmt.Errorf("service: could not save session: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return session, user, nil
}

// Logout удаляет сессию по токену
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("service: could not delete session: %w", err)
	}
	return nil
}

// SessionFromToken разрешает токен в сессию. Используется middleware.
func (s *authService) SessionFromToken(ctx context.Context, token string) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("service: could not resolve session: %w", err)
	}
	return session, nil
}

// CurrentUser возвращает профиль вызывающего
func (s *authService) CurrentUser(ctx context.Context, session *models.Session) (*models.User, error) {
	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get current user: %w", err)
	}
	return user, nil
}

// UpdateProfile обновляет собственный профиль вызывающего. Email и роль этим
// путем не меняются.
func (s *authService) UpdateProfile(ctx context.Context, session *models.Session, firstName, lastName, phoneNumber string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "UpdateProfile",
		"user_id": session.UserID,
	})
	log.Info("Attempting to update profile")

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user for profile update: %w", err)
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.PhoneNumber = phoneNumber

	if err := s.users.Update(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update profile in repository")
		return nil, fmt.Errorf("service: could not update profile: %w", err)
	}

	log.Info("Profile updated successfully")
	return user, nil
}

// newSessionToken генерирует криптографически случайный непрозрачный токен
func newSessionToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read по контракту не возвращает ошибку на поддерживаемых платформах
		panic(err)
	}
	return hex.EncodeToString(buf)
}
