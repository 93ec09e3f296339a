package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/config"
	"github.com/ssmapp/safety_management_system/internal/models"
	"github.com/ssmapp/safety_management_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAuthService(t *testing.T) (*authService, *mocks.MockUserRepository, *mocks.MockSessionRepository) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)
	sessionsMock := mocks.NewMockSessionRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		SessionTTL: 24 * time.Hour,
	}

	service := NewAuthService(usersMock, sessionsMock, logger, cfg)
	return service.(*authService), usersMock, sessionsMock
}

func TestRegister_Success(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	input := models.RegisterInput{
		Email:     "Worker@Site.Example",
		Password:  "password123",
		FirstName: "Ion",
		LastName:  "Popescu",
	}

	// Ожидания: проверка занятости идет по нормализованному email
	usersMock.EXPECT().
		GetByEmail(ctx, "worker@site.example").
		Return(nil, fmt.Errorf("repository: %w", ErrNotFound)).
		Times(1)

	usersMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			// Email нормализуется, пароль хэшируется, роль всегда worker
			assert.Equal(t, "worker@site.example", user.Email)
			assert.Equal(t, models.RoleWorker, user.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)))
			user.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	user, err := service.Register(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, models.RoleWorker, user.Role)
}

func TestRegister_EmailTaken(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	input := models.RegisterInput{Email: "worker@site.example", Password: "password123"}

	// Ожидания
	usersMock.EXPECT().
		GetByEmail(ctx, input.Email).
		Return(&models.User{ID: uuid.New(), Email: input.Email}, nil).
		Times(1)
	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	user, err := service.Register(ctx, input)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_EmailTakenIgnoresCase(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	existing := &models.User{ID: uuid.New(), Email: "worker@site.example"}
	input := models.RegisterInput{Email: "Worker@Site.Example", Password: "password123"}

	// Ожидания: занятый email обнаруживается независимо от регистра ввода
	usersMock.EXPECT().
		GetByEmail(ctx, "worker@site.example").
		Return(existing, nil).
		Times(1)
	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	user, err := service.Register(ctx, input)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	service, usersMock, sessionsMock := newTestAuthService(t)
	ctx := context.Background()
	password := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		ID:           uuid.New(),
		Email:        "worker@site.example",
		PasswordHash: string(hash),
		Role:         models.RoleTeamLeader,
	}

	// Ожидания
	usersMock.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)
	sessionsMock.EXPECT().
		Save(ctx, gomock.Any(), 24*time.Hour).
		Do(func(ctx context.Context, session *models.Session, ttl time.Duration) {
			assert.NotEmpty(t, session.Token)
			assert.Equal(t, user.ID, session.UserID)
			assert.Equal(t, user.Role, session.Role)
		}).Return(nil).Times(1)

	// Действие
	session, loggedIn, err := service.Login(ctx, user.Email, password)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, user, loggedIn)
	assert.Len(t, session.Token, 64) // 32 случайных байта в hex
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	service, usersMock, sessionsMock := newTestAuthService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		ID:           uuid.New(),
		Email:        "worker@site.example",
		PasswordHash: string(hash),
	}

	// Ожидания
	usersMock.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)
	sessionsMock.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	session, loggedIn, err := service.Login(ctx, user.Email, "wrong-password")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, session)
	assert.Nil(t, loggedIn)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Подготовка
	service, usersMock, sessionsMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания: несуществующий email неотличим от неверного пароля
	usersMock.EXPECT().
		GetByEmail(ctx, "ghost@site.example").
		Return(nil, fmt.Errorf("repository: %w", ErrNotFound)).
		Times(1)
	sessionsMock.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	session, user, err := service.Login(ctx, "ghost@site.example", "password123")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, session)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_Success(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	session := &models.Session{UserID: uuid.New(), Role: models.RoleWorker}
	existing := &models.User{
		ID:        session.UserID,
		Email:     "worker@site.example",
		FirstName: "Ion",
		LastName:  "Popescu",
		Role:      models.RoleWorker,
	}

	// Ожидания
	usersMock.EXPECT().GetByID(ctx, session.UserID).Return(existing, nil).Times(1)
	usersMock.EXPECT().
		Update(ctx, gomock.Any()).
		Do(func(ctx context.Context, user *models.User) {
			// Email и роль не меняются через профиль
			assert.Equal(t, "worker@site.example", user.Email)
			assert.Equal(t, models.RoleWorker, user.Role)
			assert.Equal(t, "Maria", user.FirstName)
		}).Return(nil).Times(1)

	// Действие
	user, err := service.UpdateProfile(ctx, session, "Maria", "Ionescu", "+40711111111")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Maria", user.FirstName)
	assert.Equal(t, "Ionescu", user.LastName)
	assert.Equal(t, "+40711111111", user.PhoneNumber)
}

func TestLogout_Success(t *testing.T) {
	// Подготовка
	service, _, sessionsMock := newTestAuthService(t)
	ctx := context.Background()

	sessionsMock.EXPECT().Delete(ctx, "some-token").Return(nil).Times(1)

	// Действие
	err := service.Logout(ctx, "some-token")

	// Проверки
	require.NoError(t, err)
}
