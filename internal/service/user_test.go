package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/models"
	"github.com/ssmapp/safety_management_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestUserService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestUserService(t *testing.T) (*userService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewUserService(usersMock, logger)
	return service.(*userService), usersMock
}

func adminSession() *models.Session {
	return &models.Session{
		Token:  "test-token",
		UserID: uuid.New(),
		Role:   models.RoleAdmin,
	}
}

func TestCreateUser_Success(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	input := models.CreateUserInput{
		Email:     "Leader@Site.Example",
		Password:  "password123",
		FirstName: "Ana",
		LastName:  "Marin",
		Role:      models.RoleTeamLeader,
	}

	// Ожидания: проверка занятости и запись идут по нормализованному email
	usersMock.EXPECT().
		GetByEmail(ctx, "leader@site.example").
		Return(nil, fmt.Errorf("repository: %w", ErrNotFound)).
		Times(1)
	usersMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "leader@site.example", user.Email)
			assert.Equal(t, models.RoleTeamLeader, user.Role)
			user.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	user, err := service.CreateUser(ctx, adminSession(), input)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestCreateUser_EmailTakenIgnoresCase(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	existing := &models.User{ID: uuid.New(), Email: "leader@site.example"}
	input := models.CreateUserInput{
		Email:    "Leader@Site.Example",
		Password: "password123",
		Role:     models.RoleTeamLeader,
	}

	// Ожидания
	usersMock.EXPECT().
		GetByEmail(ctx, "leader@site.example").
		Return(existing, nil).
		Times(1)
	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	user, err := service.CreateUser(ctx, adminSession(), input)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateUser_ForbiddenForNonAdmin(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()

	usersMock.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Times(0)
	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	user, err := service.CreateUser(ctx, responsibleSession(), models.CreateUserInput{
		Email:    "leader@site.example",
		Password: "password123",
		Role:     models.RoleTeamLeader,
	})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateUser_UnknownRole(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()

	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	user, err := service.CreateUser(ctx, adminSession(), models.CreateUserInput{
		Email:    "leader@site.example",
		Password: "password123",
		Role:     models.Role("supervisor"),
	})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrValidation)
}
