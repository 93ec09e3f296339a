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
	"github.com/ssmapp/safety_management_system/internal/notify"
	notify_mocks "github.com/ssmapp/safety_management_system/internal/notify/mocks"
	"github.com/ssmapp/safety_management_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *notify_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	publisherMock := notify_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		PhotoMaxBytes: 1024,
	}

	service := NewIncidentService(repoMock, logger, cfg, publisherMock)
	return service.(*incidentService), repoMock, publisherMock
}

func responsibleSession() *models.Session {
	return &models.Session{
		Token:  "test-token",
		UserID: uuid.New(),
		Role:   models.RoleSSMResponsible,
	}
}

func workerSession() *models.Session {
	return &models.Session{
		Token:  "test-token",
		UserID: uuid.New(),
		Role:   models.RoleWorker,
	}
}

func TestReportIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	session := workerSession()
	incident := &models.Incident{
		Type:        models.IncidentNearMiss,
		Description: "Scaffolding plank almost fell",
		// Клиент не вправе выбирать статус и автора
		ReporterID: uuid.New(),
		Status:     models.StatusClosed,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *models.Incident) error {
			// Симулируем, что БД присвоила ID
			inc.ID = uuid.New()
			return nil
		}).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event notify.Event) {
			assert.Equal(t, models.NotifyIncidentReported, event.Type)
			assert.Equal(t, session.UserID, event.ReporterID)
		}).Return(nil).Times(1)

	// Действие
	err := service.ReportIncident(ctx, session, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusReported, incident.Status)
	assert.Equal(t, session.UserID, incident.ReporterID)
	assert.NotEqual(t, uuid.Nil, incident.ID)
}

func TestReportIncident_ValidationErrors(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	session := workerSession()

	// Репозиторий и издатель не должны вызываться
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Пустое описание
	err := service.ReportIncident(ctx, session, &models.Incident{
		Type:        models.IncidentOther,
		Description: "   ",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	// Неизвестный тип
	err = service.ReportIncident(ctx, session, &models.Incident{
		Type:        models.IncidentType("explosion"),
		Description: "Something happened",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:          incidentID,
		Description: "Cached incident",
	}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, responsibleSession(), incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:          incidentID,
		Description: "Incident from DB",
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetIncidentCache(ctx, expectedIncident).
		Return(nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, responsibleSession(), incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(nil, fmt.Errorf("repository: %w", ErrNotFound)).Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, responsibleSession(), incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListIncidents_AppliesSearchAndTypeFilter(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	stored := []*models.Incident{
		{ID: uuid.New(), Type: models.IncidentNearMiss, Description: "Scaffolding plank almost fell"},
		{ID: uuid.New(), Type: models.IncidentEnvironmental, Description: "Diesel spill near the gate"},
		{ID: uuid.New(), Type: models.IncidentEnvironmental, Description: "Dust above threshold"},
	}

	// Ожидания
	repoMock.EXPECT().List(ctx, gomock.Any()).Return(stored, nil).Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx, responsibleSession(), models.IncidentListFilter{}, "spill", models.IncidentEnvironmental)

	// Проверки
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, stored[1].ID, incidents[0].ID)
}

func TestListIncidents_UnknownTypeFilter(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	incidents, err := service.ListIncidents(ctx, responsibleSession(), models.IncidentListFilter{}, "", models.IncidentType("explosion"))

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateIncidentStatus_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	session := responsibleSession()
	incidentID := uuid.New()
	current := &models.Incident{ID: incidentID, Status: models.StatusReported, Type: models.IncidentNearMiss}
	updated := &models.Incident{ID: incidentID, Status: models.StatusInvestigating, Type: models.IncidentNearMiss}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(current, nil).Times(1)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, models.StatusInvestigating, "", "", gomock.Nil()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(updated, nil).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event notify.Event) {
			assert.Equal(t, models.NotifyIncidentStatusChanged, event.Type)
			assert.Equal(t, models.StatusInvestigating, event.Status)
		}).Return(nil).Times(1)

	// Действие
	result, err := service.UpdateIncidentStatus(ctx, session, incidentID, models.StatusInvestigating, "", "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, updated, result)
}

func TestUpdateIncidentStatus_IdempotentReapply(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	current := &models.Incident{ID: incidentID, Status: models.StatusInvestigating}

	// Ожидания: повтор текущего статуса проходит, но событие не публикуется
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(current, nil).Times(1)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, models.StatusInvestigating, "", "", gomock.Nil()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(current, nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.UpdateIncidentStatus(ctx, responsibleSession(), incidentID, models.StatusInvestigating, "", "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusInvestigating, result.Status)
}

func TestUpdateIncidentStatus_SetsResolvedAtOnFirstResolve(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	current := &models.Incident{ID: incidentID, Status: models.StatusInvestigating, Type: models.IncidentNearMiss}
	resolvedAt := time.Now().UTC()
	updated := &models.Incident{ID: incidentID, Status: models.StatusResolved, Type: models.IncidentNearMiss, ResolvedAt: &resolvedAt}

	// Ожидания: при первом входе в resolved метка времени передается в хранилище
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(current, nil).Times(1)
	repoMock.EXPECT().
		UpdateStatus(ctx, incidentID, models.StatusResolved, "", "", gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.IncidentStatus, _, _ string, at *time.Time) error {
			assert.WithinDuration(t, time.Now().UTC(), *at, time.Minute)
			return nil
		}).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(updated, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.UpdateIncidentStatus(ctx, responsibleSession(), incidentID, models.StatusResolved, "", "")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, result.ResolvedAt)
}

func TestUpdateIncidentStatus_KeepsResolvedAtOnReapply(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	firstResolvedAt := time.Now().UTC().Add(-time.Hour)
	current := &models.Incident{ID: incidentID, Status: models.StatusResolved, ResolvedAt: &firstResolvedAt}

	// Ожидания: повтор resolved не перезаписывает уже выставленную метку
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(current, nil).Times(1)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, models.StatusResolved, "", "", gomock.Nil()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(current, nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.UpdateIncidentStatus(ctx, responsibleSession(), incidentID, models.StatusResolved, "", "")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, result.ResolvedAt)
	assert.Equal(t, firstResolvedAt, *result.ResolvedAt)
}

func TestUpdateIncidentStatus_RejectsOutOfOrderTransition(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	current := &models.Incident{ID: incidentID, Status: models.StatusReported}

	// Ожидания: состояние читается, но запись не происходит
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(current, nil).Times(1)
	repoMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие: reported -> closed перепрыгивает два шага
	result, err := service.UpdateIncidentStatus(ctx, responsibleSession(), incidentID, models.StatusClosed, "", "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateIncidentStatus_ForbiddenForWorker(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.UpdateIncidentStatus(ctx, workerSession(), uuid.New(), models.StatusInvestigating, "", "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAssignIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	session := responsibleSession()
	incidentID := uuid.New()
	assigneeID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusReported, Type: models.IncidentMinorInjury}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().Assign(ctx, incidentID, assigneeID).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event notify.Event) {
			assert.Equal(t, models.NotifyTaskAssigned, event.Type)
			require.NotNil(t, event.AssigneeID)
			assert.Equal(t, assigneeID, *event.AssigneeID)
		}).Return(nil).Times(1)

	// Действие
	err := service.AssignIncident(ctx, session, incidentID, assigneeID)

	// Проверки
	require.NoError(t, err)
}

func TestAssignIncident_ForbiddenForWorker(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.AssignIncident(ctx, workerSession(), uuid.New(), uuid.New())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUploadIncidentPhoto_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	data := []byte("jpeg-bytes")

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID}, nil).Times(1)
	repoMock.EXPECT().
		AppendPhoto(ctx, incidentID, "image/jpeg", data, gomock.Any()).
		Return(3, nil).
		Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	locator, err := service.UploadIncidentPhoto(ctx, workerSession(), incidentID, "image/jpeg", data)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("/api/v1/incidents/%s/photos/3", incidentID), locator)
}

func TestUploadIncidentPhoto_TooLarge(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	data := make([]byte, 2048) // Лимит в тестовом конфиге - 1024 байта

	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	locator, err := service.UploadIncidentPhoto(ctx, workerSession(), uuid.New(), "image/jpeg", data)

	// Проверки
	require.Error(t, err)
	assert.Empty(t, locator)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUploadIncidentPhoto_Empty(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	locator, err := service.UploadIncidentPhoto(ctx, workerSession(), uuid.New(), "image/jpeg", nil)

	// Проверки
	require.Error(t, err)
	assert.Empty(t, locator)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetIncidentPhoto_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedData := []byte("jpeg-bytes")

	repoMock.EXPECT().GetPhoto(ctx, incidentID, 0).Return("image/jpeg", expectedData, nil).Times(1)

	// Действие
	contentType, data, err := service.GetIncidentPhoto(ctx, workerSession(), incidentID, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, expectedData, data)
}
