package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/config"
	"github.com/ssmapp/safety_management_system/internal/models"
	"github.com/ssmapp/safety_management_system/internal/service"
	"github.com/ssmapp/safety_management_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test-session-token"

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockAuthService, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	authMock := mocks.NewMockAuthService(ctrl)
	incidentMock := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		PhotoMaxBytes: 1024,
	}

	handler := NewHandler(Services{
		Auth:      authMock,
		Incidents: incidentMock,
	}, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return authMock, incidentMock, router
}

// authorize настраивает резолвинг тестового токена в сессию с данной ролью
func authorize(authMock *mocks.MockAuthService, role models.Role) *models.Session {
	session := &models.Session{
		Token:  testToken,
		UserID: uuid.New(),
		Role:   role,
	}
	authMock.EXPECT().
		SessionFromToken(gomock.Any(), testToken).
		Return(session, nil).
		AnyTimes()
	return session
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionHeader() map[string]string {
	return map[string]string{"X-Session-Token": testToken}
}

func TestRegister_Success(t *testing.T) {
	authMock, _, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := RegisterRequest{
		Email:     "worker@site.example",
		Password:  "password123",
		FirstName: "Ion",
		LastName:  "Popescu",
	}

	authMock.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.RegisterInput) (*models.User, error) {
			assert.Equal(t, reqBody.Email, input.Email)
			return &models.User{
				ID:        userID,
				Email:     input.Email,
				FirstName: input.FirstName,
				LastName:  input.LastName,
				Role:      models.RoleWorker,
			}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp UserResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, string(models.RoleWorker), resp.Role)
}

func TestRegister_ValidationError(t *testing.T) {
	authMock, _, router := newTestHandler(t)
	reqBody := RegisterRequest{ // Отсутствует Email
		Password:  "password123",
		FirstName: "Ion",
		LastName:  "Popescu",
	}

	authMock.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Email' failed on the 'required' tag")
}

func TestRegister_EmailTaken(t *testing.T) {
	authMock, _, router := newTestHandler(t)
	reqBody := RegisterRequest{
		Email:     "worker@site.example",
		Password:  "password123",
		FirstName: "Ion",
		LastName:  "Popescu",
	}

	authMock.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", service.ErrEmailTaken)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestLogin_Success(t *testing.T) {
	authMock, _, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "worker@site.example", Password: "password123"}
	user := &models.User{ID: uuid.New(), Email: reqBody.Email, Role: models.RoleWorker}
	session := &models.Session{Token: "issued-token", UserID: user.ID, Role: user.Role}

	authMock.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).Return(session, user, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	authMock, _, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "worker@site.example", Password: "wrong"}

	authMock.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return(nil, nil, fmt.Errorf("service: %w", service.ErrInvalidCredentials)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestSessionAuthMiddleware_MissingToken(t *testing.T) {
	_, incidentMock, router := newTestHandler(t)

	incidentMock.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil) // Нет токена

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session token required")
}

func TestSessionAuthMiddleware_InvalidToken(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)

	authMock.EXPECT().
		SessionFromToken(gomock.Any(), "bad-token").
		Return(nil, errors.New("session not found")).
		Times(1)
	incidentMock.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"X-Session-Token": "bad-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired session")
}

func TestSessionAuthMiddleware_BearerHeader(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	session := authorize(authMock, models.RoleWorker)

	incidentMock.EXPECT().
		ListIncidents(gomock.Any(), session, gomock.Any(), "", models.IncidentType("")).
		Return(nil, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"Authorization": "Bearer " + testToken})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportIncident_Success(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	session := authorize(authMock, models.RoleWorker)
	incidentID := uuid.New()
	reqBody := ReportIncidentRequest{
		ProjectID:   uuid.New(),
		Type:        "near_miss",
		Description: "Scaffolding plank almost fell",
		Latitude:    45.76,
		Longitude:   21.23,
	}

	incidentMock.EXPECT().
		ReportIncident(gomock.Any(), session, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Session, inc *models.Incident) error {
			assert.Equal(t, models.IncidentNearMiss, inc.Type)
			assert.Equal(t, reqBody.Description, inc.Description)
			inc.ID = incidentID
			inc.ReporterID = session.UserID
			inc.Status = models.StatusReported
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), sessionHeader())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "reported", resp.Status)
	assert.Equal(t, "Reported", resp.StatusLabel)
	assert.Equal(t, "Near miss", resp.TypeLabel)
}

func TestReportIncident_ZeroCoordinatesAccepted(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	session := authorize(authMock, models.RoleWorker)
	// Точка 0/0 — легитимная координата, а не отсутствующее значение
	reqBody := ReportIncidentRequest{
		ProjectID:   uuid.New(),
		Type:        "environmental",
		Description: "Diesel spill near the gate",
		Latitude:    0,
		Longitude:   0,
	}

	incidentMock.EXPECT().
		ReportIncident(gomock.Any(), session, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Session, inc *models.Incident) error {
			assert.Zero(t, inc.Location.Latitude)
			assert.Zero(t, inc.Location.Longitude)
			inc.ID = uuid.New()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), sessionHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReportIncident_OutOfRangeLatitude(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	authorize(authMock, models.RoleWorker)
	reqBody := ReportIncidentRequest{
		ProjectID:   uuid.New(),
		Type:        "near_miss",
		Description: "Scaffolding plank almost fell",
		Latitude:    120,
		Longitude:   21.23,
	}

	incidentMock.EXPECT().ReportIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), sessionHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude")
}

func TestReportIncident_InvalidJSON(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	authorize(authMock, models.RoleWorker)

	incidentMock.EXPECT().ReportIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"type": "near_miss"`), sessionHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestReportIncident_UnknownType(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	authorize(authMock, models.RoleWorker)
	reqBody := ReportIncidentRequest{
		ProjectID:   uuid.New(),
		Type:        "explosion",
		Description: "Something happened",
		Latitude:    45.76,
		Longitude:   21.23,
	}

	incidentMock.EXPECT().ReportIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), sessionHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Type' failed on the 'oneof' tag")
}

func TestGetIncident_Success(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	session := authorize(authMock, models.RoleWorker)
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:          incidentID,
		Type:        models.IncidentEnvironmental,
		Description: "Diesel spill near the gate",
		Status:      models.StatusInvestigating,
	}

	incidentMock.EXPECT().GetIncident(gomock.Any(), session, incidentID).Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID), nil, sessionHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "investigating", resp.Status)
}

func TestGetIncident_InvalidID(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	authorize(authMock, models.RoleWorker)

	incidentMock.EXPECT().GetIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/invalid-uuid", nil, sessionHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	session := authorize(authMock, models.RoleWorker)
	incidentID := uuid.New()

	incidentMock.EXPECT().
		GetIncident(gomock.Any(), session, incidentID).
		Return(nil, fmt.Errorf("service: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID), nil, sessionHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestUpdateIncidentStatus_Success(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	session := authorize(authMock, models.RoleSSMResponsible)
	incidentID := uuid.New()
	reqBody := UpdateIncidentStatusRequest{
		Status:       "investigating",
		ActionsTaken: "Area cordoned off",
	}
	updated := &models.Incident{
		ID:           incidentID,
		Type:         models.IncidentNearMiss,
		Status:       models.StatusInvestigating,
		ActionsTaken: reqBody.ActionsTaken,
	}

	incidentMock.EXPECT().
		UpdateIncidentStatus(gomock.Any(), session, incidentID, models.StatusInvestigating, reqBody.ActionsTaken, "").
		Return(updated, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/incidents/%s/status", incidentID), bytes.NewBuffer(bodyBytes), sessionHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "investigating", resp.Status)
	assert.Equal(t, reqBody.ActionsTaken, resp.ActionsTaken)
}

func TestUpdateIncidentStatus_InvalidTransition(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	session := authorize(authMock, models.RoleSSMResponsible)
	incidentID := uuid.New()
	reqBody := UpdateIncidentStatusRequest{Status: "closed"}

	incidentMock.EXPECT().
		UpdateIncidentStatus(gomock.Any(), session, incidentID, models.StatusClosed, "", "").
		Return(nil, fmt.Errorf("service: %w", service.ErrInvalidTransition)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/incidents/%s/status", incidentID), bytes.NewBuffer(bodyBytes), sessionHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status transition")
}

func TestUpdateIncidentStatus_Forbidden(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	session := authorize(authMock, models.RoleWorker)
	incidentID := uuid.New()
	reqBody := UpdateIncidentStatusRequest{Status: "investigating"}

	incidentMock.EXPECT().
		UpdateIncidentStatus(gomock.Any(), session, incidentID, models.StatusInvestigating, "", "").
		Return(nil, fmt.Errorf("service: %w", service.ErrForbidden)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/incidents/%s/status", incidentID), bytes.NewBuffer(bodyBytes), sessionHeader())

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "operation not permitted")
}

func TestAssignIncident_Success(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	session := authorize(authMock, models.RoleTeamLeader)
	incidentID := uuid.New()
	reqBody := AssignIncidentRequest{UserID: uuid.New()}

	incidentMock.EXPECT().
		AssignIncident(gomock.Any(), session, incidentID, reqBody.UserID).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/incidents/%s/assign", incidentID), bytes.NewBuffer(bodyBytes), sessionHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_WithSearchQuery(t *testing.T) {
	authMock, incidentMock, router := newTestHandler(t)
	session := authorize(authMock, models.RoleWorker)
	expectedIncidents := []*models.Incident{
		{ID: uuid.New(), Type: models.IncidentEnvironmental, Description: "Diesel spill near the gate", Status: models.StatusReported},
	}

	incidentMock.EXPECT().
		ListIncidents(gomock.Any(), session, gomock.Any(), "spill", models.IncidentEnvironmental).
		Return(expectedIncidents, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?q=spill&type=environmental", nil, sessionHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, expectedIncidents[0].ID, resp[0].ID)
	assert.Equal(t, "Environmental", resp[0].TypeLabel)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
