package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/models"
)

// AttendanceRepository определяет контракт для работы с бд посещаемости
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	GetOpenForDate(ctx context.Context, userID uuid.UUID, date string) (*models.Attendance, error)
	CheckOut(ctx context.Context, attendance *models.Attendance) error
	ListByUser(ctx context.Context, userID uuid.UUID, from, to string) ([]*models.Attendance, error)
}

// AttendanceService определяет контракт учета присутствия на объекте
type AttendanceService interface {
	CheckIn(ctx context.Context, session *models.Session, projectID uuid.UUID, lat, lng float64) (*models.Attendance, error)
	CheckOut(ctx context.Context, session *models.Session, lat, lng float64) (*models.Attendance, error)
	ListMyAttendance(ctx context.Context, session *models.Session, from, to string) ([]*models.Attendance, error)
}

type attendanceService struct {
	repo   AttendanceRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewAttendanceService(repo AttendanceRepository, logger *logrus.Logger) AttendanceService {
	return &attendanceService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CheckIn регистрирует приход на объект. Одна незакрытая запись на день.
func (s *attendanceService) CheckIn(ctx context.Context, session *models.Session, projectID uuid.UUID, lat, lng float64) (*models.Attendance, error) {
	now := s.now()
	date := now.Format("2006-01-02")

	log := s.logger.WithFields(logrus.Fields{
		"service":    "attendance",
		"method":     "CheckIn",
		"user_id":    session.UserID,
		"project_id": projectID,
		"date":       date,
	})
	log.Info("Attempting to check in")

	existing, err := s.repo.GetOpenForDate(ctx, session.UserID, date)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("service: could not check open attendance: %w", err)
	}
	if existing != nil {
		log.Warn("Duplicate check-in attempt")
		return nil, fmt.Errorf("service: %w", ErrAlreadyCheckedIn)
	}

	attendance := &models.Attendance{
		UserID:     session.UserID,
		ProjectID:  projectID,
		Date:       date,
		CheckInAt:  now,
		CheckInLat: lat,
		CheckInLng: lng,
	}
	if err := s.repo.Create(ctx, attendance); err != nil {
		log.WithError(err).Error("Failed to create attendance record")
		return nil, fmt.Errorf("service: could not check in: %w", err)
	}

	log.WithField("attendance_id", attendance.ID).Info("Checked in successfully")
	return attendance, nil
}

// CheckOut закрывает сегодняшнюю запись и считает отработанные часы
func (s *attendanceService) CheckOut(ctx context.Context, session *models.Session, lat, lng float64) (*models.Attendance, error) {
	now := s.now()
	date := now.Format("2006-01-02")

	log := s.logger.WithFields(logrus.Fields{
		"service": "attendance",
		"method":  "CheckOut",
		"user_id": session.UserID,
		"date":    date,
	})
	log.Info("Attempting to check out")

	attendance, err := s.repo.GetOpenForDate(ctx, session.UserID, date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("service: %w", ErrNotCheckedIn)
		}
		return nil, fmt.Errorf("service: could not find open attendance: %w", err)
	}

	hours := now.Sub(attendance.CheckInAt).Hours()
	attendance.CheckOutAt = &now
	attendance.CheckOutLat = &lat
	attendance.CheckOutLng = &lng
	attendance.HoursWorked = &hours

	if err := s.repo.CheckOut(ctx, attendance); err != nil {
		log.WithError(err).Error("Failed to close attendance record")
		return nil, fmt.Errorf("service: could not check out: %w", err)
	}

	log.WithField("hours", hours).Info("Checked out successfully")
	return attendance, nil
}

// ListMyAttendance возвращает записи вызывающего за период (включительно)
func (s *attendanceService) ListMyAttendance(ctx context.Context, session *models.Session, from, to string) ([]*models.Attendance, error) {
	records, err := s.repo.ListByUser(ctx, session.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("service: could not list attendance: %w", err)
	}
	return records, nil
}
