package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ssmapp/safety_management_system/internal/models"
	"github.com/ssmapp/safety_management_system/internal/service"
)

type AttendanceRepository struct {
	db *pgxpool.Pool
}

func NewAttendanceRepository(db *pgxpool.Pool) service.AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceColumns = `
	id,
	user_id,
	project_id,
	date,
	check_in_at,
	check_in_lat,
	check_in_lng,
	check_out_at,
	check_out_lat,
	check_out_lng,
	hours_worked
`

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	attendance := &models.Attendance{}
	err := row.Scan(
		&attendance.ID,
		&attendance.UserID,
		&attendance.ProjectID,
		&attendance.Date,
		&attendance.CheckInAt,
		&attendance.CheckInLat,
		&attendance.CheckInLng,
		&attendance.CheckOutAt,
		&attendance.CheckOutLat,
		&attendance.CheckOutLng,
		&attendance.HoursWorked,
	)
	if err != nil {
		return nil, err
	}
	return attendance, nil
}

// Create создает запись о приходе на объект
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (user_id, project_id, date, check_in_at, check_in_lat, check_in_lng)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		attendance.UserID,
		attendance.ProjectID,
		attendance.Date,
		attendance.CheckInAt,
		attendance.CheckInLat,
		attendance.CheckInLng,
	).Scan(&attendance.ID)
	if err != nil {
		return fmt.Errorf("failed to create attendance record: %w", err)
	}
	return nil
}

// GetOpenForDate возвращает незакрытую запись пользователя за дату
func (r *AttendanceRepository) GetOpenForDate(ctx context.Context, userID uuid.UUID, date string) (*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1 AND date = $2 AND check_out_at IS NULL;
	`
	attendance, err := scanAttendance(r.db.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("open attendance for %s on %s: %w", userID, date, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get open attendance: %w", err)
	}
	return attendance, nil
}

// CheckOut закрывает запись: время ухода, координаты, часы
func (r *AttendanceRepository) CheckOut(ctx context.Context, attendance *models.Attendance) error {
	query := `
		UPDATE attendance SET
			check_out_at = $1,
			check_out_lat = $2,
			check_out_lng = $3,
			hours_worked = $4
		WHERE id = $5 AND check_out_at IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		attendance.CheckOutAt,
		attendance.CheckOutLat,
		attendance.CheckOutLng,
		attendance.HoursWorked,
		attendance.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to close attendance record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("attendance %s not found for check-out: %w", attendance.ID, service.ErrNotFound)
	}
	return nil
}

// ListByUser возвращает записи пользователя за период, свежие первыми.
// Пустые границы периода означают "без ограничения".
func (r *AttendanceRepository) ListByUser(ctx context.Context, userID uuid.UUID, from, to string) ([]*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1
		  AND ($2 = '' OR date >= $2)
		  AND ($3 = '' OR date <= $3)
		ORDER BY date DESC;
	`
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]*models.Attendance, 0)
	for rows.Next() {
		attendance, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, attendance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}
