package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance - запись о присутствии пользователя на объекте за один день.
// Date хранится в формате YYYY-MM-DD, часы считаются при check-out.
type Attendance struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	Date        string     `json:"date"`
	CheckInAt   time.Time  `json:"check_in_at"`
	CheckInLat  float64    `json:"check_in_lat"`
	CheckInLng  float64    `json:"check_in_lng"`
	CheckOutAt  *time.Time `json:"check_out_at,omitempty"`
	CheckOutLat *float64   `json:"check_out_lat,omitempty"`
	CheckOutLng *float64   `json:"check_out_lng,omitempty"`
	HoursWorked *float64   `json:"hours_worked,omitempty"`
}
