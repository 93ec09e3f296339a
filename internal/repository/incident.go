package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/ssmapp/safety_management_system/internal/models"
	"github.com/ssmapp/safety_management_system/internal/service"
)

const incidentCacheTTL = 5 * time.Minute

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const incidentColumns = `
	id,
	reporter_id,
	project_id,
	type,
	description,
	latitude,
	longitude,
	address,
	photos,
	status,
	assigned_to,
	actions_taken,
	preventive_measures,
	reported_at,
	updated_at,
	resolved_at
`

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.ReporterID,
		&incident.ProjectID,
		&incident.Type,
		&incident.Description,
		&incident.Location.Latitude,
		&incident.Location.Longitude,
		&incident.Location.Address,
		&incident.Photos,
		&incident.Status,
		&incident.AssignedTo,
		&incident.ActionsTaken,
		&incident.PreventiveMeasures,
		&incident.ReportedAt,
		&incident.UpdatedAt,
		&incident.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (reporter_id, project_id, type, description, latitude, longitude, address, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, reported_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.ReporterID,
		incident.ProjectID,
		incident.Type,
		incident.Description,
		incident.Location.Latitude,
		incident.Location.Longitude,
		incident.Location.Address,
		incident.Status,
	).Scan(&incident.ID, &incident.ReportedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// List возвращает инциденты, новые первыми, с необязательными фильтрами
// по сообщившему и объекту
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentListFilter) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE ($1::uuid IS NULL OR reporter_id = $1)
		  AND ($2::uuid IS NULL OR project_id = $2)
		ORDER BY reported_at DESC
		LIMIT $3;
	`
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx, query, filter.ReporterID, filter.ProjectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// UpdateStatus перезаписывает статус и сопутствующие поля. resolved_at
// выставляется один раз при первом входе в resolved; пустые тексты не
// затирают ранее сохраненные.
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus, actionsTaken, preventiveMeasures string, resolvedAt *time.Time) error {
	query := `
		UPDATE incidents SET
			status = $1,
			actions_taken = COALESCE(NULLIF($2, ''), actions_taken),
			preventive_measures = COALESCE(NULLIF($3, ''), preventive_measures),
			resolved_at = COALESCE(resolved_at, $4),
			updated_at = NOW()
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, actionsTaken, preventiveMeasures, resolvedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s not found for status update: %w", id, service.ErrNotFound)
	}
	return nil
}

// Assign назначает пользователя ответственным за инцидент
func (r *IncidentRepository) Assign(ctx context.Context, id, userID uuid.UUID) error {
	query := `
		UPDATE incidents SET
			assigned_to = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("failed to assign incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s not found for assignment: %w", id, service.ErrNotFound)
	}
	return nil
}

// AppendPhoto сохраняет содержимое фотографии и дописывает её локатор в
// incidents.photos. Порядковый номер выдается последовательно внутри транзакции.
func (r *IncidentRepository) AppendPhoto(ctx context.Context, id uuid.UUID, contentType string, data []byte, locator func(seq int) string) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin photo transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var seq int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(seq) + 1, 0) FROM incident_photos WHERE incident_id = $1;`, id,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate photo sequence: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO incident_photos (incident_id, seq, content_type, data) VALUES ($1, $2, $3, $4);`,
		id, seq, contentType, data,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert photo: %w", err)
	}

	cmdTag, err := tx.Exec(ctx,
		`UPDATE incidents SET photos = array_append(photos, $1), updated_at = NOW() WHERE id = $2;`,
		locator(seq), id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to append photo locator: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, fmt.Errorf("incident %s not found for photo append: %w", id, service.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit photo transaction: %w", err)
	}
	return seq, nil
}

// GetPhoto возвращает содержимое фотографии по инциденту и порядковому номеру
func (r *IncidentRepository) GetPhoto(ctx context.Context, id uuid.UUID, seq int) (string, []byte, error) {
	var contentType string
	var data []byte
	err := r.db.QueryRow(ctx,
		`SELECT content_type, data FROM incident_photos WHERE incident_id = $1 AND seq = $2;`,
		id, seq,
	).Scan(&contentType, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, fmt.Errorf("photo %d of incident %s: %w", seq, id, service.ErrNotFound)
		}
		return "", nil, fmt.Errorf("failed to get incident photo: %w", err)
	}
	return contentType, data, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
