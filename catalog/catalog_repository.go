package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jungle-app/jungle-booking/database"
)

const serviceColumns = `s.id, s.title, s.category, s.price_eur, s.image_url, s.location, s.city, s.region,
			s.latitude, s.longitude, s.rating, s.distance_meters, s.section, s.created_at`

type Repository struct{ db database.DB }

func NewRepository(db database.DB) *Repository {
	return &Repository{db: db}
}

func scanService(row pgx.Row) (Service, error) {
	var service Service
	err := row.Scan(
		&service.ID,
		&service.Title,
		&service.Category,
		&service.PriceEUR,
		&service.ImageURL,
		&service.Location,
		&service.City,
		&service.Region,
		&service.Latitude,
		&service.Longitude,
		&service.Rating,
		&service.DistanceMeters,
		&service.Section,
		&service.CreatedAt,
	)
	return service, err
}

func collectServices(rows pgx.Rows) ([]Service, error) {
	defer rows.Close()

	services := []Service{}

	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning service row: %w", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", err)
	}

	return services, nil
}

// GetServices returns the newest services first. limit <= 0 means all.
func (r *Repository) GetServices(ctx context.Context, limit int) ([]Service, error) {
	sql := `SELECT ` + serviceColumns + `
			FROM services s
			ORDER BY s.created_at DESC
			LIMIT $1;
		`

	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := r.db.Query(ctx, sql, limitArg)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}

	return collectServices(rows)
}

func (r *Repository) GetServiceByID(ctx context.Context, id string) (Service, error) {
	sql := `SELECT ` + serviceColumns + `
			FROM services s
			WHERE s.id=$1;
		`

	service, err := scanService(r.db.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Service{}, ErrServiceNotFound
	}

	if err != nil {
		return Service{}, fmt.Errorf("failed to fetch service with id %v: %w", id, err)
	}

	return service, nil
}

func (r *Repository) GetFavoriteIDs(ctx context.Context, guestID string) ([]string, error) {
	sql := `SELECT service_id FROM favorites WHERE guest_id=$1;`

	rows, err := r.db.Query(ctx, sql, guestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorites for guest '%v': %w", guestID, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan favorites for guest '%v': %w", guestID, err)
	}

	return ids, nil
}

func (r *Repository) GetFavoriteServices(ctx context.Context, guestID string) ([]Service, error) {
	sql := `SELECT ` + serviceColumns + `
			FROM favorites f
			JOIN services s ON s.id = f.service_id
			WHERE f.guest_id=$1
			ORDER BY f.created_at DESC;
		`

	rows, err := r.db.Query(ctx, sql, guestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorite services for guest '%v': %w", guestID, err)
	}

	return collectServices(rows)
}

func (r *Repository) InsertFavorite(ctx context.Context, guestID, serviceID string) error {
	sql := `
			INSERT INTO favorites(guest_id, service_id)
			VALUES ($1, $2)
			ON CONFLICT (guest_id, service_id) DO NOTHING;
		`

	if _, err := r.db.Exec(ctx, sql, guestID, serviceID); err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	return nil
}

func (r *Repository) DeleteFavorite(ctx context.Context, guestID, serviceID string) error {
	sql := `DELETE FROM favorites WHERE guest_id=$1 AND service_id=$2;`

	if _, err := r.db.Exec(ctx, sql, guestID, serviceID); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}
