package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"tastetrace-route-service/internal/domain"
	"tastetrace-route-service/internal/platform/obs"
)

// Postgres-backed implementation of the RestaurantRepository port.
type PostgresRestaurantRepository struct{ DB *sql.DB }

func NewPostgresRestaurantRepository(db *sql.DB) *PostgresRestaurantRepository {
	return &PostgresRestaurantRepository{DB: db}
}

const restaurantColumns = `
	restaurant_id,
	name,
	category,
	lat,
	lng,
	average_wait,
	opening_hours,
	price_range,
	google_maps_url,
	badges
`

// List returns restaurants matching an optional badge filter and an
// optional name/category search term.
func (s *PostgresRestaurantRepository) List(ctx context.Context, filter, search string) (_ []domain.Restaurant, err error) {
	defer obs.Time(ctx, "restaurants.List")(&err)

	if s.DB == nil {
		return nil, errors.New("restaurant repository: DB is nil")
	}

	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE TRUE`
	args := []any{}

	if filter != "" && filter != "all" {
		args = append(args, `%"`+filter+`"%`)
		query += fmt.Sprintf(" AND badges LIKE $%d", len(args))
	}

	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR category ILIKE $%d)", len(args), len(args))
	}

	query += " ORDER BY restaurant_id;"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: query restaurants table: %w", err)
	}
	defer rows.Close()

	return scanRestaurants(rows)
}

// GetByIDs returns the restaurants for the given ids, preserving id order.
func (s *PostgresRestaurantRepository) GetByIDs(ctx context.Context, ids []int64) (_ []domain.Restaurant, err error) {
	defer obs.Time(ctx, "restaurants.GetByIDs")(&err)

	if s.DB == nil {
		return nil, errors.New("restaurant repository: DB is nil")
	}

	if len(ids) == 0 {
		return []domain.Restaurant{}, nil
	}

	query := `
	SELECT ` + restaurantColumns + `
	FROM restaurants
	WHERE restaurant_id = ANY($1::bigint[]);
	`
	rows, err := s.DB.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get restaurants: query restaurants table: %w", err)
	}
	defer rows.Close()

	found, err := scanRestaurants(rows)
	if err != nil {
		return nil, fmt.Errorf("get restaurants: %w", err)
	}

	byID := make(map[int64]domain.Restaurant, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}

	// Re-emit in the caller's id order; the first selection anchors the route.
	ordered := make([]domain.Restaurant, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}

	return ordered, nil
}

func scanRestaurants(rows *sql.Rows) ([]domain.Restaurant, error) {
	restaurants := make([]domain.Restaurant, 0, 16)
	for rows.Next() {
		var (
			r         domain.Restaurant
			wait      sql.NullInt64
			hours     sql.NullString
			tier      sql.NullString
			mapsURL   sql.NullString
			badgesRaw sql.NullString
		)

		err := rows.Scan(
			&r.ID, &r.Name, &r.Category,
			&r.Coordinates.Lat, &r.Coordinates.Lng,
			&wait, &hours, &tier, &mapsURL, &badgesRaw,
		)
		if err != nil {
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}

		r.AverageWaitMinutes = domain.DefaultAverageWaitMinutes
		if wait.Valid {
			r.AverageWaitMinutes = int(wait.Int64)
		}

		r.OpeningHours = domain.DefaultOpeningHours()
		if hours.Valid {
			var oh domain.OpeningHours
			if err := json.Unmarshal([]byte(hours.String), &oh); err == nil {
				r.OpeningHours = oh.Normalize()
			}
		}

		r.PriceTier = domain.PriceTier(tier.String).Normalize()
		r.GoogleMapsURL = mapsURL.String

		r.Badges = []string{}
		if badgesRaw.Valid && badgesRaw.String != "" {
			if err := json.Unmarshal([]byte(badgesRaw.String), &r.Badges); err != nil {
				return nil, fmt.Errorf("parse badges for restaurant_id=%d: %w", r.ID, err)
			}
		}

		restaurants = append(restaurants, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("restaurant row iteration: %w", err)
	}

	return restaurants, nil
}
