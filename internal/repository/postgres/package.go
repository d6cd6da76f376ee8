package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/voyago/voyago-backend/internal/repository"
)

const packageWithHotelColumns = `
	p.id, p.title, p.destination, p.duration_days, p.price_per_person,
	p.includes_flight, p.includes_hotel, p.includes_car, p.image_url, p.description,
	p.hotel_id, p.available_dates, p.is_treasure_hunt, p.is_whats_hot, p.extras_value,
	h.name AS hotel_name, h.rating AS hotel_rating, h.city AS hotel_city, h.country AS hotel_country
`

const packageColumns = `
	id, title, destination, duration_days, price_per_person,
	includes_flight, includes_hotel, includes_car, image_url, description,
	hotel_id, available_dates, is_treasure_hunt, is_whats_hot, extras_value
`

// PackageRepository implements repository.PackageRepository using PostgreSQL
type PackageRepository struct {
	db *sqlx.DB
}

// NewPackageRepository creates a new PostgreSQL package repository
func NewPackageRepository(db *sqlx.DB) repository.PackageRepository {
	return &PackageRepository{db: db}
}

// SearchByDestination finds packages whose destination contains the
// given text, cheapest first. Hotel fields come from a left join so a
// package without a hotel is kept with null hotel fields.
func (r *PackageRepository) SearchByDestination(ctx context.Context, destination string, limit int) ([]repository.PackageWithHotel, error) {
	var results []repository.PackageWithHotel
	query := `
		SELECT ` + packageWithHotelColumns + `
		FROM packages p
		LEFT JOIN hotels h ON p.hotel_id = h.id
		WHERE p.destination ILIKE $1
		ORDER BY p.price_per_person ASC
		LIMIT $2
	`

	err := r.db.SelectContext(ctx, &results, query, "%"+destination+"%", limit)
	if err != nil {
		return nil, err
	}

	return results, nil
}

// SearchByDestinationOrCity matches against the package destination or
// the linked hotel's city
func (r *PackageRepository) SearchByDestinationOrCity(ctx context.Context, destination string, limit int) ([]repository.PackageWithHotel, error) {
	var results []repository.PackageWithHotel
	query := `
		SELECT ` + packageWithHotelColumns + `
		FROM packages p
		LEFT JOIN hotels h ON p.hotel_id = h.id
		WHERE p.destination ILIKE $1 OR h.city ILIKE $1
		ORDER BY p.price_per_person ASC
		LIMIT $2
	`

	err := r.db.SelectContext(ctx, &results, query, "%"+destination+"%", limit)
	if err != nil {
		return nil, err
	}

	return results, nil
}

// ListAll returns packages with hotel details, cheapest first
func (r *PackageRepository) ListAll(ctx context.Context, limit int) ([]repository.PackageWithHotel, error) {
	var results []repository.PackageWithHotel
	query := `
		SELECT ` + packageWithHotelColumns + `
		FROM packages p
		LEFT JOIN hotels h ON p.hotel_id = h.id
		ORDER BY p.price_per_person ASC
		LIMIT $1
	`

	err := r.db.SelectContext(ctx, &results, query, limit)
	if err != nil {
		return nil, err
	}

	return results, nil
}

// ListTreasureHunt returns treasure-hunt deals in insertion order
func (r *PackageRepository) ListTreasureHunt(ctx context.Context, limit int) ([]repository.Package, error) {
	var results []repository.Package
	query := `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE is_treasure_hunt = TRUE
		ORDER BY id
		LIMIT $1
	`

	err := r.db.SelectContext(ctx, &results, query, limit)
	if err != nil {
		return nil, err
	}

	return results, nil
}

// ListWhatsHot returns what's-hot deals in insertion order
func (r *PackageRepository) ListWhatsHot(ctx context.Context, limit int) ([]repository.Package, error) {
	var results []repository.Package
	query := `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE is_whats_hot = TRUE
		ORDER BY id
		LIMIT $1
	`

	err := r.db.SelectContext(ctx, &results, query, limit)
	if err != nil {
		return nil, err
	}

	return results, nil
}
