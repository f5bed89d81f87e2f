package listing

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmgate/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const listingColumns = `id::text, type, breed, price_cents, status, COALESCE(description, ''), COALESCE(image_url, ''), farmer_id::text, category_id::text, created_at`

func (r *postgresRepo) Create(ctx context.Context, l domain.Listing) (*domain.Listing, error) {
	const q = `
INSERT INTO listings (type, breed, price_cents, status, description, image_url, farmer_id, category_id)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8)
RETURNING ` + listingColumns + `
`
	return r.scanListing(r.pool.QueryRow(
		ctx,
		q,
		l.Type,
		l.Breed,
		l.PriceCents,
		string(l.Status),
		l.Description,
		l.ImageURL,
		l.FarmerID,
		l.CategoryID,
	))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	const q = `
SELECT ` + listingColumns + `
FROM listings
WHERE id = $1
`
	return r.scanListing(r.pool.QueryRow(ctx, q, id))
}

// UpdateOwned applies only the non-nil fields and succeeds only when
// the listing belongs to farmerID.
func (r *postgresRepo) UpdateOwned(ctx context.Context, farmerID, id string, fields UpdateFields) (*domain.Listing, error) {
	var status *string
	if fields.Status != nil {
		s := string(*fields.Status)
		status = &s
	}
	const q = `
UPDATE listings
SET type        = COALESCE($1, type),
    breed       = COALESCE($2, breed),
    price_cents = COALESCE($3, price_cents),
    status      = COALESCE($4, status),
    description = COALESCE($5, description),
    image_url   = COALESCE($6, image_url),
    category_id = COALESCE($7::uuid, category_id)
WHERE id = $8 AND farmer_id = $9
RETURNING ` + listingColumns + `
`
	listing, err := r.scanListing(r.pool.QueryRow(
		ctx,
		q,
		fields.Type,
		fields.Breed,
		fields.PriceCents,
		status,
		fields.Description,
		fields.ImageURL,
		fields.CategoryID,
		id,
		farmerID,
	))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			r.logger.Printf("listing repo: update id=%s farmer_id=%s error=%v", id, farmerID, err)
		}
		return nil, err
	}
	return listing, nil
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Listing, error) {
	const q = `
SELECT ` + listingColumns + `
FROM listings
ORDER BY created_at ASC
`
	return r.queryListings(ctx, q)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.Listing, error) {
	const q = `
SELECT ` + listingColumns + `
FROM listings
WHERE category_id = $1
ORDER BY created_at ASC
`
	return r.queryListings(ctx, q, categoryID)
}

func (r *postgresRepo) queryListings(ctx context.Context, q string, args ...interface{}) ([]domain.Listing, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Listing
	for rows.Next() {
		var l domain.Listing
		var status string
		if err := rows.Scan(&l.ID, &l.Type, &l.Breed, &l.PriceCents, &status, &l.Description, &l.ImageURL, &l.FarmerID, &l.CategoryID, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Status = domain.ListingStatus(status)
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	var status string
	err := row.Scan(
		&l.ID,
		&l.Type,
		&l.Breed,
		&l.PriceCents,
		&status,
		&l.Description,
		&l.ImageURL,
		&l.FarmerID,
		&l.CategoryID,
		&l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	l.Status = domain.ListingStatus(status)
	return &l, nil
}
