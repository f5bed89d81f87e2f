package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"farmgate/internal/password"
)

type listingSeed struct {
	Type        string
	Breed       string
	PriceCents  int64
	Description string
	ImageURL    string
	Category    string
}

var categoryNames = []string{
	"Poultry",
	"Livestock",
	"Equines",
	"Camelids",
	"Apiary",
	"Aquatic",
	"Exotic",
	"Small Mammals",
}

var listings = []listingSeed{
	{Type: "chicken", Breed: "Rhode Island Red", PriceCents: 90000, Description: "egg laying chicken", ImageURL: "https://valleyhatchery.com/wp-content/uploads/2021/11/Rhode-Island-Red-Chicks.webp", Category: "Poultry"},
	{Type: "turkey", Breed: "Norfolk", PriceCents: 200000, Description: "plump-breasted traditional breed turkey", Category: "Poultry"},
	{Type: "duck", Breed: "Pekin", PriceCents: 180000, Description: "snowy white", Category: "Poultry"},
	{Type: "sheep", Breed: "Dorper", PriceCents: 700000, Description: "weighing in at approximately 60 kilograms", Category: "Livestock"},
	{Type: "goat", Breed: "Boer", PriceCents: 600000, Description: "white body with a brown head and ears", Category: "Livestock"},
	{Type: "cow", Breed: "Boran", PriceCents: 8000000, Description: "weighs in at 400 kilograms", Category: "Livestock"},
	{Type: "sheep", Breed: "Merino", PriceCents: 750000, Description: "adaptable to any weather and has alot of wool", Category: "Livestock"},
	{Type: "horse", Breed: "Arabian", PriceCents: 80000000, Description: "matured built brown horse", Category: "Equines"},
	{Type: "camel", Breed: "Kharai", PriceCents: 7000000, Description: "adapts highly in coastal region", Category: "Camelids"},
}

// Apply inserts seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	farmerID, err := ensureFarmer(ctx, pool, "demofarmer", "farmer@farmgate.dev")
	if err != nil {
		return fmt.Errorf("ensure farmer: %w", err)
	}

	categoryIDs := make(map[string]string, len(categoryNames))
	for _, name := range categoryNames {
		id, err := ensureCategory(ctx, pool, name)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", name, err)
		}
		categoryIDs[name] = id
	}

	for _, l := range listings {
		if err := upsertListing(ctx, pool, farmerID, categoryIDs[l.Category], l); err != nil {
			return fmt.Errorf("upsert listing %s %s: %w", l.Type, l.Breed, err)
		}
	}

	return nil
}

func ensureFarmer(ctx context.Context, pool *pgxpool.Pool, username, email string) (string, error) {
	digest, err := password.New(password.DefaultPolicy()).Hash("Password1")
	if err != nil {
		return "", err
	}
	const q = `
INSERT INTO accounts (username, email, password_hash, role, farm_name, location)
VALUES ($1, $2, $3, 'farmer', 'Demo Farm', 'Nakuru')
ON CONFLICT (username) DO UPDATE SET email = EXCLUDED.email
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, username, email, digest).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	const q = `
INSERT INTO categories (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertListing(ctx context.Context, pool *pgxpool.Pool, farmerID, categoryID string, l listingSeed) error {
	const q = `
INSERT INTO listings (type, breed, price_cents, status, description, image_url, farmer_id, category_id)
SELECT $1, $2, $3, 'Available', NULLIF($4, ''), NULLIF($5, ''), $6, $7
WHERE NOT EXISTS (
    SELECT 1 FROM listings WHERE type = $1 AND breed = $2 AND farmer_id = $6
)
`
	_, err := pool.Exec(ctx, q, l.Type, l.Breed, l.PriceCents, l.Description, l.ImageURL, farmerID, categoryID)
	return err
}
