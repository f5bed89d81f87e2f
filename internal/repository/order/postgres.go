package order

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"farmgate/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListLinesForFarmer(ctx context.Context, farmerID string) ([]Line, error) {
	const q = `
SELECT c.id::text, c.buyer_id::text, c.status,
       l.id::text, l.cart_id::text, l.listing_id::text, l.quantity, l.unit_price_cents, l.created_at
FROM cart_lines l
JOIN carts c ON c.id = l.cart_id
JOIN listings a ON a.id = l.listing_id
WHERE a.farmer_id = $1
ORDER BY c.created_at ASC, l.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, farmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Line
	for rows.Next() {
		var line Line
		var status string
		if err := rows.Scan(
			&line.CartID,
			&line.BuyerID,
			&status,
			&line.CartLine.ID,
			&line.CartLine.CartID,
			&line.CartLine.ListingID,
			&line.CartLine.Quantity,
			&line.CartLine.UnitPriceCents,
			&line.CartLine.CreatedAt,
		); err != nil {
			return nil, err
		}
		line.CartStatus = domain.CartStatus(status)
		result = append(result, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
