package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmgate/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const cartColumns = `id::text, buyer_id::text, total_cents, status, created_at`

func (r *postgresRepo) GetActiveByBuyer(ctx context.Context, buyerID string) (*domain.Cart, error) {
	const q = `
SELECT ` + cartColumns + `
FROM carts
WHERE buyer_id = $1 AND status = 'Pending'
LIMIT 1
`
	return r.fetchCart(ctx, q, buyerID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	const q = `
SELECT ` + cartColumns + `
FROM carts
WHERE id = $1
`
	return r.fetchCart(ctx, q, id)
}

// AddItem finds or lazily creates the buyer's Pending cart, merges the
// listing into an existing line or inserts a new one with the listing's
// current price, and recomputes the cart total, all in one transaction.
func (r *postgresRepo) AddItem(ctx context.Context, buyerID string, listing domain.Listing, quantity int) (*domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cartID, err := activeCartID(ctx, tx, buyerID)
	if err != nil {
		return nil, err
	}

	var lineID string
	var existingQty int
	err = tx.QueryRow(ctx, `
SELECT id::text, quantity
FROM cart_lines
WHERE cart_id = $1 AND listing_id = $2
`, cartID, listing.ID).Scan(&lineID, &existingQty)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err == nil {
		// Merge: bump the quantity, keep the snapshotted unit price.
		if _, err := tx.Exec(ctx, `
UPDATE cart_lines
SET quantity = $1
WHERE id = $2
`, existingQty+quantity, lineID); err != nil {
			return nil, err
		}
	} else {
		if _, err := tx.Exec(ctx, `
INSERT INTO cart_lines (cart_id, listing_id, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4)
`, cartID, listing.ID, quantity, listing.PriceCents); err != nil {
			return nil, err
		}
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, cartID)
}

// RemoveItem deletes a line from the buyer's Pending cart and recomputes
// the total. Lines in Confirmed carts are unreachable here.
func (r *postgresRepo) RemoveItem(ctx context.Context, buyerID, lineID string) (*domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var cartID string
	err = tx.QueryRow(ctx, `
SELECT c.id::text
FROM cart_lines l
JOIN carts c ON c.id = l.cart_id
WHERE l.id = $1 AND c.buyer_id = $2 AND c.status = 'Pending'
`, lineID, buyerID).Scan(&cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE id = $1`, lineID); err != nil {
		return nil, err
	}
	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, cartID)
}

// Checkout flips the buyer's Pending cart to Confirmed. The transition
// is one-way; a Confirmed cart is never reopened.
func (r *postgresRepo) Checkout(ctx context.Context, buyerID string) (*domain.Cart, error) {
	const q = `
UPDATE carts
SET status = 'Confirmed'
WHERE buyer_id = $1 AND status = 'Pending'
RETURNING id::text
`
	var cartID string
	if err := r.pool.QueryRow(ctx, q, buyerID).Scan(&cartID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, cartID)
}

// activeCartID returns the id of the buyer's Pending cart, creating it
// with a zero total when absent. The partial unique index on
// (buyer_id) WHERE status = 'Pending' serializes concurrent creation.
func activeCartID(ctx context.Context, tx pgx.Tx, buyerID string) (string, error) {
	var cartID string
	err := tx.QueryRow(ctx, `
SELECT id::text
FROM carts
WHERE buyer_id = $1 AND status = 'Pending'
`, buyerID).Scan(&cartID)
	if err == nil {
		return cartID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}
	if err := tx.QueryRow(ctx, `
INSERT INTO carts (buyer_id, total_cents, status)
VALUES ($1, 0, 'Pending')
RETURNING id::text
`, buyerID).Scan(&cartID); err != nil {
		return "", err
	}
	return cartID, nil
}

func (r *postgresRepo) fetchCart(ctx context.Context, cartQuery string, args ...interface{}) (*domain.Cart, error) {
	var cart domain.Cart
	var status string
	err := r.pool.QueryRow(ctx, cartQuery, args...).Scan(
		&cart.ID,
		&cart.BuyerID,
		&cart.TotalCents,
		&status,
		&cart.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	cart.Status = domain.CartStatus(status)

	const linesQuery = `
SELECT id::text, cart_id::text, listing_id::text, quantity, unit_price_cents, created_at
FROM cart_lines
WHERE cart_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, linesQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(
			&line.ID,
			&line.CartID,
			&line.ListingID,
			&line.Quantity,
			&line.UnitPriceCents,
			&line.CreatedAt,
		); err != nil {
			return nil, err
		}
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

func updateCartTotal(ctx context.Context, tx pgx.Tx, cartID string) error {
	_, err := tx.Exec(ctx, `
UPDATE carts
SET total_cents = COALESCE((
	SELECT SUM(unit_price_cents * quantity)
	FROM cart_lines
	WHERE cart_id = $1
), 0)
WHERE id = $1
`, cartID)
	return err
}
