package account

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmgate/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const accountColumns = `id::text, username, email, password_hash, role, COALESCE(address, ''), COALESCE(farm_name, ''), COALESCE(location, ''), created_at`

func (r *postgresRepo) Create(ctx context.Context, a domain.Account) (*domain.Account, error) {
	const q = `
INSERT INTO accounts (username, email, password_hash, role, address, farm_name, location)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''))
RETURNING ` + accountColumns + `
`
	return r.scanAccount(r.pool.QueryRow(
		ctx,
		q,
		a.Username,
		strings.ToLower(a.Email),
		a.PasswordHash,
		string(a.Role),
		a.Address,
		a.FarmName,
		a.Location,
	))
}

func (r *postgresRepo) GetByUsernameAndRole(ctx context.Context, username string, role domain.Role) (*domain.Account, error) {
	const q = `
SELECT ` + accountColumns + `
FROM accounts
WHERE username = $1 AND role = $2
LIMIT 1
`
	return r.scanAccount(r.pool.QueryRow(ctx, q, username, string(role)))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const q = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1
LIMIT 1
`
	return r.scanAccount(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	var role string
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&role,
		&a.Address,
		&a.FarmName,
		&a.Location,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("account repo: scan error=%v", err)
		return nil, err
	}
	a.Role = domain.Role(role)
	return &a, nil
}
