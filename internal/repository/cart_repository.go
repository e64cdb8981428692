package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/commerce-core/internal/domain"
	"github.com/nikolayk812/commerce-core/internal/port"
)

const (
	selectDocument = `SELECT document FROM cart_state WHERE key = $1`

	upsertDocument = `INSERT INTO cart_state (key, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`

	deleteDocument = `DELETE FROM cart_state WHERE key = $1`
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	db  querier
	key string
}

// NewPostgres returns a CartRepository backed by the cart_state table,
// storing the cart document as JSONB under the given storage key.
func NewPostgres(pool *pgxpool.Pool, key string) (port.CartRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	return &postgresRepository{db: pool, key: key}, nil
}

// NewPostgresWithTx runs the repository inside a caller-managed transaction,
// for callers composing the cart write with other statements.
func NewPostgresWithTx(tx pgx.Tx, key string) (port.CartRepository, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx is nil")
	}
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	return &postgresRepository{db: tx, key: key}, nil
}

func (r *postgresRepository) Load(ctx context.Context) (domain.Cart, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, selectDocument, r.key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("db.QueryRow: %w", err)
	}

	cart, err := unmarshalDocument(raw)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("unmarshalDocument: %w", err)
	}

	return cart, nil
}

func (r *postgresRepository) Save(ctx context.Context, cart domain.Cart) error {
	raw, err := marshalDocument(cart)
	if err != nil {
		return fmt.Errorf("marshalDocument: %w", err)
	}

	if _, err := r.db.Exec(ctx, upsertDocument, r.key, raw); err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}

	return nil
}

func (r *postgresRepository) Clear(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, deleteDocument, r.key); err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}

	return nil
}
