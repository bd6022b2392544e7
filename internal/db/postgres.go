package db

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

// New opens a database/sql handle, used by the raw-listing repository.
func New(url string) (*sql.DB, error) {
	return sql.Open("postgres", url)
}

// NewPool opens a pgx pool, used by the enriched-record repository.
func NewPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, url)
}
