//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// tables in FK-safe truncation order
var tables = []string{
	"customers",
	"orders",
	"products",
	"categories",
	"discounts",
	"taxes",
	"shippings",
	"merchants",
	"users",
}

// ResetDB wipes all application tables so each subtest starts from a clean
// slate without recreating the schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, table := range tables {
		if _, err := pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return err
		}
	}
	return nil
}
