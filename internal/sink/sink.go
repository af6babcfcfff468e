// Package sink persists a generated dataset into the POS Postgres schema.
// The write is all-or-nothing: one transaction covers the optional truncate,
// every batch insert and both derived-update passes.
package sink

import (
	"context"

	"github.com/rishiiv/team-62/internal/seeder"
)

// Sink accepts one full generation run. Implementations must be
// transactional: after an error the store looks untouched.
type Sink interface {
	Persist(ctx context.Context, ds *seeder.Dataset, truncate bool) error
	Close()
}

// Batch sizes per table, tuned to row width so no statement approaches the
// Postgres parameter limit.
const (
	customerPageSize  = 1000
	employeePageSize  = 1000
	itemPageSize      = 500
	inventoryPageSize = 500
	joinPageSize      = 500
	orderPageSize     = 2000
	linePageSize      = 5000
)
