package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextValue increments and returns the named counter in a single atomic
// statement. The first call for a name yields 1.
func (r *PgxSequenceRepository) NextValue(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO sequence_counters (name, value)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value;
	`
	var value int64
	if err := r.Pool.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance sequence %s: %w", name, err)
	}
	return value, nil
}
