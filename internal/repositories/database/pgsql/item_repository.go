package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	"github.com/stocklane/inventory_backend/internal/models"
	"github.com/stocklane/inventory_backend/internal/utils/mapping"
)

var pgDialect = goqu.Dialect("postgres")

const itemColumns = `item_id, ref_code, name, category, qty_on_hand, buy_price, sell_price, created_at, created_by, last_updated_at, last_updated_by`

type PgxItemRepository struct {
	BaseRepository
}

func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepository {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxItemRepository implements portsrepo.ItemRepository
var _ portsrepo.ItemRepository = (*PgxItemRepository)(nil)

func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.StockItem) error {
	m := mapping.ToModelStockItem(item)
	query := `
		INSERT INTO inventory_items (item_id, ref_code, name, category, qty_on_hand, buy_price, sell_price, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.RefCode,
		m.Name,
		m.Category,
		m.QtyOnHand,
		m.BuyPrice,
		m.SellPrice,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save stock item: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*models.StockItem, error) {
	var m models.StockItem
	err := row.Scan(
		&m.ItemID,
		&m.RefCode,
		&m.Name,
		&m.Category,
		&m.QtyOnHand,
		&m.BuyPrice,
		&m.SellPrice,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE item_id = $1;`
	m, err := scanItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock item by ID %s: %w", itemID, err)
	}
	d := mapping.ToDomainStockItem(*m)
	return &d, nil
}

// SearchItems builds the dynamic predicate with goqu and executes it on the
// pool. Substring terms OR across ref_code, name and category; the creation
// range bounds are inclusive.
func (r *PgxItemRepository) SearchItems(ctx context.Context, filter domain.ItemSearchFilter) ([]domain.StockItem, error) {
	ds := pgDialect.From("inventory_items").
		Select(
			goqu.I("item_id"), goqu.I("ref_code"), goqu.I("name"), goqu.I("category"),
			goqu.I("qty_on_hand"), goqu.I("buy_price"), goqu.I("sell_price"),
			goqu.I("created_at"), goqu.I("created_by"), goqu.I("last_updated_at"), goqu.I("last_updated_by"),
		)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		ds = ds.Where(goqu.Or(
			goqu.I("ref_code").ILike(pattern),
			goqu.I("name").ILike(pattern),
			goqu.I("category").ILike(pattern),
		))
	}
	if filter.CreatedFrom != nil {
		ds = ds.Where(goqu.I("created_at").Gte(*filter.CreatedFrom))
	}
	if filter.CreatedTo != nil {
		ds = ds.Where(goqu.I("created_at").Lte(*filter.CreatedTo))
	}

	ds = ds.Order(goqu.I("created_at").Desc())
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to build inventory search query", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query inventory items", err)
	}
	defer rows.Close()

	items := []models.StockItem{}
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan inventory item row", err)
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating inventory item rows", err)
	}

	return mapping.ToDomainStockItemSlice(items), nil
}

func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.StockItem) error {
	m := mapping.ToModelStockItem(item)
	query := `
		UPDATE inventory_items
		SET ref_code = $2,
		    name = $3,
		    category = $4,
		    qty_on_hand = $5,
		    buy_price = $6,
		    sell_price = $7,
		    last_updated_at = $8,
		    last_updated_by = $9
		WHERE item_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.RefCode,
		m.Name,
		m.Category,
		m.QtyOnHand,
		m.BuyPrice,
		m.SellPrice,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update stock item "+m.ItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("stock item " + m.ItemID + " not found for update")
	}
	return nil
}

func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	// Historical transaction lines keep their snapshots; nothing cascades.
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete stock item "+itemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("stock item " + itemID + " not found for delete")
	}
	return nil
}
