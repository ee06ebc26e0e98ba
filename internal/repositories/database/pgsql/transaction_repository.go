package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	"github.com/stocklane/inventory_backend/internal/models"
	"github.com/stocklane/inventory_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

type lockedItem struct {
	itemID    string
	qtyOnHand int64
	name      string
}

// lockItemsForUpdate locks the referenced inventory rows and returns them
// keyed by item ID. IDs that resolve to no row are simply absent from the map.
func (r *PgxTransactionRepository) lockItemsForUpdate(ctx context.Context, tx pgx.Tx, itemIDs []string) (map[string]lockedItem, error) {
	if len(itemIDs) == 0 {
		return map[string]lockedItem{}, nil
	}
	query := `
		SELECT item_id, name, qty_on_hand
		FROM inventory_items
		WHERE item_id = ANY($1)
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock inventory items for update", err)
	}
	defer rows.Close()

	locked := make(map[string]lockedItem, len(itemIDs))
	for rows.Next() {
		var li lockedItem
		if err := rows.Scan(&li.itemID, &li.name, &li.qtyOnHand); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked inventory item", err)
		}
		locked[li.itemID] = li
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked inventory items", err)
	}
	return locked, nil
}

// RecordTransaction writes the document and applies the stock deltas in one
// database transaction. Either everything lands or nothing does.
func (r *PgxTransactionRepository) RecordTransaction(ctx context.Context, txn domain.StockTransaction) (*domain.RecordResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	now := txn.CreatedAt
	userID := txn.CreatedBy

	// 1. Lock every referenced item. Deleted items come back absent and their
	// stock mutation is skipped rather than failing the document.
	itemIDs := make([]string, 0, len(txn.Lines))
	for _, line := range txn.Lines {
		itemIDs = append(itemIDs, line.ItemID)
	}
	locked, err := r.lockItemsForUpdate(ctx, tx, itemIDs)
	if err != nil {
		return nil, err
	}

	// 2. Aggregate deltas per item and verify the whole document is applicable
	// before any write. A sale that would take any line negative is rejected.
	deltas := make(map[string]int64)
	skippedSet := make(map[string]struct{})
	skipped := []string{}
	for _, line := range txn.Lines {
		if _, ok := locked[line.ItemID]; !ok {
			if _, seen := skippedSet[line.ItemID]; !seen {
				skippedSet[line.ItemID] = struct{}{}
				skipped = append(skipped, line.ItemID)
			}
			continue
		}
		deltas[line.ItemID] += line.QuantityDelta(txn.Kind)
	}
	if txn.Kind == domain.Sale {
		for itemID, delta := range deltas {
			li := locked[itemID]
			if li.qtyOnHand+delta < 0 {
				return nil, apperrors.NewAppError(400, "Insufficient stock for "+li.name, apperrors.ErrInsufficientStock)
			}
		}
	}

	// 3. Insert the transaction header.
	modelTxn := mapping.ToModelStockTransaction(txn)
	headerQuery := `
		INSERT INTO stock_transactions (
			transaction_id, doc_number, kind, counterparty, txn_date, total,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelTxn.TransactionID,
		modelTxn.DocNumber,
		modelTxn.Kind,
		modelTxn.Counterparty,
		modelTxn.TxnDate,
		modelTxn.Total,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert stock transaction "+modelTxn.TransactionID, err)
	}

	// 4. Insert the line snapshots. Skipped lines are stored too; only their
	// stock mutation is withheld.
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO stock_transaction_lines (line_id, transaction_id, item_id, name, unit_price, quantity, line_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for i, line := range txn.Lines {
		modelLine := mapping.ToModelTransactionLine(txn.TransactionID, i, line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.TransactionID,
			modelLine.ItemID,
			modelLine.Name,
			modelLine.UnitPrice,
			modelLine.Quantity,
			modelLine.LineNo,
		)
	}

	// 5. Apply the aggregated stock deltas.
	updateQuery := `
		UPDATE inventory_items
		SET qty_on_hand = qty_on_hand + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE item_id = $1;
	`
	for itemID, delta := range deltas {
		batch.Queue(updateQuery, itemID, delta, now, userID)
	}

	br := tx.SendBatch(ctx, batch)
	err = br.Close() // Important: Close the batch results to check for errors in each command
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to execute line batch for transaction "+modelTxn.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit stock transaction "+modelTxn.TransactionID, err)
	}

	return &domain.RecordResult{
		TransactionID:  txn.TransactionID,
		DocNumber:      txn.DocNumber,
		SkippedItemIDs: skipped,
	}, nil
}

// FindTransactionByID retrieves one transaction of the given kind with its lines.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, kind domain.TransactionKind, transactionID string) (*domain.StockTransaction, error) {
	query := `
		SELECT transaction_id, doc_number, kind, counterparty, txn_date, total,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM stock_transactions
		WHERE transaction_id = $1 AND kind = $2;
	`
	var m models.StockTransaction
	err := r.Pool.QueryRow(ctx, query, transactionID, string(kind)).Scan(
		&m.TransactionID,
		&m.DocNumber,
		&m.Kind,
		&m.Counterparty,
		&m.TxnDate,
		&m.Total,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find stock transaction by ID "+transactionID, err)
	}

	lines, err := r.findLinesByTransactionIDs(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainStockTransaction(m, lines[transactionID])
	return &d, nil
}

// ListTransactions returns every record of the kind, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, kind domain.TransactionKind) ([]domain.StockTransaction, error) {
	query := `
		SELECT transaction_id, doc_number, kind, counterparty, txn_date, total,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM stock_transactions
		WHERE kind = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, string(kind))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stock transactions", err)
	}
	defer rows.Close()

	headers := []models.StockTransaction{}
	ids := []string{}
	for rows.Next() {
		var m models.StockTransaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.DocNumber,
			&m.Kind,
			&m.Counterparty,
			&m.TxnDate,
			&m.Total,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock transaction row", err)
		}
		headers = append(headers, m)
		ids = append(ids, m.TransactionID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock transaction rows", err)
	}

	linesByTxn, err := r.findLinesByTransactionIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]domain.StockTransaction, 0, len(headers))
	for _, h := range headers {
		result = append(result, mapping.ToDomainStockTransaction(h, linesByTxn[h.TransactionID]))
	}
	return result, nil
}

func (r *PgxTransactionRepository) findLinesByTransactionIDs(ctx context.Context, transactionIDs []string) (map[string][]models.TransactionLine, error) {
	result := make(map[string][]models.TransactionLine, len(transactionIDs))
	if len(transactionIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT line_id, transaction_id, item_id, name, unit_price, quantity, line_no
		FROM stock_transaction_lines
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, line_no;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stock transaction lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.TransactionLine
		if err := rows.Scan(
			&m.LineID,
			&m.TransactionID,
			&m.ItemID,
			&m.Name,
			&m.UnitPrice,
			&m.Quantity,
			&m.LineNo,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock transaction line", err)
		}
		result[m.TransactionID] = append(result[m.TransactionID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock transaction lines", err)
	}
	return result, nil
}

// DeleteTransaction removes the document and its lines. Stock quantities are
// left untouched; a deletion is record keeping, not a reversal.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, kind domain.TransactionKind, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `DELETE FROM stock_transaction_lines WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of stock transaction "+transactionID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM stock_transactions WHERE transaction_id = $1 AND kind = $2;`, transactionID, string(kind))
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete stock transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("stock transaction " + transactionID + " not found for delete")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit deletion of stock transaction "+transactionID, err)
	}
	return nil
}

// DeleteAllTransactions wipes every purchase and sale record. Used when an
// account is deleted.
func (r *PgxTransactionRepository) DeleteAllTransactions(ctx context.Context) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM stock_transaction_lines;`); err != nil {
		return apperrors.NewAppError(500, "failed to delete stock transaction lines", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM stock_transactions;`); err != nil {
		return apperrors.NewAppError(500, "failed to delete stock transactions", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction wipe", err)
	}
	return nil
}
