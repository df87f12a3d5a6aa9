package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/jackc/pgx/v5"
)

// itemKey — ключ позиции в рамках склейки строк item + lots.
type itemKey struct {
	partNumber string
	branch     string
}

// scanItems — читает базовые строки позиций; возвращает срез в порядке выдачи
// и индекс по ключу для последующей привязки партий.
func scanItems(rows pgx.Rows) ([]*domain.InventoryItem, map[itemKey]*domain.InventoryItem, error) {
	items := make([]*domain.InventoryItem, 0)
	byKey := make(map[itemKey]*domain.InventoryItem)

	for rows.Next() {
		item := &domain.InventoryItem{}
		if err := rows.Scan(
			&item.PartNumber, &item.Branch, &item.SupplierSku, &item.Description, &item.UOM,
			&item.AvailableQty, &item.LeadTimeDays, &item.LastPurchaseDate,
		); err != nil {
			return nil, nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
		byKey[itemKey{item.PartNumber, item.Branch}] = item
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("items rows: %w", err)
	}
	return items, byKey, nil
}

// attachLots — читает строки партий и раскладывает их по позициям из byKey.
func attachLots(rows pgx.Rows, byKey map[itemKey]*domain.InventoryItem) error {
	for rows.Next() {
		var (
			partNumber string
			branch     string
			lot        domain.LotInfo
		)
		if err := rows.Scan(&partNumber, &branch, &lot.LotNumber, &lot.Qty, &lot.ExpirationDate); err != nil {
			return fmt.Errorf("scan lot: %w", err)
		}
		if item, ok := byKey[itemKey{partNumber, branch}]; ok {
			item.Lots = append(item.Lots, lot)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("lots rows: %w", err)
	}
	return nil
}

// copyLots — вставка партий через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func copyLots(ctx context.Context, tx pgx.Tx, partNumber, branch string, lots []domain.LotInfo) error {
	rows := make([][]any, 0, len(lots))
	for _, lot := range lots {
		rows = append(rows, []any{partNumber, branch, lot.LotNumber, lot.Qty, lot.ExpirationDate})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"inventory_lots"},
		[]string{"part_number", "branch", "lot_number", "qty", "expiration_date"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy lots: %w", err)
	}
	return nil
}
