package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/Gunvolt24/inventory_search/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ItemRepository удовлетворяет интерфейсу ItemRepository.
var _ ports.ItemRepository = (*ItemRepository)(nil)

// ItemRepository — реализация репозитория позиций склада на Postgres (pgxpool).
// Ключ позиции — пара (part_number, branch).
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository - конструктор ItemRepository.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepository { return &ItemRepository{pool: pool} }

// Save — транзакционно сохраняет позицию (идемпотентный upsert по ключу,
// партии заменяются целиком).
func (r *ItemRepository) Save(ctx context.Context, item *domain.InventoryItem) error {
	if item == nil || item.PartNumber == "" {
		return errors.New("item is empty or part_number is required")
	}
	if item.Branch == "" {
		return errors.New("branch is required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	// 1) inventory_items — upsert по (part_number, branch).
	if _, err = transaction.Exec(ctx, `
		INSERT INTO inventory_items (
			part_number, branch, supplier_sku, description, uom,
			available_qty, lead_time_days, last_purchase_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (part_number, branch) DO UPDATE SET
			supplier_sku = EXCLUDED.supplier_sku,
			description = EXCLUDED.description,
			uom = EXCLUDED.uom,
			available_qty = EXCLUDED.available_qty,
			lead_time_days = EXCLUDED.lead_time_days,
			last_purchase_date = EXCLUDED.last_purchase_date
	`,
		item.PartNumber, item.Branch, item.SupplierSku, item.Description, item.UOM,
		item.AvailableQty, item.LeadTimeDays, item.LastPurchaseDate,
	); err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}

	// 2) inventory_lots — replace: удаляем и вставляем список заново.
	if _, err = transaction.Exec(ctx, `
		DELETE FROM inventory_lots WHERE part_number = $1 AND branch = $2
	`, item.PartNumber, item.Branch); err != nil {
		return fmt.Errorf("delete lots: %w", err)
	}
	if len(item.Lots) > 0 {
		if err = copyLots(ctx, transaction, item.PartNumber, item.Branch, item.Lots); err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetAll — полный набор позиций со всеми партиями.
// Два запроса: базовые позиции + все партии, склейка в памяти с сохранением порядка.
func (r *ItemRepository) GetAll(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT part_number, branch, supplier_sku, description, uom,
			available_qty, lead_time_days, last_purchase_date
		FROM inventory_items
		ORDER BY part_number, branch
	`)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	items, byKey, err := scanItems(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []domain.InventoryItem{}, nil
	}

	lRows, err := r.pool.Query(ctx, `
		SELECT part_number, branch, lot_number, qty, expiration_date
		FROM inventory_lots
		ORDER BY part_number, branch, lot_number
	`)
	if err != nil {
		return nil, fmt.Errorf("select lots: %w", err)
	}
	defer lRows.Close()

	if err := attachLots(lRows, byKey); err != nil {
		return nil, err
	}

	out := make([]domain.InventoryItem, len(items))
	for i := range items {
		out[i] = *items[i]
	}
	return out, nil
}

// FindByPartNumber — позиции артикула по всем филиалам (без учёта регистра).
// Если артикул неизвестен, возвращает пустой срез.
func (r *ItemRepository) FindByPartNumber(ctx context.Context, partNumber string) ([]domain.InventoryItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT part_number, branch, supplier_sku, description, uom,
			available_qty, lead_time_days, last_purchase_date
		FROM inventory_items
		WHERE lower(part_number) = lower($1)
		ORDER BY branch
	`, partNumber)
	if err != nil {
		return nil, fmt.Errorf("select items by part_number: %w", err)
	}
	defer rows.Close()

	items, byKey, err := scanItems(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []domain.InventoryItem{}, nil
	}

	lRows, err := r.pool.Query(ctx, `
		SELECT part_number, branch, lot_number, qty, expiration_date
		FROM inventory_lots
		WHERE lower(part_number) = lower($1)
		ORDER BY branch, lot_number
	`, partNumber)
	if err != nil {
		return nil, fmt.Errorf("select lots by part_number: %w", err)
	}
	defer lRows.Close()

	if err := attachLots(lRows, byKey); err != nil {
		return nil, err
	}

	out := make([]domain.InventoryItem, len(items))
	for i := range items {
		out[i] = *items[i]
	}
	return out, nil
}
