//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/inventory_search/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидной позиции склада
func MakeItem(opts ...func(*domain.InventoryItem)) domain.InventoryItem {
	pn := "PN-" + UniqSuffix()
	now := time.Now().UTC().Truncate(time.Second)
	lead := 5

	i := domain.InventoryItem{
		PartNumber:       pn,
		SupplierSku:      "SKU-" + UniqSuffix(),
		Description:      "Test part " + pn,
		Branch:           "A",
		UOM:              "ea",
		AvailableQty:     10,
		LeadTimeDays:     &lead,
		LastPurchaseDate: &now,
		Lots: []domain.LotInfo{
			{LotNumber: "LOT-" + UniqSuffix(), Qty: 10},
		},
	}

	for _, fn := range opts {
		fn(&i)
	}
	return i
}

func WithBranch(branch string) func(*domain.InventoryItem) {
	return func(i *domain.InventoryItem) { i.Branch = branch }
}

func WithPartNumber(pn string) func(*domain.InventoryItem) {
	return func(i *domain.InventoryItem) { i.PartNumber = pn }
}

func WithQty(qty int) func(*domain.InventoryItem) {
	return func(i *domain.InventoryItem) { i.AvailableQty = qty }
}

func WithLots(n int) func(*domain.InventoryItem) {
	return func(i *domain.InventoryItem) {
		i.Lots = make([]domain.LotInfo, 0, n)
		for k := 0; k < n; k++ {
			i.Lots = append(i.Lots, domain.LotInfo{
				LotNumber: "LOT-" + UniqSuffix(),
				Qty:       (k + 1) * 2,
			})
		}
	}
}

// Позиция без опциональных полей — для проверки NULL-колонок.
func WithoutOptionalFields() func(*domain.InventoryItem) {
	return func(i *domain.InventoryItem) {
		i.LeadTimeDays = nil
		i.LastPurchaseDate = nil
		i.Lots = nil
	}
}
