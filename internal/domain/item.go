package domain

import "time"

// LotInfo — партия товара внутри позиции склада.
// Собственного жизненного цикла не имеет, живёт внутри InventoryItem.
type LotInfo struct {
	LotNumber      string     `json:"lot_number"`
	Qty            int        `json:"qty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}

// InventoryItem — позиция склада в разрезе филиала.
// LeadTimeDays и LastPurchaseDate опциональны: nil означает "нет данных".
type InventoryItem struct {
	PartNumber       string     `json:"part_number"`
	SupplierSku      string     `json:"supplier_sku"`
	Description      string     `json:"description"`
	Branch           string     `json:"branch"`
	UOM              string     `json:"uom"`
	LeadTimeDays     *int       `json:"lead_time_days,omitempty"`
	LastPurchaseDate *time.Time `json:"last_purchase_date,omitempty"`
	Lots             []LotInfo  `json:"lots,omitempty"`
	AvailableQty     int        `json:"available_qty"`
}

// Clone — возвращает глубокую копию позиции, чтобы внешние изменения
// не отражались на данных внутри хранилища/кэша.
func (i *InventoryItem) Clone() *InventoryItem {
	if i == nil {
		return nil
	}
	cloned := *i
	if i.LeadTimeDays != nil {
		v := *i.LeadTimeDays
		cloned.LeadTimeDays = &v
	}
	if i.LastPurchaseDate != nil {
		t := *i.LastPurchaseDate
		cloned.LastPurchaseDate = &t
	}
	if i.Lots != nil {
		cloned.Lots = append([]LotInfo(nil), i.Lots...)
	}
	return &cloned
}

// CloneItems — копирует срез позиций (поэлементно, глубоко).
func CloneItems(items []InventoryItem) []InventoryItem {
	if items == nil {
		return nil
	}
	out := make([]InventoryItem, len(items))
	for idx := range items {
		out[idx] = *items[idx].Clone()
	}
	return out
}
