package domain

// SearchResult — страница результатов поиска.
// Total считается после фильтрации, но до пагинации.
type SearchResult struct {
	Total int             `json:"total"`
	Items []InventoryItem `json:"items"`
}

// BranchQty — количество по одному филиалу.
type BranchQty struct {
	Branch string `json:"branch"`
	Qty    int    `json:"qty"`
}

// PeakAvailability — суммарная доступность артикула по филиалам.
// Производное значение, нигде не хранится.
type PeakAvailability struct {
	PartNumber     string      `json:"part_number"`
	TotalAvailable int         `json:"total_available"`
	Branches       []BranchQty `json:"branches"`
}
