package engine

import "github.com/Gunvolt24/inventory_search/internal/domain"

// AggregatePeak — группирует позиции по филиалу и суммирует доступные количества.
// Позиции без филиала попадают в группу с пустым ключом.
// Порядок филиалов — порядок первого появления (для воспроизводимости).
func AggregatePeak(partNumber string, items []domain.InventoryItem) domain.PeakAvailability {
	index := make(map[string]int, len(items))
	branches := make([]domain.BranchQty, 0, len(items))
	total := 0

	for i := range items {
		branch := items[i].Branch
		qty := items[i].AvailableQty
		total += qty

		if pos, ok := index[branch]; ok {
			branches[pos].Qty += qty
			continue
		}
		index[branch] = len(branches)
		branches = append(branches, domain.BranchQty{Branch: branch, Qty: qty})
	}

	return domain.PeakAvailability{
		PartNumber:     partNumber,
		TotalAvailable: total,
		Branches:       branches,
	}
}
