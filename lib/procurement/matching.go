package procurement

import (
	"fmt"
	"strings"

	dbmodels "hrms-backend/models/db"
)

// MatchResult is the outcome of a three-way match between a supplier
// invoice, its purchase order and the goods received against that order.
type MatchResult struct {
	OK    bool
	Notes []string
}

func (r MatchResult) NotesText() string {
	return strings.Join(r.Notes, "; ")
}

// threeWayMatch checks every invoice line against the order and the summed
// receipts: the item must be ordered, the invoiced quantity must not exceed
// the received quantity, and the unit price must stay within tolerancePct
// of the ordered price.
func threeWayMatch(
	invoice *dbmodels.SupplierInvoice,
	order *dbmodels.PurchaseOrder,
	receipts []dbmodels.GoodsReceipt,
	tolerancePct float64,
) MatchResult {
	orderedPrice := map[string]float64{}
	for _, line := range order.Lines {
		orderedPrice[line.ItemCode] = line.UnitPrice
	}
	received := map[string]float64{}
	for _, receipt := range receipts {
		for _, line := range receipt.Lines {
			received[line.ItemCode] += line.Quantity
		}
	}

	result := MatchResult{OK: true}
	for _, line := range invoice.Lines {
		price, ordered := orderedPrice[line.ItemCode]
		if !ordered {
			result.OK = false
			result.Notes = append(result.Notes,
				fmt.Sprintf("item %s was not ordered", line.ItemCode))
			continue
		}
		if line.Quantity > received[line.ItemCode] {
			result.OK = false
			result.Notes = append(result.Notes,
				fmt.Sprintf("item %s: invoiced %.3f exceeds received %.3f",
					line.ItemCode, line.Quantity, received[line.ItemCode]))
		}
		if !priceWithinTolerance(line.UnitPrice, price, tolerancePct) {
			result.OK = false
			result.Notes = append(result.Notes,
				fmt.Sprintf("item %s: price %.2f deviates more than %.1f%% from ordered %.2f",
					line.ItemCode, line.UnitPrice, tolerancePct, price))
		}
	}
	return result
}

func priceWithinTolerance(invoiced, ordered, tolerancePct float64) bool {
	if ordered == 0 {
		return invoiced == 0
	}
	deviation := (invoiced - ordered) / ordered * 100
	if deviation < 0 {
		deviation = -deviation
	}
	return deviation <= tolerancePct
}
