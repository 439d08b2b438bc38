package ledger

// Reconcile recomputes the derived header fields of an invoice from the full
// current set of its line items and payments. It is the single place where the
// balance/status rules live; every item, payment, or header mutation must run
// it before the header is persisted.
//
// paidAmount is always the sum of the payments. totalAmount follows the
// pipeline policy:
//
//   - PURCHASE bills are strictly item-derived: the total is the sum of the
//     line items, zero when there are none.
//   - SALES invoices are item-derived once line items exist; an invoice with
//     no items keeps the total that was set directly on the header.
//
// dueAmount is total minus paid, floored at zero. Status is a pure function of
// (totalAmount, paidAmount): paid >= total resolves to PAID (including the
// zero/zero case), any positive paid below total is PARTIALLY_PAID, otherwise
// PENDING.
//
// Reconcile is idempotent: running it twice with unchanged children yields the
// same header both times.
func Reconcile(inv *Invoice, items []*LineItem, payments []*Payment) {
	paid := 0.0
	for _, p := range payments {
		paid += p.Amount
	}
	inv.PaidAmount = paid

	switch inv.Pipeline {
	case PipelinePurchase:
		inv.TotalAmount = sumItems(items)
	case PipelineSales:
		if len(items) > 0 {
			inv.TotalAmount = sumItems(items)
		}
	}

	inv.DueAmount = inv.TotalAmount - inv.PaidAmount
	if inv.DueAmount < 0 {
		inv.DueAmount = 0
	}

	switch {
	case inv.PaidAmount >= inv.TotalAmount:
		inv.Status = StatusPaid
	case inv.PaidAmount > 0:
		inv.Status = StatusPartiallyPaid
	default:
		inv.Status = StatusPending
	}
}

func sumItems(items []*LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Amount
	}
	return total
}
