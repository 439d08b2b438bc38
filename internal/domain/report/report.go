package report

import (
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
)

type CustomerSummary struct {
	TotalCustomers int64   `json:"totalCustomers"`
	TotalBilled    float64 `json:"totalBilled"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalPending   float64 `json:"totalPending"`
}

type SupplierSummary struct {
	TotalSuppliers int64   `json:"totalSuppliers"`
	TotalPurchased float64 `json:"totalPurchased"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalPending   float64 `json:"totalPending"`
}

type BusinessSummary struct {
	TotalSales     float64 `json:"totalSales"`
	TotalPurchases float64 `json:"totalPurchases"`
	NetPosition    float64 `json:"netPosition"`
}

type OverallReport struct {
	CustomerSummary CustomerSummary `json:"customerSummary"`
	SupplierSummary SupplierSummary `json:"supplierSummary"`
	BusinessSummary BusinessSummary `json:"businessSummary"`
}

// SummarizeCustomers folds the full current sales-invoice set. No cached or
// incremental state: correctness depends on being handed every invoice.
func SummarizeCustomers(totalCustomers int64, invoices []*ledger.Invoice) CustomerSummary {
	summary := CustomerSummary{TotalCustomers: totalCustomers}
	for _, inv := range invoices {
		summary.TotalBilled += inv.TotalAmount
		summary.TotalPaid += inv.PaidAmount
		summary.TotalPending += inv.DueAmount
	}
	return summary
}

// SummarizeSuppliers is the purchase-side counterpart of SummarizeCustomers.
func SummarizeSuppliers(totalSuppliers int64, bills []*ledger.Invoice) SupplierSummary {
	summary := SupplierSummary{TotalSuppliers: totalSuppliers}
	for _, bill := range bills {
		summary.TotalPurchased += bill.TotalAmount
		summary.TotalPaid += bill.PaidAmount
		summary.TotalPending += bill.DueAmount
	}
	return summary
}

// BusinessPosition nets the two pipelines against each other.
func BusinessPosition(customers CustomerSummary, suppliers SupplierSummary) BusinessSummary {
	return BusinessSummary{
		TotalSales:     customers.TotalBilled,
		TotalPurchases: suppliers.TotalPurchased,
		NetPosition:    customers.TotalBilled - suppliers.TotalPurchased,
	}
}
