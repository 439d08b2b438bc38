package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/report"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
)

type fakeReportRepository struct {
	allInvoicesFn    func(ctx context.Context, pipeline ledger.Pipeline) ([]*ledger.Invoice, error)
	countCustomersFn func(ctx context.Context) (int64, error)
	countMerchantsFn func(ctx context.Context) (int64, error)
}

func (f *fakeReportRepository) AllInvoices(ctx context.Context, pipeline ledger.Pipeline) ([]*ledger.Invoice, error) {
	if f.allInvoicesFn != nil {
		return f.allInvoicesFn(ctx, pipeline)
	}
	return nil, nil
}

func (f *fakeReportRepository) CountCustomers(ctx context.Context) (int64, error) {
	if f.countCustomersFn != nil {
		return f.countCustomersFn(ctx)
	}
	return 0, nil
}

func (f *fakeReportRepository) CountMerchants(ctx context.Context) (int64, error) {
	if f.countMerchantsFn != nil {
		return f.countMerchantsFn(ctx)
	}
	return 0, nil
}

func invoice(total, paid, due float64) *ledger.Invoice {
	return &ledger.Invoice{TotalAmount: total, PaidAmount: paid, DueAmount: due}
}

func TestOverallReport(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepository{
		allInvoicesFn: func(ctx context.Context, pipeline ledger.Pipeline) ([]*ledger.Invoice, error) {
			if pipeline == ledger.PipelineSales {
				return []*ledger.Invoice{
					invoice(1000, 400, 600),
					invoice(500, 500, 0),
				}, nil
			}
			return []*ledger.Invoice{
				invoice(300, 100, 200),
			}, nil
		},
		countCustomersFn: func(ctx context.Context) (int64, error) { return 2, nil },
		countMerchantsFn: func(ctx context.Context) (int64, error) { return 1, nil },
	}
	svc := &report.Service{Repository: repo}

	overall, err := svc.Overall(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	customers := overall.CustomerSummary
	if customers.TotalCustomers != 2 || customers.TotalBilled != 1500 || customers.TotalPaid != 900 || customers.TotalPending != 600 {
		t.Errorf("customer summary: %+v", customers)
	}

	suppliers := overall.SupplierSummary
	if suppliers.TotalSuppliers != 1 || suppliers.TotalPurchased != 300 || suppliers.TotalPaid != 100 || suppliers.TotalPending != 200 {
		t.Errorf("supplier summary: %+v", suppliers)
	}

	business := overall.BusinessSummary
	if business.TotalSales != 1500 || business.TotalPurchases != 300 || business.NetPosition != 1200 {
		t.Errorf("business summary: %+v", business)
	}
}

func TestOverallReportEmptyBooks(t *testing.T) {
	t.Parallel()

	svc := &report.Service{Repository: &fakeReportRepository{}}

	overall, err := svc.Overall(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overall.BusinessSummary.NetPosition != 0 {
		t.Errorf("expected zero net position, got %v", overall.BusinessSummary.NetPosition)
	}
}

func TestReportWrapsRepositoryErrors(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepository{
		allInvoicesFn: func(ctx context.Context, pipeline ledger.Pipeline) ([]*ledger.Invoice, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := &report.Service{Repository: repo}

	_, err := svc.CustomerSummary(context.Background())
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "DATABASE_ERROR" {
		t.Fatalf("expected database error, got %v", err)
	}
}
