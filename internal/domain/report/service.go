package report

import (
	"context"

	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
)

type Repository interface {
	AllInvoices(ctx context.Context, pipeline ledger.Pipeline) ([]*ledger.Invoice, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountMerchants(ctx context.Context) (int64, error)
}

type Service struct {
	Repository Repository
}

func (s *Service) CustomerSummary(ctx context.Context) (CustomerSummary, error) {
	totalCustomers, err := s.Repository.CountCustomers(ctx)
	if err != nil {
		return CustomerSummary{}, appErrors.NewDatabaseError(err)
	}
	invoices, err := s.Repository.AllInvoices(ctx, ledger.PipelineSales)
	if err != nil {
		return CustomerSummary{}, appErrors.NewDatabaseError(err)
	}
	return SummarizeCustomers(totalCustomers, invoices), nil
}

func (s *Service) SupplierSummary(ctx context.Context) (SupplierSummary, error) {
	totalSuppliers, err := s.Repository.CountMerchants(ctx)
	if err != nil {
		return SupplierSummary{}, appErrors.NewDatabaseError(err)
	}
	bills, err := s.Repository.AllInvoices(ctx, ledger.PipelinePurchase)
	if err != nil {
		return SupplierSummary{}, appErrors.NewDatabaseError(err)
	}
	return SummarizeSuppliers(totalSuppliers, bills), nil
}

// Overall re-scans both pipelines on every call; the report path is a cold
// read path and carries no cached state.
func (s *Service) Overall(ctx context.Context) (*OverallReport, error) {
	customers, err := s.CustomerSummary(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.SupplierSummary(ctx)
	if err != nil {
		return nil, err
	}

	return &OverallReport{
		CustomerSummary: customers,
		SupplierSummary: suppliers,
		BusinessSummary: BusinessPosition(customers, suppliers),
	}, nil
}
