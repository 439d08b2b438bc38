package infrastructure

import (
	"context"

	"gorm.io/gorm"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
)

// ReportRepository feeds the report aggregator with the full current invoice
// set of a pipeline. Reports re-scan on every call, so there is no caching
// here either.
type ReportRepository struct {
	DB *gorm.DB
}

func (r *ReportRepository) AllInvoices(ctx context.Context, pipeline ledger.Pipeline) ([]*ledger.Invoice, error) {
	var rows []invoiceDB
	err := r.DB.WithContext(ctx).
		Where("pipeline = ?", string(pipeline)).
		Order("issue_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*ledger.Invoice, 0, len(rows))
	for i := range rows {
		inv, err := toDomainInvoice(&rows[i])
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (r *ReportRepository) CountCustomers(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&customerDB{}).Count(&total).Error
	return total, err
}

func (r *ReportRepository) CountMerchants(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&merchantDB{}).Count(&total).Error
	return total, err
}
