package analyzing

import (
	"github.com/vfg2006/smartvend/internal/domain"
)

// DeriveFeatures devolve uma cópia dos registros com sales_amount e profit calculados.
// Não valida sinais: a política de validação fica no loader.
func DeriveFeatures(records []domain.SalesRecord) []domain.SalesRecord {
	derived := make([]domain.SalesRecord, len(records))
	for i, record := range records {
		record.SalesAmount = record.Quantity.Mul(record.Price)
		record.Profit = record.Price.Sub(record.Cost).Mul(record.Quantity)
		derived[i] = record
	}
	return derived
}
