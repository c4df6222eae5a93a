package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSales é o total vendido de um produto
type ProductSales struct {
	Product     string
	SalesAmount decimal.Decimal
}

// DailySales é o total vendido em uma data do calendário
type DailySales struct {
	Date        time.Time
	SalesAmount decimal.Decimal
}

// Summary reúne as métricas gerais do arquivo
type Summary struct {
	TotalSales   decimal.Decimal
	TotalProfit  decimal.Decimal
	RecordCount  int
	ProductCount int
	FirstDate    time.Time
	LastDate     time.Time
}
