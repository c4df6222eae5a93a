package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colunas obrigatórias do arquivo de vendas
const (
	ColumnDate     = "date"
	ColumnProduct  = "product"
	ColumnQuantity = "quantity"
	ColumnPrice    = "price"
	ColumnCost     = "cost"
)

// RequiredColumns lista as colunas na ordem em que aparecem no relatório de colunas ausentes
var RequiredColumns = []string{ColumnDate, ColumnProduct, ColumnQuantity, ColumnPrice, ColumnCost}

// SalesRecord representa uma linha do arquivo de vendas.
// SalesAmount e Profit são derivados e ficam zerados até DeriveFeatures.
type SalesRecord struct {
	Date     time.Time       `json:"date"`
	Product  string          `json:"product" validate:"required"`
	Quantity decimal.Decimal `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
	Cost     decimal.Decimal `json:"cost" validate:"gte=0"`

	SalesAmount decimal.Decimal `json:"sales_amount"`
	Profit      decimal.Decimal `json:"profit"`
}
