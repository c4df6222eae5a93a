package analyzing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/smartvend/internal/domain"
	"github.com/vfg2006/smartvend/pkg/utils"
)

// ProductSales soma sales_amount por produto, em ordem alfabética de produto
func ProductSales(records []domain.SalesRecord) []domain.ProductSales {
	totals := make(map[string]decimal.Decimal)
	for _, record := range records {
		totals[record.Product] = totals[record.Product].Add(record.SalesAmount)
	}

	result := make([]domain.ProductSales, 0, len(totals))
	for product, amount := range totals {
		result = append(result, domain.ProductSales{Product: product, SalesAmount: amount})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Product < result[j].Product
	})

	return result
}

// DailySales soma sales_amount por data do calendário, em ordem cronológica crescente
func DailySales(records []domain.SalesRecord) []domain.DailySales {
	totals := make(map[time.Time]decimal.Decimal)
	for _, record := range records {
		date := utils.TruncateToDay(record.Date)
		totals[date] = totals[date].Add(record.SalesAmount)
	}

	result := make([]domain.DailySales, 0, len(totals))
	for date, amount := range totals {
		result = append(result, domain.DailySales{Date: date, SalesAmount: amount})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	return result
}

// Summarize calcula os totais gerais de vendas e lucro
func Summarize(records []domain.SalesRecord) domain.Summary {
	summary := domain.Summary{RecordCount: len(records)}
	products := make(map[string]struct{})

	for i, record := range records {
		summary.TotalSales = summary.TotalSales.Add(record.SalesAmount)
		summary.TotalProfit = summary.TotalProfit.Add(record.Profit)
		products[record.Product] = struct{}{}

		if i == 0 || record.Date.Before(summary.FirstDate) {
			summary.FirstDate = record.Date
		}
		if i == 0 || record.Date.After(summary.LastDate) {
			summary.LastDate = record.Date
		}
	}

	summary.ProductCount = len(products)
	return summary
}
