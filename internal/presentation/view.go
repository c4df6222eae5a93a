// Package presentation transforma o relatório de análise em JSON e na página HTML do dashboard.
package presentation

import (
	"time"

	"github.com/vfg2006/smartvend/internal/domain"
	"github.com/vfg2006/smartvend/pkg/utils"
)

// ReportView é a representação do relatório servida pela API JSON
type ReportView struct {
	RunID        string             `json:"run_id"`
	Summary      SummaryView        `json:"summary"`
	ProductSales []ProductSalesView `json:"product_sales"`
	DailySales   []DailySalesView   `json:"daily_sales"`
	Forecast     ForecastView       `json:"forecast"`
	Preview      []SalesRecordView  `json:"preview"`
}

type SummaryView struct {
	TotalSales   float64 `json:"total_sales"`
	TotalProfit  float64 `json:"total_profit"`
	RecordCount  int     `json:"record_count"`
	ProductCount int     `json:"product_count"`
	FirstDate    string  `json:"first_date"`
	LastDate     string  `json:"last_date"`
}

type ProductSalesView struct {
	Product     string  `json:"product"`
	SalesAmount float64 `json:"sales_amount"`
}

type DailySalesView struct {
	Date        string  `json:"date"`
	SalesAmount float64 `json:"sales_amount"`
}

type ForecastPointView struct {
	Date           string  `json:"date"`
	PredictedSales float64 `json:"predicted_sales"`
}

type ForecastView struct {
	Slope     float64             `json:"slope"`
	Intercept float64             `json:"intercept"`
	Points    []ForecastPointView `json:"points"`
}

type SalesRecordView struct {
	Date        string  `json:"date"`
	Product     string  `json:"product"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	SalesAmount float64 `json:"sales_amount"`
	Profit      float64 `json:"profit"`
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// NewReportView converte os valores decimais do domínio. Totais são arredondados em duas casas;
// previsões e coeficientes seguem sem arredondamento.
func NewReportView(report *domain.AnalysisReport) ReportView {
	view := ReportView{
		RunID: report.RunID,
		Summary: SummaryView{
			TotalSales:   utils.RoundWithTwoDecimalPlace(report.Summary.TotalSales.InexactFloat64()),
			TotalProfit:  utils.RoundWithTwoDecimalPlace(report.Summary.TotalProfit.InexactFloat64()),
			RecordCount:  report.Summary.RecordCount,
			ProductCount: report.Summary.ProductCount,
			FirstDate:    formatDate(report.Summary.FirstDate),
			LastDate:     formatDate(report.Summary.LastDate),
		},
		ProductSales: make([]ProductSalesView, 0, len(report.ProductSales)),
		DailySales:   make([]DailySalesView, 0, len(report.DailySales)),
		Forecast: ForecastView{
			Slope:     report.Forecast.Model.Slope,
			Intercept: report.Forecast.Model.Intercept,
			Points:    make([]ForecastPointView, 0, len(report.Forecast.Points)),
		},
		Preview: make([]SalesRecordView, 0, len(report.Preview)),
	}

	for _, p := range report.ProductSales {
		view.ProductSales = append(view.ProductSales, ProductSalesView{
			Product:     p.Product,
			SalesAmount: p.SalesAmount.InexactFloat64(),
		})
	}

	for _, d := range report.DailySales {
		view.DailySales = append(view.DailySales, DailySalesView{
			Date:        formatDate(d.Date),
			SalesAmount: d.SalesAmount.InexactFloat64(),
		})
	}

	for _, p := range report.Forecast.Points {
		view.Forecast.Points = append(view.Forecast.Points, ForecastPointView{
			Date:           formatDate(p.Date),
			PredictedSales: p.PredictedSales,
		})
	}

	for _, r := range report.Preview {
		view.Preview = append(view.Preview, SalesRecordView{
			Date:        formatDate(r.Date),
			Product:     r.Product,
			Quantity:    r.Quantity.InexactFloat64(),
			Price:       r.Price.InexactFloat64(),
			Cost:        r.Cost.InexactFloat64(),
			SalesAmount: r.SalesAmount.InexactFloat64(),
			Profit:      r.Profit.InexactFloat64(),
		})
	}

	return view
}
