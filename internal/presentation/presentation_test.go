package presentation

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartvend/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func sampleReport() *domain.AnalysisReport {
	points := make([]domain.ForecastPoint, 0, domain.ForecastHorizonDays)
	for i := 0; i < domain.ForecastHorizonDays; i++ {
		points = append(points, domain.ForecastPoint{Date: day(3 + i), PredictedSales: 20 - 10*float64(i)})
	}

	return &domain.AnalysisReport{
		RunID: "abc123",
		Summary: domain.Summary{
			TotalSales:   decimal.RequireFromString("70.004"),
			TotalProfit:  decimal.NewFromInt(35),
			RecordCount:  3,
			ProductCount: 2,
			FirstDate:    day(1),
			LastDate:     day(2),
		},
		ProductSales: []domain.ProductSales{
			{Product: "A", SalesAmount: decimal.NewFromInt(50)},
			{Product: "B", SalesAmount: decimal.NewFromInt(20)},
		},
		DailySales: []domain.DailySales{
			{Date: day(1), SalesAmount: decimal.NewFromInt(40)},
			{Date: day(2), SalesAmount: decimal.NewFromInt(30)},
		},
		Forecast: domain.Forecast{
			Model:  domain.TrendModel{Slope: -10, Intercept: 7388880},
			Points: points,
		},
		Preview: []domain.SalesRecord{
			{
				Date:        day(1),
				Product:     "<b>A</b>",
				Quantity:    decimal.NewFromInt(2),
				Price:       decimal.NewFromInt(10),
				Cost:        decimal.NewFromInt(5),
				SalesAmount: decimal.NewFromInt(20),
				Profit:      decimal.NewFromInt(10),
			},
		},
	}
}

func TestNewReportView(t *testing.T) {
	view := NewReportView(sampleReport())

	assert.Equal(t, "abc123", view.RunID)
	assert.Equal(t, 70.0, view.Summary.TotalSales)
	assert.Equal(t, 35.0, view.Summary.TotalProfit)
	assert.Equal(t, "2024-01-01", view.Summary.FirstDate)
	assert.Equal(t, "2024-01-02", view.Summary.LastDate)

	require.Len(t, view.DailySales, 2)
	assert.Equal(t, DailySalesView{Date: "2024-01-01", SalesAmount: 40}, view.DailySales[0])

	require.Len(t, view.Forecast.Points, 7)
	assert.Equal(t, "2024-01-03", view.Forecast.Points[0].Date)
	assert.Equal(t, -40.0, view.Forecast.Points[6].PredictedSales)
	assert.Equal(t, -10.0, view.Forecast.Slope)

	require.Len(t, view.Preview, 1)
	assert.Equal(t, 20.0, view.Preview[0].SalesAmount)
}

func TestDashboard_Render(t *testing.T) {
	dashboard, err := NewDashboard("₹")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dashboard.Render(&buf, sampleReport()))
	page := buf.String()

	assert.Contains(t, page, "Dataset loaded successfully!")
	assert.Contains(t, page, "Total Sales (₹)")
	assert.Contains(t, page, "70.00")
	assert.Contains(t, page, "35.00")
	assert.Contains(t, page, "2024-01-09")
	assert.Contains(t, page, "-40.00")
	assert.Contains(t, page, "&lt;b&gt;A&lt;/b&gt;", "nome do produto deve ser escapado")
	assert.Contains(t, page, "<th>date</th><th>product</th><th>quantity</th><th>price</th><th>cost</th></tr>")
	assert.NotContains(t, page, "<th>sales_amount</th>", "a prévia mostra só as colunas do arquivo")
	assert.Equal(t, 3, strings.Count(page, "<iframe"))
	assert.Equal(t, 3, strings.Count(page, `sandbox="allow-scripts"`), "gráficos devem rodar em origem opaca")
	assert.Contains(t, page, `srcdoc="`)
	assert.NotContains(t, page, `srcdoc="<`, "HTML dos gráficos deve ser escapado no atributo")
	assert.NotContains(t, page, MissingInputWarning)
}

func TestDashboard_RenderUploadForm(t *testing.T) {
	dashboard, err := NewDashboard("₹")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dashboard.RenderUploadForm(&buf, MissingInputWarning, ""))
	page := buf.String()

	assert.Contains(t, page, `class="warning"`)
	assert.Contains(t, page, MissingInputWarning)
	assert.NotContains(t, page, "<iframe")
	assert.NotContains(t, page, "Business Summary")

	buf.Reset()
	require.NoError(t, dashboard.RenderUploadForm(&buf, "", "missing required columns: cost"))
	assert.Contains(t, buf.String(), `class="error"`)
	assert.Contains(t, buf.String(), "missing required columns: cost")
}

func TestCharts(t *testing.T) {
	view := NewReportView(sampleReport())

	for name, chart := range map[string]chartRenderer{
		"produtos":  productSalesChart(view, "₹"),
		"tendência": dailyTrendChart(view, "₹"),
		"previsão":  forecastChart(view, "₹"),
	} {
		t.Run(name, func(t *testing.T) {
			html, err := renderChart(chart)
			require.NoError(t, err)
			assert.Contains(t, html, "echarts")
			assert.Contains(t, html, "Sales Amount (₹)")
		})
	}
}

func TestProductSalesChart_EscapesProductNames(t *testing.T) {
	hostile := "</script><script>alert(1)</script>"

	report := sampleReport()
	report.ProductSales = []domain.ProductSales{
		{Product: hostile, SalesAmount: decimal.NewFromInt(10)},
		{Product: "Chai & Samosa", SalesAmount: decimal.NewFromInt(5)},
	}
	view := NewReportView(report)

	chartHTML, err := renderChart(productSalesChart(view, "₹"))
	require.NoError(t, err)

	assert.NotContains(t, chartHTML, hostile)
	assert.NotContains(t, chartHTML, "<script>alert(1)")
	assert.Contains(t, chartHTML, "&lt;/script&gt;&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, chartHTML, "Chai &amp; Samosa")

	dashboard, err := NewDashboard("₹")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dashboard.Render(&buf, report))
	assert.NotContains(t, buf.String(), hostile)
}
