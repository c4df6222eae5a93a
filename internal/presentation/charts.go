package presentation

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartHeight = "380px"
	// Valor que o echarts interpreta como ausência de ponto na série
	missingPoint = "-"
)

func axisLabel(currency string) string {
	return fmt.Sprintf("Sales Amount (%s)", currency)
}

func productSalesChart(view ReportView, currency string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Product-wise Sales"}),
		charts.WithYAxisOpts(opts.YAxis{Name: axisLabel(currency)}),
	)

	products := make([]string, 0, len(view.ProductSales))
	data := make([]opts.BarData, 0, len(view.ProductSales))
	for _, p := range view.ProductSales {
		// o go-echarts grava as opções no <script> sem escapar HTML
		products = append(products, html.EscapeString(p.Product))
		data = append(data, opts.BarData{Value: p.SalesAmount})
	}

	bar.SetXAxis(products).AddSeries("Sales", data)
	return bar
}

func dailyTrendChart(view ReportView, currency string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Daily Sales Trend"}),
		charts.WithYAxisOpts(opts.YAxis{Name: axisLabel(currency)}),
	)

	dates := make([]string, 0, len(view.DailySales))
	data := make([]opts.LineData, 0, len(view.DailySales))
	for _, d := range view.DailySales {
		dates = append(dates, d.Date)
		data = append(data, opts.LineData{Value: d.SalesAmount})
	}

	line.SetXAxis(dates).AddSeries("Sales", data)
	return line
}

// forecastChart desenha histórico e previsão no mesmo eixo de datas; cada série fica vazia no trecho da outra.
func forecastChart(view ReportView, currency string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Sales Forecast (Next 7 Days)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: axisLabel(currency)}),
	)

	total := len(view.DailySales) + len(view.Forecast.Points)
	dates := make([]string, 0, total)
	historical := make([]opts.LineData, 0, total)
	predicted := make([]opts.LineData, 0, total)

	for _, d := range view.DailySales {
		dates = append(dates, d.Date)
		historical = append(historical, opts.LineData{Value: d.SalesAmount})
		predicted = append(predicted, opts.LineData{Value: missingPoint})
	}

	for _, p := range view.Forecast.Points {
		dates = append(dates, p.Date)
		historical = append(historical, opts.LineData{Value: missingPoint})
		predicted = append(predicted, opts.LineData{Value: p.PredictedSales})
	}

	line.SetXAxis(dates).
		AddSeries("Historical", historical).
		AddSeries("Forecast", predicted)
	return line
}

type chartRenderer interface {
	Render(w io.Writer) error
}

// renderChart gera o HTML completo do gráfico, exibido no dashboard dentro de um iframe
func renderChart(chart chartRenderer) (string, error) {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
