package presentation

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/smartvend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// MissingInputWarning é exibido quando o formulário é enviado sem arquivo
const MissingInputWarning = "Please upload a CSV file to continue."

// Dashboard renderiza a página única do SmartVend
type Dashboard struct {
	templates *template.Template
	currency  string
}

type pageData struct {
	Currency      string
	Warning       string
	Error         string
	Report        *ReportView
	ProductChart  string
	TrendChart    string
	ForecastChart string
}

func NewDashboard(currency string) (*Dashboard, error) {
	funcs := template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"number": func(v float64) string {
			return fmt.Sprintf("%g", v)
		},
	}

	tmpl, err := template.New("dashboard").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "presentation: parsing templates")
	}

	return &Dashboard{templates: tmpl, currency: currency}, nil
}

// RenderUploadForm exibe apenas o formulário, com um aviso ou erro opcional
func (d *Dashboard) RenderUploadForm(w io.Writer, warning, errMessage string) error {
	return d.execute(w, pageData{
		Currency: d.currency,
		Warning:  warning,
		Error:    errMessage,
	})
}

// Render exibe o relatório completo: prévia, métricas, gráficos e tabela de previsão
func (d *Dashboard) Render(w io.Writer, report *domain.AnalysisReport) error {
	view := NewReportView(report)

	productChart, err := renderChart(productSalesChart(view, d.currency))
	if err != nil {
		return errors.Wrap(err, "presentation: rendering product chart")
	}

	trendChart, err := renderChart(dailyTrendChart(view, d.currency))
	if err != nil {
		return errors.Wrap(err, "presentation: rendering trend chart")
	}

	forecastChart, err := renderChart(forecastChart(view, d.currency))
	if err != nil {
		return errors.Wrap(err, "presentation: rendering forecast chart")
	}

	return d.execute(w, pageData{
		Currency:      d.currency,
		Report:        &view,
		ProductChart:  productChart,
		TrendChart:    trendChart,
		ForecastChart: forecastChart,
	})
}

func (d *Dashboard) execute(w io.Writer, data pageData) error {
	if err := d.templates.ExecuteTemplate(w, "dashboard", data); err != nil {
		return errors.Wrap(err, "presentation: executing dashboard template")
	}
	return nil
}
