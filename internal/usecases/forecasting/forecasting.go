// Package forecasting ajusta uma tendência linear às vendas diárias e projeta os próximos dias.
package forecasting

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/smartvend/internal/domain"
	"github.com/vfg2006/smartvend/pkg/utils"
	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientHistory é retornado quando há menos de dois dias distintos para ajustar a reta
var ErrInsufficientHistory = errors.New("at least two distinct days of sales are required to fit a trend")

const (
	secondsPerDay = 24 * 60 * 60
	// Ordinal de 1970-01-01 no calendário gregoriano proléptico, onde 0001-01-01 = 1
	unixEpochOrdinal = 719163
)

// Ordinal converte a data do calendário em número de dias com 0001-01-01 = 1.
// time.Duration não comporta o intervalo desde o ano 1, por isso a conta parte da época Unix.
func Ordinal(date time.Time) int64 {
	return utils.TruncateToDay(date).Unix()/secondsPerDay + unixEpochOrdinal
}

// Fit ajusta vendas ≈ Slope·ordinal + Intercept por mínimos quadrados ordinários
func Fit(series []domain.DailySales) (domain.TrendModel, error) {
	xs := make([]float64, 0, len(series))
	ys := make([]float64, 0, len(series))
	distinct := make(map[int64]struct{}, len(series))

	for _, point := range series {
		ordinal := Ordinal(point.Date)
		distinct[ordinal] = struct{}{}
		xs = append(xs, float64(ordinal))
		ys = append(ys, point.SalesAmount.InexactFloat64())
	}

	if len(distinct) < 2 {
		return domain.TrendModel{}, ErrInsufficientHistory
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsNaN(intercept) {
		return domain.TrendModel{}, errors.Errorf("forecasting: degenerate fit over %d days", len(distinct))
	}

	return domain.TrendModel{Slope: slope, Intercept: intercept}, nil
}

// Predict avalia a reta ajustada na data informada
func Predict(model domain.TrendModel, date time.Time) float64 {
	return model.Slope*float64(Ordinal(date)) + model.Intercept
}

// Forecast projeta os ForecastHorizonDays dias seguintes à última data observada.
// Previsões negativas não são cortadas.
func Forecast(series []domain.DailySales) (domain.Forecast, error) {
	model, err := Fit(series)
	if err != nil {
		return domain.Forecast{}, err
	}

	last := series[0].Date
	for _, point := range series[1:] {
		if point.Date.After(last) {
			last = point.Date
		}
	}
	last = utils.TruncateToDay(last)

	points := make([]domain.ForecastPoint, 0, domain.ForecastHorizonDays)
	for i := 1; i <= domain.ForecastHorizonDays; i++ {
		date := last.AddDate(0, 0, i)
		points = append(points, domain.ForecastPoint{
			Date:           date,
			PredictedSales: Predict(model, date),
		})
	}

	return domain.Forecast{Model: model, Points: points}, nil
}
