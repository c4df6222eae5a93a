package domain

import "time"

// ForecastHorizonDays é a janela fixa de previsão após a última data observada
const ForecastHorizonDays = 7

// ForecastPoint é o valor previsto de vendas para uma data futura
type ForecastPoint struct {
	Date           time.Time
	PredictedSales float64
}

// TrendModel é a reta ajustada: vendas ≈ Slope·ordinal + Intercept
type TrendModel struct {
	Slope     float64
	Intercept float64
}

type Forecast struct {
	Model  TrendModel
	Points []ForecastPoint
}
