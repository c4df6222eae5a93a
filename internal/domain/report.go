package domain

// PreviewSize é a quantidade de linhas exibidas na prévia do arquivo
const PreviewSize = 5

// AnalysisReport é o resultado completo de uma execução do pipeline
type AnalysisReport struct {
	RunID        string
	Summary      Summary
	ProductSales []ProductSales
	DailySales   []DailySales
	Forecast     Forecast
	Preview      []SalesRecord
}
