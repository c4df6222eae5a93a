package analyzing

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_analyzer.go -package=mocks

import (
	"context"

	"github.com/vfg2006/smartvend/infrastructure/loader"
	"github.com/vfg2006/smartvend/internal/domain"
)

// Analyzer executa o pipeline completo sobre um arquivo de vendas
type Analyzer interface {
	// Analyze carrega o arquivo e devolve métricas, agregados e a previsão de 7 dias.
	// origin identifica quem disparou a execução (upload ou scheduler) para as métricas.
	Analyze(ctx context.Context, origin string, src loader.Source) (*domain.AnalysisReport, error)
}
