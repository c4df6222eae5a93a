// Package analyzing contém o pipeline de análise: derivação de colunas, agregações e montagem do relatório.
package analyzing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/smartvend/infrastructure/loader"
	"github.com/vfg2006/smartvend/internal/domain"
	"github.com/vfg2006/smartvend/internal/usecases/forecasting"
	"github.com/vfg2006/smartvend/pkg/log"
	"github.com/vfg2006/smartvend/pkg/metrics"
	"github.com/vfg2006/smartvend/pkg/utils"
)

type Service struct {
	loader   loader.RecordLoader
	recorder metrics.Recorder
	newID    func() (string, error)
}

// NewService cria o serviço de análise. recorder pode ser nil.
func NewService(recordLoader loader.RecordLoader, recorder metrics.Recorder) Analyzer {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &Service{
		loader:   recordLoader,
		recorder: recorder,
		newID:    utils.GenerateID,
	}
}

func (s *Service) Analyze(ctx context.Context, origin string, src loader.Source) (*domain.AnalysisReport, error) {
	startedAt := time.Now()

	report, err := s.analyze(ctx, src)
	if err != nil {
		s.recorder.ObserveRun(origin, metrics.StatusFailure, 0, time.Since(startedAt))
		return nil, err
	}

	s.recorder.ObserveRun(origin, metrics.StatusSuccess, report.Summary.RecordCount, time.Since(startedAt))
	return report, nil
}

func (s *Service) analyze(ctx context.Context, src loader.Source) (*domain.AnalysisReport, error) {
	logger := log.ForContext(ctx)

	records, err := s.loader.Load(ctx, src)
	if err != nil {
		return nil, errors.WithMessage(err, "analyzing: loading sales file")
	}

	runID, err := s.newID()
	if err != nil {
		return nil, errors.Wrap(err, "analyzing: generating run id")
	}

	report, err := BuildReport(runID, records)
	if err != nil {
		logger.WithFields(log.Fields{
			"run_id":       runID,
			"record_count": len(records),
			"error":        err.Error(),
		}).Warn("analyzing: falha ao montar o relatório")
		return nil, err
	}

	logger.WithFields(log.Fields{
		"run_id":         runID,
		"record_count":   report.Summary.RecordCount,
		"forecast_slope": report.Forecast.Model.Slope,
	}).Info("analyzing: relatório gerado")

	return report, nil
}

// BuildReport executa as etapas puras do pipeline sobre registros já carregados
func BuildReport(runID string, records []domain.SalesRecord) (*domain.AnalysisReport, error) {
	derived := DeriveFeatures(records)
	daily := DailySales(derived)

	forecast, err := forecasting.Forecast(daily)
	if err != nil {
		return nil, errors.WithMessage(err, "analyzing: forecasting daily sales")
	}

	previewSize := domain.PreviewSize
	if len(derived) < previewSize {
		previewSize = len(derived)
	}

	return &domain.AnalysisReport{
		RunID:        runID,
		Summary:      Summarize(derived),
		ProductSales: ProductSales(derived),
		DailySales:   daily,
		Forecast:     forecast,
		Preview:      derived[:previewSize],
	}, nil
}
