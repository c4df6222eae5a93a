// Package scheduler contém o agendamento da análise periódica do arquivo de vendas
package scheduler

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/vfg2006/smartvend/infrastructure/loader"
	"github.com/vfg2006/smartvend/internal/config"
	"github.com/vfg2006/smartvend/internal/domain"
	"github.com/vfg2006/smartvend/internal/usecases/analyzing"
	"github.com/vfg2006/smartvend/pkg/log"
	"github.com/vfg2006/smartvend/pkg/metrics"
)

var (
	ErrSyncFileNotConfigured = errors.New("REPORT_SYNC_FILE is not configured")
	ErrSyncAlreadyRunning    = errors.New("report sync is already running")
)

type ReportSyncConfig struct {
	CronSchedule string
	File         string
	SyncEnabled  bool
}

// ReportSyncService reprocessa periodicamente o arquivo configurado e registra o relatório no log
type ReportSyncService struct {
	scheduler *gocron.Scheduler
	analyzer  analyzing.Analyzer
	config    ReportSyncConfig
	openFile  func(name string) (io.ReadCloser, error)

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastError           string
	lastSummary         *domain.Summary
}

func NewReportSyncService(analyzer analyzing.Analyzer, cfg *config.Config) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: cfg.ReportSync.CronSchedule, // Default: 7h da manhã todos os dias
		File:         cfg.ReportSync.File,
		SyncEnabled:  cfg.ReportSync.Enabled, // Default: desabilitado
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"file":          syncConfig.File,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatório carregada")

	return &ReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		analyzer:  analyzer,
		config:    syncConfig,
		openFile: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

// Start agenda o relatório e para o agendador quando ctx é cancelado
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Cron de relatório desabilitada por configuração")
		return nil
	}

	if s.config.File == "" {
		return ErrSyncFileNotConfigured
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		runCtx, _ := log.WithCorrelationID(ctx)
		if _, err := s.RunReport(runCtx); err != nil {
			log.ForContext(runCtx).WithError(err).Error("Erro na execução agendada do relatório")
		}
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar relatório")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando cron de relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReport analisa o arquivo configurado. Execuções sobrepostas retornam ErrSyncAlreadyRunning.
func (s *ReportSyncService) RunReport(ctx context.Context) (*domain.AnalysisReport, error) {
	if s.config.File == "" {
		return nil, ErrSyncFileNotConfigured
	}

	if !s.acquire() {
		return nil, ErrSyncAlreadyRunning
	}

	return s.runAcquired(ctx)
}

// acquire marca a execução como em andamento. Retorna false se outra já detém a marca.
func (s *ReportSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// runAcquired executa a análise; o chamador já deve ter obtido a marca via acquire
func (s *ReportSyncService) runAcquired(ctx context.Context) (*domain.AnalysisReport, error) {
	logger := log.ForContext(ctx)
	logger.WithField("file", s.config.File).Info("Iniciando relatório agendado")

	report, err := s.analyzeFile(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastRunID = report.RunID
		summary := report.Summary
		s.lastSummary = &summary
	}
	s.syncMutex.Unlock()

	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"run_id":         report.RunID,
		"record_count":   report.Summary.RecordCount,
		"total_sales":    report.Summary.TotalSales.StringFixed(2),
		"total_profit":   report.Summary.TotalProfit.StringFixed(2),
		"forecast_days":  len(report.Forecast.Points),
		"forecast_slope": report.Forecast.Model.Slope,
	}).Info("Relatório agendado concluído")

	return report, nil
}

func (s *ReportSyncService) analyzeFile(ctx context.Context) (*domain.AnalysisReport, error) {
	file, err := s.openFile(s.config.File)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", s.config.File)
	}
	defer file.Close()

	return s.analyzer.Analyze(ctx, metrics.SourceScheduler, loader.Source{
		Filename: filepath.Base(s.config.File),
		Body:     file,
	})
}

// TriggerManualSync dispara o relatório em background. Retorna false se já houver uma execução em andamento
// ou se nenhum arquivo estiver configurado.
func (s *ReportSyncService) TriggerManualSync() bool {
	if s.config.File == "" {
		log.L.WithError(ErrSyncFileNotConfigured).Warn("Relatório manual ignorado")
		return false
	}

	// a marca é obtida antes da goroutine para que dois disparos seguidos não iniciem duas execuções
	if !s.acquire() {
		log.L.Info("Relatório já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando relatório manual")

	go func() {
		ctx, _ := log.WithCorrelationID(context.Background())
		if _, err := s.runAcquired(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro na execução manual do relatório")
		}
	}()

	return true
}

// Status retorna o estado atual do agendador
func (s *ReportSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"file":                   s.config.File,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
	}

	if s.lastSummary != nil {
		status["last_total_sales"] = s.lastSummary.TotalSales.StringFixed(2)
		status["last_total_profit"] = s.lastSummary.TotalProfit.StringFixed(2)
		status["last_record_count"] = s.lastSummary.RecordCount
	}

	return status
}
