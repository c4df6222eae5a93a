package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/smartvend/pkg/apiErrors"
	"github.com/vfg2006/smartvend/pkg/log"
)

// CronJobTypeReport é o único job agendado: a análise do arquivo configurado
const CronJobTypeReport = "report"

// ReportSyncer é a parte do agendador usada pelos handlers
type ReportSyncer interface {
	TriggerManualSync() bool
	Status() map[string]any
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(syncer ReportSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type is required", nil)
			return
		}

		if cronType != CronJobTypeReport {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: report", nil)
			return
		}

		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "report scheduler is not available", nil)
			return
		}

		started := syncer.TriggerManualSync()
		logger.WithFields(log.Fields{
			"type":    cronType,
			"started": started,
		}).Info("cron: execução manual solicitada")

		message := "Cron job started"
		if !started {
			message = "Cron job already running"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		}, logger)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(syncer ReportSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if syncer != nil {
			status[CronJobTypeReport] = syncer.Status()
		}

		writeJSON(w, http.StatusOK, status, log.ForContext(r.Context()))
	}
}
