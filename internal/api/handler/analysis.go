package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/smartvend/infrastructure/loader"
	"github.com/vfg2006/smartvend/internal/presentation"
	"github.com/vfg2006/smartvend/internal/usecases/analyzing"
	"github.com/vfg2006/smartvend/internal/usecases/forecasting"
	"github.com/vfg2006/smartvend/pkg/apiErrors"
	"github.com/vfg2006/smartvend/pkg/log"
	"github.com/vfg2006/smartvend/pkg/metrics"
)

// AnalyzeSales recebe o arquivo de vendas e devolve o relatório em JSON
func AnalyzeSales(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		src, closeSource, err := sourceFromRequest(r)
		defer closeSource()
		if err != nil {
			writeAnalysisError(w, logger, err)
			return
		}

		if src.Body == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, presentation.MissingInputWarning, nil)
			return
		}

		report, err := service.Analyze(r.Context(), metrics.SourceUpload, src)
		if err != nil {
			writeAnalysisError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, presentation.NewReportView(report), logger)
	})
}

func writeAnalysisError(w http.ResponseWriter, logger log.Logger, err error) {
	code, details := classifyAnalysisError(err)

	entry := logger.WithFields(log.Fields{
		"error":      err.Error(),
		"error_code": code,
	})
	if code == apiErrors.ErrInternalServer {
		entry.Error("analysis: falha ao processar arquivo")
		apiErrors.WriteError(w, code, "Unexpected error while processing the file", nil)
		return
	}

	entry.Warn("analysis: arquivo rejeitado")
	apiErrors.WriteError(w, code, errors.Cause(err).Error(), details)
}

// classifyAnalysisError associa os erros do pipeline aos códigos da API
func classifyAnalysisError(err error) (string, any) {
	var (
		tooLarge *http.MaxBytesError
		missing  *loader.MissingColumnError
		rowErr   *loader.RowError
		readErr  *loader.ReadError
		upload   *uploadError
	)

	switch {
	case errors.As(err, &tooLarge):
		return apiErrors.ErrPayloadTooLarge, map[string]int64{"limit_bytes": tooLarge.Limit}
	case errors.Is(err, loader.ErrNoInput):
		return apiErrors.ErrMissingRequiredData, nil
	case errors.As(err, &missing):
		return apiErrors.ErrMissingColumns, missing.Columns
	case errors.As(err, &rowErr):
		return apiErrors.ErrInvalidFormat, map[string]any{
			"row":    rowErr.Row,
			"column": rowErr.Column,
			"value":  rowErr.Value,
		}
	case errors.As(err, &readErr),
		errors.Is(err, loader.ErrEmptyFile),
		errors.Is(err, loader.ErrNoRecords):
		return apiErrors.ErrInvalidFormat, nil
	case errors.Is(err, forecasting.ErrInsufficientHistory):
		return apiErrors.ErrInsufficientHistory, nil
	case errors.As(err, &upload):
		return apiErrors.ErrInvalidRequest, nil
	default:
		return apiErrors.ErrInternalServer, nil
	}
}
