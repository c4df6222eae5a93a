package handler

import (
	"bytes"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/smartvend/internal/presentation"
	"github.com/vfg2006/smartvend/internal/usecases/analyzing"
	"github.com/vfg2006/smartvend/pkg/apiErrors"
	"github.com/vfg2006/smartvend/pkg/log"
	"github.com/vfg2006/smartvend/pkg/metrics"
)

// UploadForm exibe a página inicial apenas com o formulário de upload
func UploadForm(dashboard *presentation.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeHTML(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
			return dashboard.RenderUploadForm(buf, "", "")
		})
	})
}

// Dashboard processa o arquivo enviado pelo formulário e exibe o relatório completo
func Dashboard(service analyzing.Analyzer, dashboard *presentation.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		src, closeSource, err := sourceFromRequest(r)
		defer closeSource()
		if err != nil {
			renderAnalysisError(w, r, dashboard, logger, err)
			return
		}

		if src.Body == nil {
			writeHTML(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
				return dashboard.RenderUploadForm(buf, presentation.MissingInputWarning, "")
			})
			return
		}

		report, err := service.Analyze(r.Context(), metrics.SourceUpload, src)
		if err != nil {
			renderAnalysisError(w, r, dashboard, logger, err)
			return
		}

		writeHTML(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
			return dashboard.Render(buf, report)
		})
	})
}

func renderAnalysisError(w http.ResponseWriter, r *http.Request, dashboard *presentation.Dashboard, logger log.Logger, err error) {
	code, _ := classifyAnalysisError(err)

	message := errors.Cause(err).Error()
	if code == apiErrors.ErrInternalServer {
		logger.WithError(err).Error("dashboard: falha ao processar arquivo")
		message = "Unexpected error while processing the file."
	} else {
		logger.WithFields(log.Fields{
			"error":      err.Error(),
			"error_code": code,
		}).Warn("dashboard: arquivo rejeitado")
	}

	writeHTML(w, r, apiErrors.StatusFor(code), func(buf *bytes.Buffer) error {
		return dashboard.RenderUploadForm(buf, "", message)
	})
}

// writeHTML renderiza em buffer para não enviar página pela metade se o template falhar
func writeHTML(w http.ResponseWriter, r *http.Request, status int, render func(buf *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao renderizar página")
		http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
