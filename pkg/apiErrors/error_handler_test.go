package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		details        any
		expectedStatus int
	}{
		{name: "arquivo ausente", code: ErrMissingRequiredData, expectedStatus: http.StatusBadRequest},
		{name: "colunas ausentes", code: ErrMissingColumns, details: []string{"cost"}, expectedStatus: http.StatusBadRequest},
		{name: "histórico insuficiente", code: ErrInsufficientHistory, expectedStatus: http.StatusUnprocessableEntity},
		{name: "código desconhecido", code: "XXX_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", tt.details)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("boom"), ErrInvalidFormat)
	assert.Equal(t, ErrInvalidFormat, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)

	apiErr = FromError(nil, ErrInvalidFormat)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
