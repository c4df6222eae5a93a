// Package loader converte o arquivo enviado pelo vendedor (CSV ou XLSX) em registros de venda tipados.
package loader

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/smartvend/internal/domain"
	"github.com/vfg2006/smartvend/pkg/log"
	"github.com/vfg2006/smartvend/pkg/utils"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Source é o arquivo recebido. Body nil significa que nada foi enviado.
type Source struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// RecordLoader é a interface usada pelo serviço de análise
type RecordLoader interface {
	Load(ctx context.Context, src Source) ([]domain.SalesRecord, error)
}

type Loader struct {
	validate *validator.Validate
	strict   bool
}

// New cria o loader. Com strictValidation, produto vazio e valores negativos rejeitam o arquivo.
func New(strictValidation bool) *Loader {
	return &Loader{
		validate: newValidator(),
		strict:   strictValidation,
	}
}

// DetectFormat decide o formato pela extensão e, na falta dela, pelo content type
func DetectFormat(src Source) Format {
	switch strings.ToLower(filepath.Ext(src.Filename)) {
	case ".xlsx":
		return FormatXLSX
	case ".csv", ".txt":
		return FormatCSV
	}

	if strings.HasPrefix(src.ContentType, xlsxContentType) {
		return FormatXLSX
	}

	return FormatCSV
}

// Load lê o arquivo inteiro e devolve os registros na ordem do arquivo.
// Falha no primeiro valor inválido; não há resultado parcial.
func (l *Loader) Load(ctx context.Context, src Source) ([]domain.SalesRecord, error) {
	if src.Body == nil {
		return nil, ErrNoInput
	}

	logger := log.ForContext(ctx)
	format := DetectFormat(src)

	var (
		rows      []row
		parseDate dateParser
		err       error
	)

	switch format {
	case FormatXLSX:
		rows, err = readXLSX(src.Body)
		parseDate = parseSpreadsheetDate
	default:
		rows, err = readCSV(src.Body)
		parseDate = utils.ParseCalendarDate
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	idx, err := indexHeader(rows[0].fields)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(rows)-1)
	for _, r := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if isBlank(r.fields) {
			continue
		}

		record, err := l.parseRow(idx, r, parseDate)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	logger.WithFields(log.Fields{
		"format":       string(format),
		"record_count": len(records),
		"filename":     src.Filename,
	}).Debug("loader: arquivo carregado")

	return records, nil
}
