package loader

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/smartvend/internal/domain"
	"github.com/vfg2006/smartvend/pkg/utils"
)

// row é uma linha crua do arquivo com o número da linha original
type row struct {
	line   int
	fields []string
}

type dateParser func(value string) (time.Time, error)

// columnIndex mapeia o nome normalizado da coluna para a posição no cabeçalho
type columnIndex map[string]int

const byteOrderMark = "\ufeff"

// indexHeader normaliza o cabeçalho e reporta todas as colunas obrigatórias ausentes de uma vez.
// Colunas extras são ignoradas; em caso de nomes repetidos vale a primeira ocorrência.
func indexHeader(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, byteOrderMark)))
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}

	var missing []string
	for _, column := range domain.RequiredColumns {
		if _, ok := idx[column]; !ok {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}

	return idx, nil
}

func (c columnIndex) value(fields []string, column string) string {
	i := c[column]
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func (l *Loader) parseRow(idx columnIndex, r row, parseDate dateParser) (domain.SalesRecord, error) {
	var record domain.SalesRecord

	rawDate := idx.value(r.fields, domain.ColumnDate)
	date, err := parseDate(rawDate)
	if err != nil {
		return record, &RowError{Row: r.line, Column: domain.ColumnDate, Value: rawDate, Err: err}
	}
	record.Date = date
	record.Product = idx.value(r.fields, domain.ColumnProduct)

	numbers := []struct {
		column string
		target *decimal.Decimal
	}{
		{column: domain.ColumnQuantity, target: &record.Quantity},
		{column: domain.ColumnPrice, target: &record.Price},
		{column: domain.ColumnCost, target: &record.Cost},
	}

	for _, n := range numbers {
		raw := idx.value(r.fields, n.column)
		value, err := utils.ParseDecimal(raw)
		if err != nil {
			return record, &RowError{Row: r.line, Column: n.column, Value: raw, Err: err}
		}
		*n.target = value
	}

	if l.strict {
		if err := l.validateRecord(&record, r.line); err != nil {
			return record, err
		}
	}

	return record, nil
}
