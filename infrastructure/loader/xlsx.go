package loader

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/smartvend/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// readXLSX lê a primeira planilha com valores crus, para que datas cheguem como número serial do Excel.
func readXLSX(r io.Reader) ([]row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ReadError{Format: FormatXLSX, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	cells, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &ReadError{Format: FormatXLSX, Err: errors.Wrapf(err, "sheet %q", sheets[0])}
	}

	rows := make([]row, 0, len(cells))
	for i, fields := range cells {
		rows = append(rows, row{line: i + 1, fields: fields})
	}

	return rows, nil
}

// parseSpreadsheetDate aceita o número serial do Excel ou qualquer formato texto conhecido
func parseSpreadsheetDate(value string) (time.Time, error) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return utils.ParseCalendarDate(value)
	}

	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, err
	}

	return utils.TruncateToDay(date), nil
}
