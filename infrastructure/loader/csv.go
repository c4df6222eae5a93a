package loader

import (
	"encoding/csv"
	"io"
)

func readCSV(r io.Reader) ([]row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []row
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ReadError{Format: FormatCSV, Err: err}
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, row{line: line, fields: fields})
	}

	return rows, nil
}
