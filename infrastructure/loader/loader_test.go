package loader

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartvend/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `date,product,quantity,price,cost
2024-01-01,A,2,10,5
2024-01-01,B,1,20,10
2024-01-02,A,3,10,5
`

func csvSource(body string) Source {
	return Source{Filename: "sales.csv", ContentType: "text/csv", Body: strings.NewReader(body)}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoader_Load_CSV(t *testing.T) {
	records, err := New(true).Load(context.Background(), csvSource(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.True(t, day(2024, 1, 1).Equal(records[0].Date))
	assert.Equal(t, "A", records[0].Product)
	assert.Equal(t, "2", records[0].Quantity.String())
	assert.Equal(t, "10", records[0].Price.String())
	assert.Equal(t, "5", records[0].Cost.String())

	assert.Equal(t, "B", records[1].Product)
	assert.True(t, day(2024, 1, 2).Equal(records[2].Date))
	assert.True(t, records[0].SalesAmount.IsZero(), "campos derivados só são preenchidos pelo analyzing")
}

func TestLoader_Load_HeaderNormalization(t *testing.T) {
	body := "\ufeff Date ,PRODUCT,Quantity,Price,Cost,notes\n" +
		"2024-02-10,Chai,\"1,000\",0.5,0.25,extra\n" +
		",,,,,\n" +
		"02/10/2024, Samosa ,4,12.5,7,\n"

	records, err := New(true).Load(context.Background(), csvSource(body))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1000", records[0].Quantity.String())
	assert.Equal(t, "Samosa", records[1].Product)
	assert.True(t, day(2024, 2, 10).Equal(records[1].Date))
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      Source
		strict   bool
		validate func(t *testing.T, err error)
	}{
		{
			name: "nenhum arquivo",
			src:  Source{},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoInput)
			},
		},
		{
			name: "csv com aspas quebradas",
			src:  csvSource("date,product,quantity,price,cost\n2024-01-01,\"A,2,10,5\n"),
			validate: func(t *testing.T, err error) {
				var readErr *ReadError
				require.True(t, errors.As(err, &readErr))
				assert.Equal(t, FormatCSV, readErr.Format)
			},
		},
		{
			name: "xlsx corrompido",
			src:  Source{Filename: "vendas.xlsx", Body: strings.NewReader("not a zip archive")},
			validate: func(t *testing.T, err error) {
				var readErr *ReadError
				require.True(t, errors.As(err, &readErr))
				assert.Equal(t, FormatXLSX, readErr.Format)
			},
		},
		{
			name: "arquivo vazio",
			src:  csvSource(""),
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyFile)
			},
		},
		{
			name: "somente cabeçalho",
			src:  csvSource("date,product,quantity,price,cost\n"),
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoRecords)
			},
		},
		{
			name: "todas as colunas ausentes são reportadas",
			src:  csvSource("date,product,qty\n2024-01-01,A,1\n"),
			validate: func(t *testing.T, err error) {
				var missing *MissingColumnError
				require.True(t, errors.As(err, &missing))
				assert.Equal(t, []string{"quantity", "price", "cost"}, missing.Columns)
			},
		},
		{
			name: "data inválida",
			src:  csvSource("date,product,quantity,price,cost\n2024-01-01,A,1,1,1\nontem,A,1,1,1\n"),
			validate: func(t *testing.T, err error) {
				var rowErr *RowError
				require.True(t, errors.As(err, &rowErr))
				assert.Equal(t, 3, rowErr.Row)
				assert.Equal(t, "date", rowErr.Column)
				assert.Equal(t, "ontem", rowErr.Value)
			},
		},
		{
			name: "número inválido",
			src:  csvSource("date,product,quantity,price,cost\n2024-01-01,A,1,dez,1\n"),
			validate: func(t *testing.T, err error) {
				var rowErr *RowError
				require.True(t, errors.As(err, &rowErr))
				assert.Equal(t, 2, rowErr.Row)
				assert.Equal(t, "price", rowErr.Column)
			},
		},
		{
			name:   "quantidade negativa com validação estrita",
			src:    csvSource("date,product,quantity,price,cost\n2024-01-01,A,-1,10,5\n"),
			strict: true,
			validate: func(t *testing.T, err error) {
				var rowErr *RowError
				require.True(t, errors.As(err, &rowErr))
				assert.Equal(t, "quantity", rowErr.Column)
				assert.Contains(t, rowErr.Error(), "greater than or equal to 0")
			},
		},
		{
			name:   "produto vazio com validação estrita",
			src:    csvSource("date,product,quantity,price,cost\n2024-01-01,,1,10,5\n"),
			strict: true,
			validate: func(t *testing.T, err error) {
				var rowErr *RowError
				require.True(t, errors.As(err, &rowErr))
				assert.Equal(t, "product", rowErr.Column)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := New(tt.strict).Load(context.Background(), tt.src)
			require.Error(t, err)
			assert.Nil(t, records)
			tt.validate(t, err)
		})
	}
}

func TestLoader_Load_LenientAcceptsNegatives(t *testing.T) {
	body := "date,product,quantity,price,cost\n2024-01-01,A,-1,10,15\n"

	records, err := New(false).Load(context.Background(), csvSource(body))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "-1", records[0].Quantity.String())
}

func TestLoader_Load_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(true).Load(ctx, csvSource(sampleCSV))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoader_Load_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"date", "product", "quantity", "price", "cost"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"2024-01-01", "A", 2, 10, 5}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"2024-01-01", "B", 1, 20, 10}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]interface{}{day(2024, 1, 2), "A", 3, 10, 5}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	src := Source{Filename: "sales.xlsx", Body: bytes.NewReader(buf.Bytes())}
	records, err := New(true).Load(context.Background(), src)
	require.NoError(t, err)

	fromCSV, err := New(true).Load(context.Background(), csvSource(sampleCSV))
	require.NoError(t, err)

	require.Len(t, records, len(fromCSV))
	for i := range records {
		assert.True(t, fromCSV[i].Date.Equal(records[i].Date), "linha %d", i)
		assert.Equal(t, fromCSV[i].Product, records[i].Product)
		assert.True(t, fromCSV[i].Quantity.Equal(records[i].Quantity))
		assert.True(t, fromCSV[i].Price.Equal(records[i].Price))
		assert.True(t, fromCSV[i].Cost.Equal(records[i].Cost))
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		want Format
	}{
		{name: "extensão csv", src: Source{Filename: "vendas.CSV"}, want: FormatCSV},
		{name: "extensão xlsx", src: Source{Filename: "vendas.xlsx"}, want: FormatXLSX},
		{name: "content type xlsx", src: Source{ContentType: xlsxContentType}, want: FormatXLSX},
		{name: "sem pistas", src: Source{}, want: FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.src))
		})
	}
}

func TestParseSpreadsheetDate(t *testing.T) {
	got, err := parseSpreadsheetDate("45292")
	require.NoError(t, err)
	assert.True(t, day(2024, 1, 1).Equal(got))

	got, err = parseSpreadsheetDate("2024-01-01")
	require.NoError(t, err)
	assert.True(t, day(2024, 1, 1).Equal(got))
}

func TestRequiredColumnsMatchDomain(t *testing.T) {
	_, err := indexHeader(domain.RequiredColumns)
	assert.NoError(t, err)
}
