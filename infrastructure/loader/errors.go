package loader

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNoInput indica que nenhum arquivo foi enviado
	ErrNoInput = errors.New("no input file supplied")
	// ErrNoRecords indica um arquivo com cabeçalho mas sem linhas de dados
	ErrNoRecords = errors.New("file has no data rows")
	// ErrEmptyFile indica um arquivo sem nem mesmo o cabeçalho
	ErrEmptyFile = errors.New("file is empty")
)

// MissingColumnError lista todas as colunas obrigatórias ausentes do cabeçalho
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// RowError descreve um valor inválido em uma linha do arquivo. Row é a linha do arquivo (cabeçalho = 1).
type RowError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %q (value %q): %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ReadError indica um arquivo que não pôde ser lido como CSV ou XLSX
type ReadError struct {
	Format Format
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unreadable %s file: %v", e.Format, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
