package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos para a coluna de data, na ordem em que são tentados.
// Datas ambíguas são lidas como mês/dia; dia/mês só vale quando mês/dia é impossível (25/03/2024).
var dateLayouts = []string{
	time.DateOnly,
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"01-02-2006",
	"02-01-2006",
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
}

// ParseCalendarDate tenta todos os formatos conhecidos e devolve apenas a data do calendário (meia-noite UTC).
func ParseCalendarDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return TruncateToDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// TruncateToDay descarta hora e fuso, mantendo ano, mês e dia.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
