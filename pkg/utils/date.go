package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos de data aceitos nos payloads de snapshot (agente, planilha).
var periodLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/2006",
	"2006-01",
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParsePeriodDate interpreta a data de período de um snapshot em qualquer
// um dos formatos aceitos. Diferente de ParseDate, string vazia é erro:
// snapshot sem período não existe.
func ParsePeriodDate(dateStr string) (time.Time, error) {
	cleaned := strings.TrimSpace(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("data de período vazia")
	}

	for _, layout := range periodLayouts {
		if date, err := time.Parse(layout, cleaned); err == nil {
			return date.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("data de período inválida: %q", dateStr)
}
