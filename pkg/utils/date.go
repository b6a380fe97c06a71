package utils

import "time"

// ParseTimestamp aceita os formatos de data vistos nos webhooks: RFC3339 com ou
// sem fração de segundo e data pura (YYYY-MM-DD).
func ParseTimestamp(value string) (*time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		time.DateOnly,
	}

	var lastErr error
	for _, layout := range layouts {
		ts, err := time.Parse(layout, value)
		if err == nil {
			return &ts, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

// ISODate reduz um timestamp à data de calendário em UTC (YYYY-MM-DD)
func ISODate(ts time.Time) string {
	return ts.UTC().Format(time.DateOnly)
}

// ShortDateLabel converte uma data ISO (YYYY-MM-DD) para o rótulo curto usado
// nos gráficos, ex: "Jan 2". A entrada é devolvida intacta se não parsear.
func ShortDateLabel(isoDate string) string {
	ts, err := time.Parse(time.DateOnly, isoDate)
	if err != nil {
		return isoDate
	}
	return ts.Format("Jan 2")
}
