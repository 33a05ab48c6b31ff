package utils

import "time"

// ParseDate aceita apenas datas no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}

// IsISODate verifica se a string é um dia de calendário válido (YYYY-MM-DD)
func IsISODate(dateStr string) bool {
	if len(dateStr) != len(time.DateOnly) {
		return false
	}
	_, err := ParseDate(dateStr)
	return err == nil
}

// DayOf retorna o dia de calendário do timestamp em milissegundos no fuso informado
func DayOf(timestampMs int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(timestampMs).In(loc).Format(time.DateOnly)
}
