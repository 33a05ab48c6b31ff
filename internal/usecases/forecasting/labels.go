package forecasting

import (
	"time"

	"github.com/pkg/errors"
)

// FutureDateLabels devolve os n dias seguintes a lastDate (YYYY-MM-DD), em ordem
func FutureDateLabels(lastDate string, n int) ([]string, error) {
	last, err := time.Parse(time.DateOnly, lastDate)
	if err != nil {
		return nil, errors.Wrapf(err, "data histórica inválida: %q", lastDate)
	}

	labels := make([]string, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		labels = append(labels, last.AddDate(0, 0, i).Format(time.DateOnly))
	}
	return labels, nil
}

// DisplayLabel formata o dia para o eixo do gráfico ("Jan 11"). Datas inválidas voltam como vieram.
func DisplayLabel(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}
