package aggregating

import "math"

// MovingAverage suaviza a série com média móvel. As primeiras window-1 posições
// repetem o valor original; as demais recebem a média arredondada da janela.
func MovingAverage(data []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}

	result := make([]float64, len(data))
	for i := range data {
		if i < window-1 {
			result[i] = data[i]
			continue
		}

		sum := 0.0
		for _, v := range data[i-window+1 : i+1] {
			sum += v
		}
		result[i] = math.Round(sum / float64(window))
	}
	return result
}

// BaselineForecast projeta a última média móvel pelos próximos days dias
func BaselineForecast(averages []float64, days int) []float64 {
	if len(averages) == 0 || days <= 0 {
		return []float64{}
	}

	last := averages[len(averages)-1]
	forecast := make([]float64, days)
	for i := range forecast {
		forecast[i] = last
	}
	return forecast
}
