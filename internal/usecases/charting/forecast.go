package charting

import (
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
)

// Janela de pontos históricos não-nulos usada no cálculo da tendência.
// Uma janela de alguns meses evita que um pico isolado distorça a reta.
const forecastWindow = 6

// ForecastOptions controla a extensão de forecast de uma série densa.
type ForecastOptions struct {
	// MonthsAhead é a quantidade de meses projetados além do último ponto
	// da série.
	MonthsAhead int
	// AllowNegative libera projeções abaixo de zero. Quando false, o
	// forecast é travado no piso zero (métricas não-negativas como MRR,
	// ARR e burn nunca projetam valor negativo).
	AllowNegative bool
}

// DefaultForecastOptions deriva as opções da tabela de métricas lógicas.
func DefaultForecastOptions(metricKey string, monthsAhead int) ForecastOptions {
	def, ok := domain.LookupMetric(metricKey)
	if !ok {
		return ForecastOptions{MonthsAhead: monthsAhead, AllowNegative: true}
	}

	return ForecastOptions{
		MonthsAhead:   monthsAhead,
		AllowNegative: !def.NonNegative,
	}
}

// ExtendWithForecast estende uma série densa com uma projeção linear.
//
// O modelo é deliberadamente simples e auditável: mínimos quadrados sobre a
// janela dos últimos pontos históricos não-nulos (até forecastWindow),
// extrapolado a partir da âncora — o último ponto com valor real. A âncora
// recebe Forecast igual ao próprio valor histórico para que a linha
// projetada emende visualmente na linha histórica.
//
// Pontos projetados carregam apenas Forecast, nunca Value. Série sem nenhum
// valor histórico é retornada inalterada (não há de onde projetar).
func ExtendWithForecast(series []domain.ChartPoint, opts ForecastOptions) []domain.ChartPoint {
	if opts.MonthsAhead <= 0 {
		return series
	}

	anchorIdx := lastValueIndex(series)
	if anchorIdx < 0 {
		return series
	}

	slope := trendSlope(series, anchorIdx)
	anchorValue := *series[anchorIdx].Value

	extended := make([]domain.ChartPoint, len(series), len(series)+opts.MonthsAhead)
	copy(extended, series)

	// Ponte visual entre histórico e projeção.
	bridge := anchorValue
	extended[anchorIdx].Forecast = &bridge

	// Meses já presentes na série depois da âncora (linhas que existem mas
	// não trazem esta métrica) também recebem projeção.
	for i := anchorIdx + 1; i < len(extended); i++ {
		value := projection(anchorValue, slope, i-anchorIdx, opts)
		extended[i].Forecast = &value
	}

	lastDate := series[len(series)-1].Date
	for k := 1; k <= opts.MonthsAhead; k++ {
		date := addMonths(lastDate, k)
		value := projection(anchorValue, slope, len(series)-1-anchorIdx+k, opts)

		extended = append(extended, domain.ChartPoint{
			Date:     date,
			Label:    monthLabel(date),
			Forecast: &value,
		})
	}

	return extended
}

// lastValueIndex retorna o índice do último ponto histórico com valor
// não-nulo, ou -1 quando a série inteira é nula.
func lastValueIndex(series []domain.ChartPoint) int {
	for i := len(series) - 1; i >= 0; i-- {
		if series[i].Value != nil {
			return i
		}
	}
	return -1
}

// trendSlope calcula a inclinação mensal por mínimos quadrados sobre os
// últimos pontos não-nulos. Com um único ponto na janela a projeção é
// plana (inclinação zero).
func trendSlope(series []domain.ChartPoint, anchorIdx int) float64 {
	var xs, ys []float64
	for i := anchorIdx; i >= 0 && len(xs) < forecastWindow; i-- {
		if series[i].Value == nil {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, *series[i].Value)
	}

	if len(xs) < 2 {
		return 0
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(len(xs))
	meanY := sumY / float64(len(ys))

	var num, den float64
	for i := range xs {
		num += (xs[i] - meanX) * (ys[i] - meanY)
		den += (xs[i] - meanX) * (xs[i] - meanX)
	}

	if den == 0 {
		return 0
	}

	return num / den
}

func projection(anchor, slope float64, monthsOut int, opts ForecastOptions) float64 {
	value := anchor + slope*float64(monthsOut)
	if !opts.AllowNegative && value < 0 {
		return 0
	}
	return value
}
