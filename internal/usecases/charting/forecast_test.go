package charting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farah2601/investor-plattform-sub002/internal/domain"
)

func densePoint(year int, month time.Month, value *float64) domain.ChartPoint {
	date := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return domain.ChartPoint{
		Date:  date,
		Label: monthLabel(date),
		Value: value,
	}
}

func TestExtendWithForecast_Continuity(t *testing.T) {
	series := []domain.ChartPoint{
		densePoint(2024, time.January, floatPtr(1000)),
		densePoint(2024, time.February, nil),
		densePoint(2024, time.March, floatPtr(1200)),
	}

	extended := ExtendWithForecast(series, ForecastOptions{MonthsAhead: 2})

	require.Len(t, extended, 5)

	// A âncora (último ponto histórico) carrega forecast igual ao próprio
	// valor para a linha projetada emendar na histórica.
	require.NotNil(t, extended[2].Forecast)
	assert.Equal(t, 1200.0, *extended[2].Forecast)
	require.NotNil(t, extended[2].Value)
	assert.Equal(t, 1200.0, *extended[2].Value)

	// Tendência de 1000 → 1200 em dois meses: +100/mês.
	require.NotNil(t, extended[3].Forecast)
	assert.InDelta(t, 1300.0, *extended[3].Forecast, 1e-9)
	require.NotNil(t, extended[4].Forecast)
	assert.InDelta(t, 1400.0, *extended[4].Forecast, 1e-9)

	// Pontos projetados nunca carregam valor histórico.
	assert.Nil(t, extended[3].Value)
	assert.Nil(t, extended[4].Value)

	// Meses projetados seguem o calendário.
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), extended[3].Date)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), extended[4].Date)
}

func TestExtendWithForecast_FloorAtZero(t *testing.T) {
	// MRR em queda livre: a projeção trava no piso zero em vez de ficar
	// negativa.
	series := []domain.ChartPoint{
		densePoint(2024, time.January, floatPtr(300)),
		densePoint(2024, time.February, floatPtr(150)),
		densePoint(2024, time.March, floatPtr(10)),
	}

	extended := ExtendWithForecast(series, DefaultForecastOptions("mrr", 3))

	require.Len(t, extended, 6)
	for _, p := range extended[3:] {
		require.NotNil(t, p.Forecast)
		assert.GreaterOrEqual(t, *p.Forecast, 0.0)
	}
}

func TestExtendWithForecast_NegativeAllowedForGrowth(t *testing.T) {
	series := []domain.ChartPoint{
		densePoint(2024, time.January, floatPtr(4)),
		densePoint(2024, time.February, floatPtr(1)),
		densePoint(2024, time.March, floatPtr(-2)),
	}

	extended := ExtendWithForecast(series, DefaultForecastOptions("growth", 2))

	require.Len(t, extended, 5)
	require.NotNil(t, extended[4].Forecast)
	assert.Less(t, *extended[4].Forecast, 0.0)
}

func TestExtendWithForecast_AllNullSeriesUnchanged(t *testing.T) {
	series := []domain.ChartPoint{
		densePoint(2024, time.January, nil),
		densePoint(2024, time.February, nil),
	}

	extended := ExtendWithForecast(series, ForecastOptions{MonthsAhead: 3})

	assert.Equal(t, series, extended)
}

func TestExtendWithForecast_ZeroMonthsAhead(t *testing.T) {
	series := []domain.ChartPoint{
		densePoint(2024, time.January, floatPtr(100)),
	}

	assert.Equal(t, series, ExtendWithForecast(series, ForecastOptions{MonthsAhead: 0}))
}

func TestExtendWithForecast_SinglePointFlatProjection(t *testing.T) {
	series := []domain.ChartPoint{
		densePoint(2024, time.March, floatPtr(800)),
	}

	extended := ExtendWithForecast(series, ForecastOptions{MonthsAhead: 2})

	require.Len(t, extended, 3)
	require.NotNil(t, extended[1].Forecast)
	assert.Equal(t, 800.0, *extended[1].Forecast)
	require.NotNil(t, extended[2].Forecast)
	assert.Equal(t, 800.0, *extended[2].Forecast)
}

func TestExtendWithForecast_TrailingNullAfterAnchor(t *testing.T) {
	// O último mês da série existe mas não traz a métrica: ele também
	// recebe projeção para a linha não quebrar antes dos meses novos.
	series := []domain.ChartPoint{
		densePoint(2024, time.January, floatPtr(100)),
		densePoint(2024, time.February, floatPtr(200)),
		densePoint(2024, time.March, nil),
	}

	extended := ExtendWithForecast(series, ForecastOptions{MonthsAhead: 1, AllowNegative: true})

	require.Len(t, extended, 4)

	require.NotNil(t, extended[1].Forecast)
	assert.Equal(t, 200.0, *extended[1].Forecast)

	require.NotNil(t, extended[2].Forecast)
	assert.InDelta(t, 300.0, *extended[2].Forecast, 1e-9)
	assert.Nil(t, extended[2].Value)

	require.NotNil(t, extended[3].Forecast)
	assert.InDelta(t, 400.0, *extended[3].Forecast, 1e-9)
}

func TestExtendWithForecast_WindowIgnoresOldSpike(t *testing.T) {
	// Pico antigo fora da janela de seis pontos não distorce a tendência.
	series := []domain.ChartPoint{
		densePoint(2023, time.August, floatPtr(90000)),
		densePoint(2023, time.September, floatPtr(100)),
		densePoint(2023, time.October, floatPtr(110)),
		densePoint(2023, time.November, floatPtr(120)),
		densePoint(2023, time.December, floatPtr(130)),
		densePoint(2024, time.January, floatPtr(140)),
		densePoint(2024, time.February, floatPtr(150)),
	}

	extended := ExtendWithForecast(series, ForecastOptions{MonthsAhead: 1, AllowNegative: true})

	require.Len(t, extended, 8)
	require.NotNil(t, extended[7].Forecast)
	assert.InDelta(t, 160.0, *extended[7].Forecast, 1e-6)
}

func TestExtendWithForecast_DoesNotMutateInput(t *testing.T) {
	series := []domain.ChartPoint{
		densePoint(2024, time.January, floatPtr(100)),
		densePoint(2024, time.February, floatPtr(200)),
	}

	_ = ExtendWithForecast(series, ForecastOptions{MonthsAhead: 2})

	assert.Nil(t, series[0].Forecast)
	assert.Nil(t, series[1].Forecast)
	assert.Len(t, series, 2)
}
