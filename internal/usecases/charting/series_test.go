package charting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farah2601/investor-plattform-sub002/internal/domain"
)

func snapshotRow(period string, kpis map[string]any, createdAt time.Time) *domain.SnapshotRow {
	date, _ := time.Parse("2006-01-02", period)
	return &domain.SnapshotRow{
		ID:         "snap-" + period,
		CompanyID:  "CMP001",
		PeriodDate: date,
		KPIs:       kpis,
		CreatedAt:  createdAt,
	}
}

func TestBuildDenseSeries_EndToEnd(t *testing.T) {
	// Cenário de ponta a ponta: duas observações com um mês de buraco no
	// meio viram três pontos, com nil explícito em fevereiro.
	base := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	rows := []*domain.SnapshotRow{
		snapshotRow("2024-01-15", map[string]any{"mrr": 1000}, base),
		snapshotRow("2024-03-10", map[string]any{"mrr": 1200}, base),
	}

	points := BuildDenseSeries(rows, "mrr", nil)

	require.Len(t, points, 3)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), points[0].Date)
	require.NotNil(t, points[0].Value)
	assert.Equal(t, 1000.0, *points[0].Value)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), points[1].Date)
	assert.Nil(t, points[1].Value)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), points[2].Date)
	require.NotNil(t, points[2].Value)
	assert.Equal(t, 1200.0, *points[2].Value)

	// Labels curtos de eixo; janeiro marca o ano.
	assert.Equal(t, "Jan 24", points[0].Label)
	assert.Equal(t, "Feb", points[1].Label)
	assert.Equal(t, "Mar", points[2].Label)

	// Nenhum ponto histórico carrega forecast.
	for _, p := range points {
		assert.Nil(t, p.Forecast)
	}
}

func TestBuildDenseSeries_MonotonicCompleteness(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []*domain.SnapshotRow{
		snapshotRow("2023-11-30", map[string]any{"mrr": 500}, base),
		snapshotRow("2024-06-01", map[string]any{"mrr": 900}, base),
		snapshotRow("2024-02-14", map[string]any{"mrr": 650}, base),
	}

	points := BuildDenseSeries(rows, "mrr", nil)

	// Nov/2023 até Jun/2024 inclusive: 8 meses.
	require.Len(t, points, 8)

	seen := make(map[time.Time]bool)
	for i, p := range points {
		assert.False(t, seen[p.Date], "mês duplicado: %s", p.Date)
		seen[p.Date] = true

		if i > 0 {
			assert.True(t, p.Date.After(points[i-1].Date), "série fora de ordem no índice %d", i)
			assert.Equal(t, addMonths(points[i-1].Date, 1), p.Date, "buraco na série no índice %d", i)
		}
	}
}

func TestBuildDenseSeries_DuplicateMonthCollapse(t *testing.T) {
	older := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rows     []*domain.SnapshotRow
		expected float64
	}{
		{
			name: "created_at mais recente vence",
			rows: []*domain.SnapshotRow{
				snapshotRow("2024-02-05", map[string]any{"mrr": 100}, newer),
				snapshotRow("2024-02-20", map[string]any{"mrr": 200}, older),
			},
			expected: 100,
		},
		{
			name: "empate de created_at resolve pelo period_date mais tardio",
			rows: []*domain.SnapshotRow{
				snapshotRow("2024-02-05", map[string]any{"mrr": 100}, older),
				snapshotRow("2024-02-25", map[string]any{"mrr": 300}, older),
			},
			expected: 300,
		},
		{
			name: "empate total favorece a posição mais tardia na entrada",
			rows: []*domain.SnapshotRow{
				snapshotRow("2024-02-10", map[string]any{"mrr": 100}, older),
				snapshotRow("2024-02-10", map[string]any{"mrr": 400}, older),
			},
			expected: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := BuildDenseSeries(tt.rows, "mrr", nil)

			require.Len(t, points, 1)
			require.NotNil(t, points[0].Value)
			assert.Equal(t, tt.expected, *points[0].Value)
		})
	}
}

func TestBuildDenseSeries_SanityGuards(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		rows   []*domain.SnapshotRow
		metric string
		opts   *SeriesOptions
	}{
		{
			name: "porcentagem fora do intervalo vira nil, nunca clamp",
			rows: []*domain.SnapshotRow{
				snapshotRow("2024-04-01", map[string]any{"growth_percent": 5000}, base),
			},
			metric: "growth",
			opts:   nil,
		},
		{
			name: "churn negativo é rejeitado por padrão",
			rows: []*domain.SnapshotRow{
				snapshotRow("2024-04-01", map[string]any{"churn_percent": -3.5}, base),
			},
			metric: "churn",
			opts:   nil,
		},
		{
			name: "mrr negativo é rejeitado com allow_negative false",
			rows: []*domain.SnapshotRow{
				snapshotRow("2024-04-01", map[string]any{"mrr": -10}, base),
			},
			metric: "mrr",
			opts:   &SeriesOptions{AllowNegative: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := BuildDenseSeries(tt.rows, tt.metric, tt.opts)

			require.Len(t, points, 1)
			assert.Nil(t, points[0].Value)
		})
	}
}

func TestBuildDenseSeries_NegativeAllowedWhenMetricPermits(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := []*domain.SnapshotRow{
		snapshotRow("2024-04-01", map[string]any{"growth_percent": -12.0}, base),
	}

	points := BuildDenseSeries(rows, "growth", nil)

	require.Len(t, points, 1)
	require.NotNil(t, points[0].Value)
	assert.Equal(t, -12.0, *points[0].Value)
}

func TestBuildDenseSeries_InvalidRows(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("linhas sem data parseável são ignoradas", func(t *testing.T) {
		rows := []*domain.SnapshotRow{
			{ID: "broken", KPIs: map[string]any{"mrr": 999}, CreatedAt: base},
			snapshotRow("2024-04-02", map[string]any{"mrr": 700}, base),
		}

		points := BuildDenseSeries(rows, "mrr", nil)

		require.Len(t, points, 1)
		require.NotNil(t, points[0].Value)
		assert.Equal(t, 700.0, *points[0].Value)
	})

	t.Run("entrada vazia produz série vazia", func(t *testing.T) {
		assert.Empty(t, BuildDenseSeries(nil, "mrr", nil))
		assert.Empty(t, BuildDenseSeries([]*domain.SnapshotRow{}, "mrr", nil))
	})

	t.Run("linha nil não derruba o builder", func(t *testing.T) {
		rows := []*domain.SnapshotRow{
			nil,
			snapshotRow("2024-04-02", map[string]any{"mrr": 700}, base),
		}

		points := BuildDenseSeries(rows, "mrr", nil)
		require.Len(t, points, 1)
	})
}

func TestBuildDenseSeries_Idempotence(t *testing.T) {
	base := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	rows := []*domain.SnapshotRow{
		snapshotRow("2024-01-15", map[string]any{"mrr": 1000, "growth_percent": "8%"}, base),
		snapshotRow("2024-03-10", map[string]any{"mrr": "1,200"}, base),
		snapshotRow("2024-06-30", map[string]any{"mrr": 1500}, base),
	}

	first := BuildDenseSeries(rows, "mrr", nil)
	second := BuildDenseSeries(rows, "mrr", nil)

	assert.Equal(t, first, second)
}
