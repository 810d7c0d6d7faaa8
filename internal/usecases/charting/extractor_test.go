package charting

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKPINumber(t *testing.T) {
	tests := []struct {
		name     string
		kpis     map[string]any
		key      string
		expected *float64
	}{
		{
			name:     "bag nulo retorna nil",
			kpis:     nil,
			key:      "mrr",
			expected: nil,
		},
		{
			name:     "bag vazio retorna nil",
			kpis:     map[string]any{},
			key:      "mrr",
			expected: nil,
		},
		{
			name:     "string não numérica retorna nil",
			kpis:     map[string]any{"mrr": "abc"},
			key:      "mrr",
			expected: nil,
		},
		{
			name:     "número direto",
			kpis:     map[string]any{"mrr": 1250.5},
			key:      "mrr",
			expected: floatPtr(1250.5),
		},
		{
			name:     "inteiro é convertido",
			kpis:     map[string]any{"customers": 42},
			key:      "customers",
			expected: floatPtr(42),
		},
		{
			name:     "string numérica é parseada",
			kpis:     map[string]any{"mrr": "1200"},
			key:      "mrr",
			expected: floatPtr(1200),
		},
		{
			name:     "string com separador de milhar e espaços",
			kpis:     map[string]any{"arr": " 1,200,000 "},
			key:      "arr",
			expected: floatPtr(1200000),
		},
		{
			name:     "string percentual com símbolo",
			kpis:     map[string]any{"growth_percent": "12.5%"},
			key:      "growth",
			expected: floatPtr(12.5),
		},
		{
			name:     "json.Number é aceito",
			kpis:     map[string]any{"mrr": json.Number("980.25")},
			key:      "mrr",
			expected: floatPtr(980.25),
		},
		{
			name:     "alias growth_percent resolve growth",
			kpis:     map[string]any{"growth_percent": 5},
			key:      "growth",
			expected: floatPtr(5),
		},
		{
			name:     "alias mrr_growth_mom resolve growth",
			kpis:     map[string]any{"mrr_growth_mom": 5},
			key:      "growth",
			expected: floatPtr(5),
		},
		{
			name: "alias mais específico vence quando ambos presentes",
			kpis: map[string]any{
				"growth_percent": 3.0,
				"mrr_growth_mom": 7.0,
			},
			key:      "growth",
			expected: floatPtr(7),
		},
		{
			name: "alias com valor não parseável cai para o próximo",
			kpis: map[string]any{
				"mrr_growth_mom": "n/a",
				"growth_percent": 4.5,
			},
			key:      "growth",
			expected: floatPtr(4.5),
		},
		{
			name:     "métrica desconhecida usa a própria chave",
			kpis:     map[string]any{"nps": 62},
			key:      "nps",
			expected: floatPtr(62),
		},
		{
			name:     "NaN é rejeitado",
			kpis:     map[string]any{"mrr": math.NaN()},
			key:      "mrr",
			expected: nil,
		},
		{
			name:     "valor null no bag retorna nil",
			kpis:     map[string]any{"mrr": nil},
			key:      "mrr",
			expected: nil,
		},
		{
			name:     "booleano não é número",
			kpis:     map[string]any{"mrr": true},
			key:      "mrr",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractKPINumber(tt.kpis, tt.key)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.InDelta(t, *tt.expected, *result, 1e-9)
		})
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
