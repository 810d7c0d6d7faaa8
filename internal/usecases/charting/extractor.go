package charting

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/farah2601/investor-plattform-sub002/internal/domain"
)

// ExtractKPINumber busca uma métrica no bag de KPIs de um snapshot e
// retorna o valor numérico normalizado, ou nil quando a métrica não existe
// ou o valor não é interpretável como número.
//
// A chave é resolvida através da tabela de aliases da métrica lógica
// (domain.MetricAliases): o primeiro alias presente no bag com valor
// numérico parseável vence. A ordem dos aliases é fixa (mais específico
// primeiro), então a resolução é determinística mesmo quando o mesmo bag
// carrega mais de um alias da mesma métrica.
//
// Nunca lança panic: bag ausente, chave ausente, string não numérica e
// NaN/Inf resultam em nil.
func ExtractKPINumber(kpis map[string]any, key string) *float64 {
	if len(kpis) == 0 || key == "" {
		return nil
	}

	for _, alias := range domain.MetricAliases(key) {
		raw, ok := kpis[alias]
		if !ok {
			continue
		}

		if value := coerceNumber(raw); value != nil {
			return value
		}
	}

	return nil
}

// coerceNumber converte um valor dinâmico do JSONB para float64. Strings
// numéricas são aceitas (com espaços, símbolo de porcentagem e separador de
// milhar tolerados); qualquer outra coisa vira nil.
func coerceNumber(raw any) *float64 {
	var value float64

	switch v := raw.(type) {
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int32:
		value = float64(v)
	case int64:
		value = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		value = parsed
	case string:
		cleaned := strings.TrimSpace(v)
		cleaned = strings.TrimSuffix(cleaned, "%")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		if cleaned == "" {
			return nil
		}

		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil
		}
		value = parsed
	default:
		return nil
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	return &value
}
