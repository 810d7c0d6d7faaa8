package charting

import (
	"math"
	"time"

	"github.com/farah2601/investor-plattform-sub002/internal/domain"
)

// Valores de porcentagem acima deste módulo são tratados como falha de
// extração (dado sujo na origem), nunca clampados.
const percentSanityBound = 1000

// SeriesOptions controla as regras de sanidade aplicadas pelo builder.
type SeriesOptions struct {
	// Percent indica que a série representa uma métrica percentual;
	// valores fora do intervalo são rejeitados como nil.
	Percent bool
	// AllowNegative libera valores negativos. Quando false, negativos
	// viram nil (guarda contra dado ruim, não transformação).
	AllowNegative bool
}

// DefaultSeriesOptions deriva as opções da tabela de métricas lógicas.
func DefaultSeriesOptions(metricKey string) SeriesOptions {
	def, ok := domain.LookupMetric(metricKey)
	if !ok {
		return SeriesOptions{AllowNegative: true}
	}

	return SeriesOptions{
		Percent:       def.Percent,
		AllowNegative: !def.NonNegative,
	}
}

// BuildDenseSeries materializa uma série mensal densa a partir de linhas de
// snapshot esparsas: exatamente um ChartPoint por mês-calendário entre o
// primeiro e o último period_date observados, em ordem crescente, com nil
// nos meses sem dado.
//
// Quando mais de uma linha cai no mesmo mês, vence a mais recente
// (created_at mais alto; empate resolvido pelo period_date mais tardio e,
// por fim, pela posição mais tardia no slice de entrada). Linhas com
// period_date zerado são ignoradas.
//
// A saída depende apenas da entrada: sem relógio, sem aleatoriedade.
func BuildDenseSeries(rows []*domain.SnapshotRow, metricKey string, opts *SeriesOptions) []domain.ChartPoint {
	options := DefaultSeriesOptions(metricKey)
	if opts != nil {
		options = *opts
	}

	byMonth := collapseByMonth(rows)
	if len(byMonth) == 0 {
		return []domain.ChartPoint{}
	}

	first, last := monthBounds(byMonth)

	points := make([]domain.ChartPoint, 0, monthsBetween(first, last)+1)
	for month := first; !month.After(last); month = addMonths(month, 1) {
		point := domain.ChartPoint{
			Date:  month,
			Label: monthLabel(month),
		}

		if row, ok := byMonth[month]; ok {
			point.Value = sanitize(ExtractKPINumber(row.KPIs, metricKey), options)
		}

		points = append(points, point)
	}

	return points
}

// collapseByMonth agrupa as linhas por mês-calendário aplicando a política
// de desempate "escrita mais recente vence".
func collapseByMonth(rows []*domain.SnapshotRow) map[time.Time]*domain.SnapshotRow {
	byMonth := make(map[time.Time]*domain.SnapshotRow)

	for _, row := range rows {
		if row == nil || row.PeriodDate.IsZero() {
			continue
		}

		month := monthStart(row.PeriodDate)
		current, exists := byMonth[month]
		if !exists || supersedes(row, current) {
			byMonth[month] = row
		}
	}

	return byMonth
}

// supersedes decide se candidate substitui current dentro do mesmo mês.
// Iteração posterior no slice chega aqui por último, então o empate total
// favorece a posição mais tardia na entrada.
func supersedes(candidate, current *domain.SnapshotRow) bool {
	if !candidate.CreatedAt.Equal(current.CreatedAt) {
		return candidate.CreatedAt.After(current.CreatedAt)
	}

	if !candidate.PeriodDate.Equal(current.PeriodDate) {
		return candidate.PeriodDate.After(current.PeriodDate)
	}

	return true
}

// sanitize aplica as guardas de sanidade da série sobre um valor extraído.
func sanitize(value *float64, opts SeriesOptions) *float64 {
	if value == nil {
		return nil
	}

	if opts.Percent && math.Abs(*value) > percentSanityBound {
		return nil
	}

	if !opts.AllowNegative && *value < 0 {
		return nil
	}

	return value
}

func monthBounds(byMonth map[time.Time]*domain.SnapshotRow) (first, last time.Time) {
	for month := range byMonth {
		if first.IsZero() || month.Before(first) {
			first = month
		}
		if last.IsZero() || month.After(last) {
			last = month
		}
	}
	return first, last
}

// monthStart normaliza uma data para o primeiro dia do mês em UTC, que é o
// identificador canônico de período das séries.
func monthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func addMonths(month time.Time, n int) time.Time {
	return time.Date(month.Year(), month.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
}

func monthsBetween(first, last time.Time) int {
	years := last.Year() - first.Year()
	return years*12 + int(last.Month()) - int(first.Month())
}

// monthLabel gera o rótulo curto de eixo. Janeiro carrega o ano para marcar
// a virada nos gráficos plurianuais.
func monthLabel(month time.Time) string {
	if month.Month() == time.January {
		return month.Format("Jan 06")
	}
	return month.Format("Jan")
}
