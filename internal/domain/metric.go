package domain

// MetricDefinition descreve uma métrica lógica do dashboard: o nome
// canônico, os aliases aceitos no bag de KPIs e as regras de sanidade
// aplicadas na extração.
//
// A ordem dos aliases é a precedência de resolução: o nome mais específico
// vem primeiro e vence quando mais de um alias aparece no mesmo bag.
type MetricDefinition struct {
	Key         string
	Aliases     []string
	Percent     bool
	NonNegative bool
}

// Métricas lógicas conhecidas pelo dashboard. Métricas fora desta tabela
// ainda funcionam (lookup direto pela chave), mas sem aliases nem regras
// de sanidade específicas.
var metricDefinitions = []MetricDefinition{
	{
		Key:         "mrr",
		Aliases:     []string{"mrr", "monthly_recurring_revenue"},
		NonNegative: true,
	},
	{
		Key:         "arr",
		Aliases:     []string{"arr", "annual_recurring_revenue"},
		NonNegative: true,
	},
	{
		Key:     "growth",
		Aliases: []string{"mrr_growth_mom", "growth_percent", "growth"},
		Percent: true,
	},
	{
		Key:         "churn",
		Aliases:     []string{"churn_rate_percent", "churn_percent", "churn"},
		Percent:     true,
		NonNegative: true,
	},
	{
		Key:         "burn",
		Aliases:     []string{"monthly_burn", "burn_rate", "burn"},
		NonNegative: true,
	},
	{
		Key:     "runway",
		Aliases: []string{"runway_months", "runway"},
	},
	{
		Key:         "customers",
		Aliases:     []string{"active_customers", "customer_count", "customers"},
		NonNegative: true,
	},
	{
		Key:         "cash",
		Aliases:     []string{"cash_balance", "bank_balance", "cash"},
		NonNegative: true,
	},
	{
		Key:     "net_new_mrr",
		Aliases: []string{"net_new_mrr", "new_mrr"},
	},
}

var metricsByKey = func() map[string]MetricDefinition {
	m := make(map[string]MetricDefinition, len(metricDefinitions))
	for _, def := range metricDefinitions {
		m[def.Key] = def
		for _, alias := range def.Aliases {
			if _, exists := m[alias]; !exists {
				m[alias] = def
			}
		}
	}
	return m
}()

// LookupMetric resolve uma chave (nome canônico ou alias) para a definição
// da métrica lógica. O segundo retorno indica se a métrica é conhecida.
func LookupMetric(key string) (MetricDefinition, bool) {
	def, ok := metricsByKey[key]
	return def, ok
}

// MetricAliases retorna os aliases em ordem de precedência para uma chave.
// Para métricas desconhecidas, a própria chave é o único alias.
func MetricAliases(key string) []string {
	if def, ok := metricsByKey[key]; ok {
		return def.Aliases
	}
	return []string{key}
}

// KnownMetrics lista as métricas lógicas na ordem de exibição do dashboard.
func KnownMetrics() []MetricDefinition {
	out := make([]MetricDefinition, len(metricDefinitions))
	copy(out, metricDefinitions)
	return out
}
