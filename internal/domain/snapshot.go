package domain

import (
	"time"
)

// SnapshotRow representa uma observação persistida dos KPIs de uma empresa
// em um período. O campo KPIs é um mapa aberto (JSONB no banco): os valores
// podem ser números, strings numéricas ou null, dependendo da origem
// (Stripe, Google Sheets ou o agente de insights).
type SnapshotRow struct {
	ID         string         `json:"id"`
	CompanyID  string         `json:"company_id"`
	PeriodDate time.Time      `json:"period_date"`
	KPIs       map[string]any `json:"kpis"`
	Source     string         `json:"source,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// SnapshotResponse é o payload consumido pelo dashboard: as linhas brutas
// mais o mapeamento de origem por métrica (repassado sem transformação).
type SnapshotResponse struct {
	OK      bool              `json:"ok"`
	Rows    []*SnapshotRow    `json:"rows"`
	Sources map[string]string `json:"sources,omitempty"`
}

// SnapshotFilters delimita o intervalo de períodos retornado pelo
// repositório de snapshots.
type SnapshotFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
