package domain

import "time"

// InvestorLink é um link compartilhável de acesso somente-leitura ao
// dashboard de uma empresa. O token é opaco (nanoid) e vai na URL pública.
type InvestorLink struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Token     string     `json:"token"`
	Label     string     `json:"label"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Revoked   bool       `json:"revoked"`
	ViewCount int        `json:"view_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Expired indica se o link passou da data de expiração.
func (l *InvestorLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}

// Usable indica se o link ainda pode ser aberto por um investidor.
func (l *InvestorLink) Usable(now time.Time) bool {
	return !l.Revoked && !l.Expired(now)
}

// SharedDashboard é a visão pública de uma empresa através de um link de
// investidor: snapshots prontos para gráfico, sem dados de conta.
type SharedDashboard struct {
	CompanyName string            `json:"company_name"`
	Currency    string            `json:"currency"`
	Rows        []*SnapshotRow    `json:"rows"`
	Sources     map[string]string `json:"sources,omitempty"`
}
