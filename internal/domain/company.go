package domain

import "time"

// Company representa uma empresa acompanhada no dashboard. Os campos de
// integração (Stripe e Google Sheets) ficam nulos até o fundador conectar
// a respectiva origem de dados.
type Company struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	OwnerUserID    int        `json:"owner_user_id"`
	Currency       string     `json:"currency"`
	StripeAccount  *string    `json:"stripe_account,omitempty"`
	SheetID        *string    `json:"sheet_id,omitempty"`
	SheetRange     *string    `json:"sheet_range,omitempty"`
	Active         bool       `json:"active"`
	LastSyncedAt   *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// HasStripe indica se a empresa tem a integração Stripe conectada.
func (c *Company) HasStripe() bool {
	return c.StripeAccount != nil && *c.StripeAccount != ""
}

// HasSheet indica se a empresa tem uma planilha de KPIs configurada.
func (c *Company) HasSheet() bool {
	return c.SheetID != nil && *c.SheetID != ""
}

// UpdateCompanyRequest é o payload parcial de atualização de empresa.
type UpdateCompanyRequest struct {
	ID            string  `json:"id"`
	Name          *string `json:"name"`
	Currency      *string `json:"currency"`
	StripeAccount *string `json:"stripe_account"`
	SheetID       *string `json:"sheet_id"`
	SheetRange    *string `json:"sheet_range"`
	Active        *bool   `json:"active"`
}
