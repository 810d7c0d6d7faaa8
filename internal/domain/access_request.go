package domain

import "time"

// Status possíveis de uma solicitação de acesso de investidor.
const (
	AccessRequestPending  = "pending"
	AccessRequestApproved = "approved"
	AccessRequestDenied   = "denied"
)

// AccessRequest é o pedido de um investidor para acessar o dashboard de uma
// empresa a partir de um link compartilhado (quando o link exige aprovação).
type AccessRequest struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	LinkID      string     `json:"link_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Message     *string    `json:"message,omitempty"`
	Status      string     `json:"status"`
	ResolvedBy  *int       `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Pending indica se a solicitação ainda aguarda decisão do fundador.
func (r *AccessRequest) Pending() bool {
	return r.Status == AccessRequestPending
}

// ResolveAccessRequest é o payload de aprovação/negação de uma solicitação.
type ResolveAccessRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
