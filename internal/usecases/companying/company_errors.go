package companying

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de empresas
var (
	// Erros de validação
	ErrCompanyIDRequired = errors.New("company ID is required")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrNameRequired      = errors.New("company name is required")
	ErrSlugTaken         = errors.New("company slug already in use")

	// Erros de serviços externos
	ErrStripeValidation = errors.New("error validating Stripe account")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrUpdateCompany     = errors.New("error updating company")

	// Erros de criação
	ErrGenerateID = errors.New("error generating company ID")
)

// CompanyError é um erro com contexto adicional para empresas
type CompanyError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	CompanyID string // ID da empresa envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CompanyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CompanyError) Unwrap() error {
	return e.Err
}

// NewCompanyError cria um novo erro de empresa
func NewCompanyError(baseErr error, code string, details string) *CompanyError {
	return &CompanyError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
