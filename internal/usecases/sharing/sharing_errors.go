package sharing

import "errors"

// Erros de compartilhamento de dashboard
var (
	// Erros de link de investidor
	ErrLinkNotFound = errors.New("link não encontrado")
	ErrLinkRevoked  = errors.New("link revogado pelo fundador")
	ErrLinkExpired  = errors.New("link expirado")

	// Erros de solicitação de acesso
	ErrRequestNotFound        = errors.New("solicitação de acesso não encontrada")
	ErrRequestAlreadyResolved = errors.New("solicitação de acesso já resolvida")
	ErrInvalidRequestStatus   = errors.New("status de solicitação inválido")
)
