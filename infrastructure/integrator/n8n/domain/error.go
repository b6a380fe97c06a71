package n8ndomain

import "github.com/pkg/errors"

// Categorias de falha da integração com a plataforma de automação. Diferente
// dos feeds de analytics, estas falhas são operacionalmente críticas e sobem
// até o handler com a categoria preservada.
var (
	// ErrAuthentication indica API key ausente ou rejeitada (401/403)
	ErrAuthentication = errors.New("credenciais rejeitadas pela plataforma de automação")

	// ErrUpstreamServer indica erro interno na plataforma de automação (5xx)
	ErrUpstreamServer = errors.New("erro interno na plataforma de automação")

	// ErrMissingConfig indica base URL ou API key não configuradas
	ErrMissingConfig = errors.New("integração com a plataforma de automação não configurada")
)
