package checkout

import (
	"fmt"
	"strings"
)

// ConfigError means the create-flow cannot run with the current environment:
// required settings are missing or the access token is still the sample one.
type ConfigError struct {
	Missing []string
	Reason  string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("variáveis de ambiente obrigatórias não configuradas: %s",
			strings.Join(e.Missing, ", "))
	}
	return e.Reason
}

// ValidationError means the caller's item list cannot produce a preference.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// SessionError wraps a failure of the remote preference creation.
type SessionError struct {
	Err error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("falha ao criar preferência de pagamento: %v", e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }
