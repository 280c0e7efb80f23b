package apiErrors

import (
	"errors"
	"fmt"
)

// ConfigError indica credenciais ou configuração ausentes/inválidas.
// Fatal na inicialização; em execução, fatal apenas para a tarefa de heartbeat.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuração inválida: %s", e.Reason)
}

func NewConfigError(reason string) *ConfigError {
	return &ConfigError{Reason: reason}
}

// ValidationError indica entrada inválida do chamador, rejeitada antes de
// qualquer chamada à API externa.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError representa qualquer falha ao falar com a API do Meta: resposta
// HTTP não-2xx ou falha de transporte. Quando a resposta carrega o envelope de
// erro estruturado da plataforma, Code/Subcode/Message são preenchidos.
type UpstreamError struct {
	StatusCode int
	Code       int
	Subcode    int
	Message    string
	RawBody    string
}

func (e *UpstreamError) Error() string {
	if e.Code != 0 {
		msg := fmt.Sprintf("Meta API Error %d: %s", e.Code, e.Message)
		if e.Subcode != 0 {
			msg += fmt.Sprintf(" (Subcode: %d)", e.Subcode)
		}
		return msg
	}

	if e.Message != "" {
		return e.Message
	}

	if e.RawBody != "" {
		return e.RawBody
	}

	return fmt.Sprintf("meta api: unexpected status %d", e.StatusCode)
}

// IsUpstream verifica se um erro (ou sua cadeia) é um UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsValidation verifica se um erro (ou sua cadeia) é um ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
