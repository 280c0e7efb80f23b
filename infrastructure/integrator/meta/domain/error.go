package metadomain

import (
	"encoding/json"
	"strings"

	"github.com/vfg2006/meta-sync-agent/pkg/apiErrors"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// UpstreamErrorFromBody monta um UpstreamError a partir de uma resposta
// não-2xx. Quando o corpo carrega o envelope de erro estruturado do Meta,
// código/subcódigo/mensagem são extraídos; senão o corpo cru é preservado.
func UpstreamErrorFromBody(statusCode int, body []byte) *apiErrors.UpstreamError {
	upstreamErr := &apiErrors.UpstreamError{
		StatusCode: statusCode,
		RawBody:    strings.TrimSpace(string(body)),
	}

	if len(body) == 0 {
		return upstreamErr
	}

	var response ErrorResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return upstreamErr
	}

	if response.Error.Code == 0 && response.Error.Message == "" {
		return upstreamErr
	}

	upstreamErr.Code = response.Error.Code
	upstreamErr.Subcode = response.Error.ErrorSubcode
	upstreamErr.Message = response.Error.Message

	return upstreamErr
}
