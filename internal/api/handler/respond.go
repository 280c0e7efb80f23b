package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-sync-agent/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// respondJSON escreve o envelope sempre com HTTP 200. Erros de validação e de
// upstream viajam no corpo do envelope, nunca como status 5xx.
func respondJSON(w http.ResponseWriter, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("handler: failed to encode response")
	}
}

func respondSuccess(w http.ResponseWriter, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["status"] = "success"

	respondJSON(w, payload)
}

func respondError(w http.ResponseWriter, message string) {
	respondJSON(w, map[string]any{
		"status":  "error",
		"message": message,
	})
}

func respondErrorWithDetails(w http.ResponseWriter, message, details string) {
	respondJSON(w, map[string]any{
		"status":        "error",
		"message":       message,
		"error_details": details,
	})
}

// errorParts separa um erro em mensagem curta e detalhe formatado. Erros da
// plataforma com envelope estruturado usam a mensagem original da API como
// parte curta e o texto "Meta API Error ..." como detalhe.
func errorParts(err error) (message, details string) {
	var upstreamErr *apiErrors.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.Code != 0 {
		return upstreamErr.Message, upstreamErr.Error()
	}

	return err.Error(), err.Error()
}
