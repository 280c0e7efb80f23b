package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-sync-agent/pkg/log"
)

const defaultInsightsDatePreset = "today"

// TestMetaConnection verifica a conectividade com a API do Meta
func TestMetaConnection(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("meta: testing connection to Marketing API")

		if !service.TestConnection() {
			respondError(w, "Meta API connection failed")
			return
		}

		respondSuccess(w, map[string]any{
			"message": "Meta API connection successful",
		})
	})
}

// GetMetaAccount devolve as informações do app configurado
func GetMetaAccount(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("meta: fetching app info")

		appInfo, err := service.AppInfo()
		if err != nil {
			logger.WithError(err).Error("meta: failed to get app info")
			respondError(w, fmt.Sprintf("Failed to get app info: %s", err.Error()))
			return
		}

		respondSuccess(w, map[string]any{
			"data": appInfo,
		})
	})
}

// GetMetaInsights devolve as métricas agregadas da conta para o período
func GetMetaInsights(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		datePreset := r.URL.Query().Get("date_preset")
		if datePreset == "" {
			datePreset = defaultInsightsDatePreset
		}

		logger.WithField("date_preset", datePreset).Info("meta: fetching account insights")

		insights, err := service.AccountInsights(datePreset)
		if err != nil {
			logger.WithError(err).Error("meta: failed to get account insights")
			respondError(w, fmt.Sprintf("Failed to get insights: %s", err.Error()))
			return
		}

		respondSuccess(w, map[string]any{
			"data": insights,
		})
	})
}
