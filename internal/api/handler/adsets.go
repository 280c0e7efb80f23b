package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-sync-agent/pkg/log"
)

const childListLimit = 50

// GetCampaignAdSets lista os conjuntos de anúncios de uma campanha com um
// sumário por status
func GetCampaignAdSets(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		datePreset := r.URL.Query().Get("date_preset")
		if datePreset == "" {
			datePreset = defaultHierarchyDatePreset
		}

		logger.WithFields(log.Fields{
			"campaign_id": campaignID,
			"date_preset": datePreset,
		}).Info("adsets: fetching ad sets for campaign")

		if !service.TestConnection() {
			respondError(w, "Meta API connection failed")
			return
		}

		adSets, err := service.AdSetsByCampaign(campaignID, childListLimit, datePreset)
		if err != nil {
			logger.WithError(err).WithField("campaign_id", campaignID).Error("adsets: failed to get ad sets")
			respondErrorWithDetails(w,
				fmt.Sprintf("Failed to get ad sets for campaign %s: %s", campaignID, err.Error()),
				err.Error(),
			)
			return
		}

		respondSuccess(w, map[string]any{
			"message":     fmt.Sprintf("Ad sets for campaign %s", campaignID),
			"campaign_id": campaignID,
			"ad_sets":     adSets,
			"summary": map[string]any{
				"total_ad_sets":    len(adSets),
				"active_ad_sets":   countByStatus(adSets, metadomain.StatusActive),
				"paused_ad_sets":   countByStatus(adSets, metadomain.StatusPaused),
				"archived_ad_sets": countByStatus(adSets, metadomain.StatusArchived),
			},
		})
	})
}

// GetAdSetAds lista os anúncios de um conjunto com um sumário por status
func GetAdSetAds(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		adSetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("adset_id", adSetID).Info("adsets: fetching ads for ad set")

		if !service.TestConnection() {
			respondError(w, "Meta API connection failed")
			return
		}

		ads, err := service.AdsByAdSet(adSetID, childListLimit)
		if err != nil {
			logger.WithError(err).WithField("adset_id", adSetID).Error("adsets: failed to get ads")
			respondErrorWithDetails(w,
				fmt.Sprintf("Failed to get ads for ad set %s: %s", adSetID, err.Error()),
				err.Error(),
			)
			return
		}

		respondSuccess(w, map[string]any{
			"message":  fmt.Sprintf("Ads for ad set %s", adSetID),
			"adset_id": adSetID,
			"ads":      ads,
			"summary": map[string]any{
				"total_ads":    len(ads),
				"active_ads":   countByStatus(ads, metadomain.StatusActive),
				"paused_ads":   countByStatus(ads, metadomain.StatusPaused),
				"archived_ads": countByStatus(ads, metadomain.StatusArchived),
			},
		})
	})
}

// UpdateAdSetStatus altera o status de um conjunto de anúncios. A validação do
// status acontece antes de qualquer chamada de rede.
func UpdateAdSetStatus(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		adSetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).WithField("adset_id", adSetID).Warn("adsets: invalid status update payload")
			respondError(w, "Invalid request body")
			return
		}

		if input.Status == "" {
			respondError(w, "Status is required")
			return
		}
		if !metadomain.ValidAdSetStatus(input.Status) {
			respondError(w, "Invalid status. Must be ACTIVE, PAUSED, or ARCHIVED")
			return
		}

		if !service.TestConnection() {
			respondError(w, "Meta API connection failed")
			return
		}

		logger.WithFields(log.Fields{
			"adset_id": adSetID,
			"status":   input.Status,
		}).Info("adsets: updating ad set status")

		result, err := service.UpdateAdSetStatus(adSetID, input.Status)
		if err != nil {
			logger.WithError(err).WithField("adset_id", adSetID).Error("adsets: failed to update ad set status")

			message, details := errorParts(err)
			respondErrorWithDetails(w,
				fmt.Sprintf("Failed to update ad set %s status: %s", adSetID, message),
				details,
			)
			return
		}

		respondSuccess(w, map[string]any{
			"message":    fmt.Sprintf("Ad set %s status updated to %s", adSetID, input.Status),
			"adset_id":   adSetID,
			"new_status": input.Status,
			"data":       result,
		})
	})
}

// UpdateAdSetBudget altera o orçamento de um conjunto de anúncios. Pelo menos
// um dos campos de orçamento deve vir no corpo; valores em centavos.
func UpdateAdSetBudget(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		adSetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input struct {
			DailyBudget    *int `json:"daily_budget"`
			LifetimeBudget *int `json:"lifetime_budget"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).WithField("adset_id", adSetID).Warn("adsets: invalid budget update payload")
			respondError(w, "Invalid request body")
			return
		}

		if input.DailyBudget == nil && input.LifetimeBudget == nil {
			respondError(w, "At least one budget type (daily_budget or lifetime_budget) is required")
			return
		}

		if !service.TestConnection() {
			respondError(w, "Meta API connection failed")
			return
		}

		logger.WithFields(log.Fields{
			"adset_id":        adSetID,
			"daily_budget":    input.DailyBudget,
			"lifetime_budget": input.LifetimeBudget,
		}).Info("adsets: updating ad set budget")

		result, err := service.UpdateAdSetBudget(adSetID, input.DailyBudget, input.LifetimeBudget)
		if err != nil {
			logger.WithError(err).WithField("adset_id", adSetID).Error("adsets: failed to update ad set budget")

			message, details := errorParts(err)
			respondErrorWithDetails(w,
				fmt.Sprintf("Failed to update ad set %s budget: %s", adSetID, message),
				details,
			)
			return
		}

		respondSuccess(w, map[string]any{
			"message":         fmt.Sprintf("Ad set %s budget updated successfully", adSetID),
			"adset_id":        adSetID,
			"daily_budget":    input.DailyBudget,
			"lifetime_budget": input.LifetimeBudget,
			"data":            result,
		})
	})
}
