package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-sync-agent/pkg/apiErrors"
	"github.com/vfg2006/meta-sync-agent/pkg/log"
)

const (
	defaultCampaignLimit = 25
	testCampaignLimit    = 100
	hierarchyLimit       = 100

	defaultHierarchyDatePreset = "last_30d"
)

// GetMetaCampaigns lista as campanhas da conta, sem filhos
func GetMetaCampaigns(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("campaigns: fetching campaign list")

		campaigns, err := service.Campaigns(defaultCampaignLimit)
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to get campaigns")
			respondError(w, fmt.Sprintf("Failed to get campaigns: %s", err.Error()))
			return
		}

		respondSuccess(w, map[string]any{
			"data": campaigns,
		})
	})
}

// CreateMetaCampaign cria uma campanha nova na conta de anúncios
func CreateMetaCampaign(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input struct {
			Name      string `json:"name"`
			Objective string `json:"objective"`
			Status    string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).Warn("campaigns: invalid create campaign payload")
			respondError(w, "Invalid request body")
			return
		}

		if input.Objective == "" {
			input.Objective = "OUTCOME_TRAFFIC"
		}
		if input.Status == "" {
			input.Status = metadomain.StatusPaused
		}

		logger.WithFields(log.Fields{
			"name":      input.Name,
			"objective": input.Objective,
			"status":    input.Status,
		}).Info("campaigns: creating campaign")

		result, err := service.CreateCampaign(input.Name, input.Objective, input.Status)
		if err != nil {
			if apiErrors.IsValidation(err) {
				respondError(w, err.Error())
				return
			}

			logger.WithError(err).Error("campaigns: failed to create campaign")
			respondError(w, fmt.Sprintf("Failed to create campaign: %s", err.Error()))
			return
		}

		respondSuccess(w, map[string]any{
			"data": result,
		})
	})
}

// GetCampaignSubresource despacha o segmento dinâmico de /meta/campaigns/:id.
// Hoje o único subrecurso é "hierarchical"; qualquer outro valor é desconhecido.
func GetCampaignSubresource(service meta.Integrator) http.Handler {
	hierarchical := GetHierarchicalCampaigns(service)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httprouter.ParamsFromContext(r.Context()).ByName("id") != "hierarchical" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":"error","message":"route not found"}`))
			return
		}

		hierarchical.ServeHTTP(w, r)
	})
}

// GetHierarchicalCampaigns devolve a árvore campanha > conjunto > anúncio com
// um sumário de totais por nível
func GetHierarchicalCampaigns(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		datePreset := r.URL.Query().Get("date_preset")
		if datePreset == "" {
			datePreset = defaultHierarchyDatePreset
		}

		logger.WithField("date_preset", datePreset).Info("campaigns: fetching hierarchical campaigns")

		campaigns, err := service.CampaignHierarchy(hierarchyLimit, datePreset)
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to get hierarchical campaigns")
			respondError(w, fmt.Sprintf("Failed to get hierarchical campaigns: %s", err.Error()))
			return
		}

		totalAdSets := 0
		totalAds := 0
		for _, campaign := range campaigns {
			adSets := metadomain.ChildNodes(campaign, "ad_sets")
			totalAdSets += len(adSets)
			for _, adSet := range adSets {
				totalAds += len(metadomain.ChildNodes(adSet, "ads"))
			}
		}

		respondSuccess(w, map[string]any{
			"data": map[string]any{
				"campaigns": campaigns,
				"summary": map[string]any{
					"total_campaigns": len(campaigns),
					"total_ad_sets":   totalAdSets,
					"total_ads":       totalAds,
				},
				"last_updated": time.Now().UTC().Format(time.RFC3339),
			},
		})
	})
}

// TestHierarchicalStructure é um endpoint de diagnóstico que monta a árvore
// completa com campos selecionados e contadores por status
func TestHierarchicalStructure(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("campaigns: running hierarchical integration test")

		if !service.TestConnection() {
			respondError(w, "Meta API connection failed")
			return
		}

		accountInfo, err := service.AccountInfo()
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to get account info")
			respondErrorWithDetails(w, fmt.Sprintf("Meta API integration test failed: %s", err.Error()), err.Error())
			return
		}

		campaigns, err := service.CampaignHierarchy(testCampaignLimit, defaultHierarchyDatePreset)
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to get hierarchical campaigns")
			respondErrorWithDetails(w, fmt.Sprintf("Meta API integration test failed: %s", err.Error()), err.Error())
			return
		}

		summary := map[string]int{
			"total_campaigns":    len(campaigns),
			"total_ad_sets":      0,
			"total_ads":          0,
			"active_campaigns":   0,
			"paused_campaigns":   0,
			"archived_campaigns": 0,
		}

		displayCampaigns := make([]map[string]any, 0, len(campaigns))
		for _, campaign := range campaigns {
			switch campaign["effective_status"] {
			case metadomain.StatusActive:
				summary["active_campaigns"]++
			case metadomain.StatusPaused:
				summary["paused_campaigns"]++
			case metadomain.StatusArchived:
				summary["archived_campaigns"]++
			}

			adSets := metadomain.ChildNodes(campaign, "ad_sets")
			displayAdSets := make([]map[string]any, 0, len(adSets))
			for _, adSet := range adSets {
				summary["total_ad_sets"]++

				ads := metadomain.ChildNodes(adSet, "ads")
				displayAds := make([]map[string]any, 0, len(ads))
				for _, ad := range ads {
					summary["total_ads"]++

					displayAds = append(displayAds, map[string]any{
						"id":                  ad["id"],
						"name":                ad["name"],
						"status":              ad["status"],
						"effective_status":    ad["effective_status"],
						"creative":            ad["creative"],
						"performance_metrics": ad["performance_metrics"],
					})
				}

				displayAdSets = append(displayAdSets, map[string]any{
					"id":                  adSet["id"],
					"name":                adSet["name"],
					"status":              adSet["status"],
					"effective_status":    adSet["effective_status"],
					"daily_budget":        adSet["daily_budget"],
					"lifetime_budget":     adSet["lifetime_budget"],
					"optimization_goal":   adSet["optimization_goal"],
					"performance_metrics": adSet["performance_metrics"],
					"ads":                 displayAds,
				})
			}

			displayCampaigns = append(displayCampaigns, map[string]any{
				"id":                  campaign["id"],
				"name":                campaign["name"],
				"status":              campaign["status"],
				"effective_status":    campaign["effective_status"],
				"objective":           campaign["objective"],
				"daily_budget":        campaign["daily_budget"],
				"lifetime_budget":     campaign["lifetime_budget"],
				"performance_metrics": campaign["performance_metrics"],
				"ad_sets":             displayAdSets,
			})
		}

		respondSuccess(w, map[string]any{
			"message":      "Meta Marketing API Integration Test - SUCCESS",
			"account_info": accountInfo,
			"hierarchical_structure": map[string]any{
				"campaigns": displayCampaigns,
			},
			"summary": summary,
		})
	})
}

// TestSimpleCampaigns é um endpoint de diagnóstico que lista só as campanhas,
// sem dados aninhados, com contadores por status
func TestSimpleCampaigns(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("campaigns: running simple integration test")

		if !service.TestConnection() {
			respondError(w, "Meta API connection failed")
			return
		}

		accountInfo, err := service.AccountInfo()
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to get account info")
			respondErrorWithDetails(w, fmt.Sprintf("Meta API integration test failed: %s", err.Error()), err.Error())
			return
		}

		campaigns, err := service.Campaigns(testCampaignLimit)
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to get campaigns")
			respondErrorWithDetails(w, fmt.Sprintf("Meta API integration test failed: %s", err.Error()), err.Error())
			return
		}

		respondSuccess(w, map[string]any{
			"message":      "Meta Marketing API Integration Test - SUCCESS (Simple)",
			"account_info": accountInfo,
			"campaigns":    campaigns,
			"summary": map[string]any{
				"total_campaigns":    len(campaigns),
				"active_campaigns":   countByStatus(campaigns, metadomain.StatusActive),
				"paused_campaigns":   countByStatus(campaigns, metadomain.StatusPaused),
				"archived_campaigns": countByStatus(campaigns, metadomain.StatusArchived),
			},
		})
	})
}

func countByStatus(nodes []metadomain.RawNode, status string) int {
	count := 0
	for _, node := range nodes {
		if node["status"] == status {
			count++
		}
	}
	return count
}
