package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-sync-agent/pkg/log"
)

const ruleListLimit = 50

// CreateAutomatedRule cria uma regra automatizada que a plataforma avalia e
// executa por conta própria, conforme o schedule_spec
func CreateAutomatedRule(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input metadomain.AutomatedRuleInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).Warn("rules: invalid create rule payload")
			respondError(w, "Invalid request body")
			return
		}

		if input.Name == "" {
			respondError(w, "Rule name is required")
			return
		}
		if len(input.EvaluationSpec) == 0 || len(input.ExecutionSpec) == 0 {
			respondError(w, "evaluation_spec and execution_spec are required")
			return
		}
		if input.Status != "" && !metadomain.ValidRuleStatus(input.Status) {
			respondError(w, "Status must be ENABLED or DISABLED")
			return
		}

		if !service.TestConnection() {
			respondError(w, "Meta API connection failed")
			return
		}

		logger.WithField("rule_name", input.Name).Info("rules: creating automated rule")

		result, err := service.CreateRule(input)
		if err != nil {
			logger.WithError(err).WithField("rule_name", input.Name).Error("rules: failed to create automated rule")

			message, details := errorParts(err)
			respondErrorWithDetails(w,
				fmt.Sprintf("Failed to create automated rule: %s", message),
				details,
			)
			return
		}

		respondSuccess(w, map[string]any{
			"message": fmt.Sprintf("Automated rule '%s' created successfully", input.Name),
			"data":    result,
		})
	})
}

// GetAutomatedRules lista as regras automatizadas da conta
func GetAutomatedRules(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("rules: fetching automated rules")

		if !service.TestConnection() {
			respondError(w, "Meta API connection failed")
			return
		}

		rules, err := service.Rules(ruleListLimit)
		if err != nil {
			logger.WithError(err).Error("rules: failed to get automated rules")
			respondError(w, fmt.Sprintf("Failed to get automated rules: %s", err.Error()))
			return
		}

		respondSuccess(w, map[string]any{
			"rules": rules,
			"count": len(rules),
		})
	})
}

// DeleteAutomatedRule remove uma regra automatizada da conta
func DeleteAutomatedRule(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ruleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("rule_id", ruleID).Info("rules: deleting automated rule")

		if !service.TestConnection() {
			respondError(w, "Meta API connection failed")
			return
		}

		result, err := service.DeleteRule(ruleID)
		if err != nil {
			logger.WithError(err).WithField("rule_id", ruleID).Error("rules: failed to delete automated rule")
			respondError(w, fmt.Sprintf("Failed to delete automated rule: %s", err.Error()))
			return
		}

		respondSuccess(w, map[string]any{
			"message": fmt.Sprintf("Automated rule %s deleted successfully", ruleID),
			"data":    result,
		})
	})
}

// UpdateAutomatedRuleStatus habilita ou desabilita uma regra automatizada. A
// validação do status acontece antes de qualquer chamada de rede.
func UpdateAutomatedRuleStatus(service meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ruleID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).WithField("rule_id", ruleID).Warn("rules: invalid status update payload")
			respondError(w, "Invalid request body")
			return
		}

		if !metadomain.ValidRuleStatus(input.Status) {
			respondError(w, "Status must be ENABLED or DISABLED")
			return
		}

		if !service.TestConnection() {
			respondError(w, "Meta API connection failed")
			return
		}

		logger.WithFields(log.Fields{
			"rule_id": ruleID,
			"status":  input.Status,
		}).Info("rules: updating automated rule status")

		result, err := service.UpdateRuleStatus(ruleID, input.Status)
		if err != nil {
			logger.WithError(err).WithField("rule_id", ruleID).Error("rules: failed to update automated rule status")
			respondError(w, fmt.Sprintf("Failed to update automated rule status: %s", err.Error()))
			return
		}

		respondSuccess(w, map[string]any{
			"message": fmt.Sprintf("Automated rule %s status updated to %s", ruleID, input.Status),
			"data":    result,
		})
	})
}
