package metaclient

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-sync-agent/pkg/utils"
)

// CreateAutomatedRule cria uma regra automatizada na conta de anúncios. As
// specs vão como strings JSON em campos de formulário, conforme a API exige.
func (c *MetaClient) CreateAutomatedRule(rule metadomain.AutomatedRuleInput) (metadomain.RawNode, error) {
	evaluationSpec, err := utils.CompactJSON(rule.EvaluationSpec)
	if err != nil {
		return nil, errors.Wrap(err, "meta: erro ao serializar evaluation_spec")
	}

	executionSpec, err := utils.CompactJSON(rule.ExecutionSpec)
	if err != nil {
		return nil, errors.Wrap(err, "meta: erro ao serializar execution_spec")
	}

	scheduleSpec := rule.ScheduleSpec
	if scheduleSpec == nil {
		scheduleSpec = metadomain.DefaultScheduleSpec()
	}

	schedule, err := utils.CompactJSON(scheduleSpec)
	if err != nil {
		return nil, errors.Wrap(err, "meta: erro ao serializar schedule_spec")
	}

	status := rule.Status
	if status == "" {
		status = metadomain.RuleStatusEnabled
	}

	form := url.Values{}
	form.Add("name", rule.Name)
	form.Add("evaluation_spec", evaluationSpec)
	form.Add("execution_spec", executionSpec)
	form.Add("schedule_spec", schedule)
	form.Add("status", status)

	return c.postForm(c.accountURL("adrules_library"), form)
}

// GetAutomatedRules lista as regras automatizadas da conta de anúncios
func (c *MetaClient) GetAutomatedRules(limit int) ([]metadomain.RawNode, error) {
	params := url.Values{}
	params.Add("limit", strconv.Itoa(limit))
	params.Add("fields", "id,name,status,evaluation_spec,execution_spec,schedule_spec,created_time,updated_time")
	params.Add("access_token", c.accessToken())

	return c.fetchPaged(c.accountURL("adrules_library"), params)
}

// DeleteAutomatedRule remove uma regra automatizada
func (c *MetaClient) DeleteAutomatedRule(ruleID string) (metadomain.RawNode, error) {
	return c.delete(c.objectURL(ruleID))
}

// UpdateAutomatedRuleStatus habilita ou desabilita uma regra automatizada
func (c *MetaClient) UpdateAutomatedRuleStatus(ruleID, status string) (metadomain.RawNode, error) {
	form := url.Values{}
	form.Add("status", status)

	return c.postForm(c.objectURL(ruleID), form)
}
