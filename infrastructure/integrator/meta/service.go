package meta

import (
	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-sync-agent/pkg/apiErrors"
)

// Integrator expõe as operações da conta de anúncios do Meta já no formato
// interno: métricas normalizadas em performance_metrics e hierarquia montada
// com as chaves ad_sets/ads.
type Integrator interface {
	TestConnection() bool
	AppInfo() (metadomain.RawNode, error)
	AccountInfo() (metadomain.RawNode, error)
	AccountInsights(datePreset string) (metadomain.RawNode, error)
	Campaigns(limit int) ([]metadomain.RawNode, error)
	CampaignHierarchy(limit int, datePreset string) ([]metadomain.RawNode, error)
	AdSetsByCampaign(campaignID string, limit int, datePreset string) ([]metadomain.RawNode, error)
	AdsByAdSet(adSetID string, limit int) ([]metadomain.RawNode, error)
	CreateCampaign(name, objective, status string) (metadomain.RawNode, error)
	UpdateAdSetStatus(adSetID, status string) (metadomain.RawNode, error)
	UpdateAdSetBudget(adSetID string, dailyBudget, lifetimeBudget *int) (metadomain.RawNode, error)
	CreateRule(rule metadomain.AutomatedRuleInput) (metadomain.RawNode, error)
	Rules(limit int) ([]metadomain.RawNode, error)
	DeleteRule(ruleID string) (metadomain.RawNode, error)
	UpdateRuleStatus(ruleID, status string) (metadomain.RawNode, error)
}

type service struct {
	client metaclient.Client
}

func NewService(client metaclient.Client) Integrator {
	return &service{client: client}
}

func (s *service) TestConnection() bool {
	return s.client.TestConnection()
}

func (s *service) AppInfo() (metadomain.RawNode, error) {
	return s.client.GetAppInfo()
}

func (s *service) AccountInfo() (metadomain.RawNode, error) {
	return s.client.GetAdAccountInfo()
}

func (s *service) AccountInsights(datePreset string) (metadomain.RawNode, error) {
	return s.client.GetAccountInsights(datePreset)
}

// Campaigns lista as campanhas da conta, sem filhos, com métricas normalizadas
func (s *service) Campaigns(limit int) ([]metadomain.RawNode, error) {
	campaigns, err := s.client.GetCampaigns(limit)
	if err != nil {
		return nil, err
	}

	for _, campaign := range campaigns {
		metadomain.NormalizeInsights(campaign)
	}

	return campaigns, nil
}

// AdSetsByCampaign lista os conjuntos de uma campanha com métricas normalizadas
func (s *service) AdSetsByCampaign(campaignID string, limit int, datePreset string) ([]metadomain.RawNode, error) {
	adSets, err := s.client.GetAdSets(campaignID, limit, datePreset)
	if err != nil {
		return nil, err
	}

	for _, adSet := range adSets {
		metadomain.NormalizeInsights(adSet)
	}

	return adSets, nil
}

// AdsByAdSet lista os anúncios de um conjunto com métricas normalizadas
func (s *service) AdsByAdSet(adSetID string, limit int) ([]metadomain.RawNode, error) {
	ads, err := s.client.GetAds(adSetID, limit)
	if err != nil {
		return nil, err
	}

	for _, ad := range ads {
		metadomain.NormalizeInsights(ad)
	}

	return ads, nil
}

func (s *service) CreateCampaign(name, objective, status string) (metadomain.RawNode, error) {
	if name == "" {
		return nil, apiErrors.NewValidationError("Campaign name is required")
	}

	return s.client.CreateCampaign(name, objective, status)
}

func (s *service) UpdateAdSetStatus(adSetID, status string) (metadomain.RawNode, error) {
	return s.client.UpdateAdSetStatus(adSetID, status)
}

func (s *service) UpdateAdSetBudget(adSetID string, dailyBudget, lifetimeBudget *int) (metadomain.RawNode, error) {
	return s.client.UpdateAdSetBudget(adSetID, dailyBudget, lifetimeBudget)
}

func (s *service) CreateRule(rule metadomain.AutomatedRuleInput) (metadomain.RawNode, error) {
	return s.client.CreateAutomatedRule(rule)
}

func (s *service) Rules(limit int) ([]metadomain.RawNode, error) {
	return s.client.GetAutomatedRules(limit)
}

func (s *service) DeleteRule(ruleID string) (metadomain.RawNode, error) {
	return s.client.DeleteAutomatedRule(ruleID)
}

func (s *service) UpdateRuleStatus(ruleID, status string) (metadomain.RawNode, error) {
	return s.client.UpdateAutomatedRuleStatus(ruleID, status)
}
