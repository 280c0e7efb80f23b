package handler

import (
	"net/http"

	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-sync-agent/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthz",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Meta(service meta.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/meta/test",
			Method:  http.MethodGet,
			Handler: TestMetaConnection(service),
		},
		{
			Path:    "/meta/account",
			Method:  http.MethodGet,
			Handler: GetMetaAccount(service),
		},
		{
			Path:    "/meta/insights",
			Method:  http.MethodGet,
			Handler: GetMetaInsights(service),
		},
		{
			Path:    "/meta/test/hierarchical",
			Method:  http.MethodGet,
			Handler: TestHierarchicalStructure(service),
		},
		{
			Path:    "/meta/test/simple",
			Method:  http.MethodGet,
			Handler: TestSimpleCampaigns(service),
		},
	}
}

func Campaigns(service meta.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/meta/campaigns",
			Method:  http.MethodGet,
			Handler: GetMetaCampaigns(service),
		},
		{
			Path:    "/meta/campaigns",
			Method:  http.MethodPost,
			Handler: CreateMetaCampaign(service),
		},
		{
			// Resolve /meta/campaigns/hierarchical; o httprouter não aceita
			// rota estática irmã de segmento parametrizado
			Path:    "/meta/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaignSubresource(service),
		},
		{
			Path:    "/meta/campaigns/:id/adsets",
			Method:  http.MethodGet,
			Handler: GetCampaignAdSets(service),
		},
	}
}

func AdSets(service meta.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/meta/adsets/:id/ads",
			Method:  http.MethodGet,
			Handler: GetAdSetAds(service),
		},
		{
			Path:    "/meta/adsets/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateAdSetStatus(service),
		},
		{
			Path:    "/meta/adsets/:id/budget",
			Method:  http.MethodPut,
			Handler: UpdateAdSetBudget(service),
		},
	}
}

func Rules(service meta.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/meta/rules",
			Method:  http.MethodPost,
			Handler: CreateAutomatedRule(service),
		},
		{
			Path:    "/meta/rules",
			Method:  http.MethodGet,
			Handler: GetAutomatedRules(service),
		},
		{
			Path:    "/meta/rules/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAutomatedRule(service),
		},
		{
			Path:    "/meta/rules/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateAutomatedRuleStatus(service),
		},
	}
}
