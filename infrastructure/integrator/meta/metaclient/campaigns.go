package metaclient

import (
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
)

// insightMetricFields são as métricas pedidas em todos os sub-objetos de
// insights, em todos os níveis da hierarquia
const insightMetricFields = "spend,impressions,clicks,ctr,cpc,cpm,reach,frequency," +
	"actions,action_values,cost_per_action_type," +
	"video_30_sec_watched_actions,video_p25_watched_actions,video_p50_watched_actions," +
	"video_p75_watched_actions,video_p100_watched_actions," +
	"inline_link_clicks,outbound_clicks,landing_page_views"

// GetCampaigns busca as campanhas da conta, sem dados aninhados
func (c *MetaClient) GetCampaigns(limit int) ([]metadomain.RawNode, error) {
	params := url.Values{}
	params.Add("limit", strconv.Itoa(limit))
	params.Add("fields", "id,name,status,objective,created_time,updated_time,daily_budget,lifetime_budget")
	params.Add("access_token", c.accessToken())

	return c.fetchPaged(c.accountURL("campaigns"), params)
}

// GetCampaignsNested busca campanhas com conjuntos de anúncios e anúncios
// embutidos em uma única chamada, usando a sintaxe de campos aninhados da API.
// Os insights dos três níveis são parametrizados pelo mesmo date_preset.
// Limitação conhecida da plataforma: apenas o nível de campanhas é paginado;
// páginas aninhadas além da primeira resposta são truncadas.
func (c *MetaClient) GetCampaignsNested(limit int, datePreset string) ([]metadomain.RawNode, error) {
	fields := "id,name,status,objective,created_time,updated_time,daily_budget,lifetime_budget," +
		"insights{" + insightMetricFields + "}," +
		"adsets{id,name,status,effective_status,daily_budget,lifetime_budget,optimization_goal," +
		"created_time,updated_time,targeting,bid_strategy,pacing_type," +
		"insights{" + insightMetricFields + "}," +
		"ads{id,name,status,effective_status," +
		"creative{id,name,object_story_spec,asset_feed_spec},created_time,updated_time," +
		"insights{" + insightMetricFields + "}}}"

	params := url.Values{}
	params.Add("limit", strconv.Itoa(limit))
	params.Add("fields", fields)
	params.Add("date_preset", datePreset)
	params.Add("access_token", c.accessToken())

	return c.fetchPaged(c.accountURL("campaigns"), params)
}

// CreateCampaign cria uma nova campanha na conta de anúncios
func (c *MetaClient) CreateCampaign(name, objective, status string) (metadomain.RawNode, error) {
	payload := map[string]string{
		"name":      name,
		"objective": objective,
		"status":    status,
	}

	return c.postJSON(c.accountURL("campaigns"), payload)
}
