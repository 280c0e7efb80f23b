package metaclient

import (
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
)

// GetAdSets busca os conjuntos de anúncios de uma campanha, com os insights do
// período embutidos em cada conjunto
func (c *MetaClient) GetAdSets(campaignID string, limit int, datePreset string) ([]metadomain.RawNode, error) {
	fields := "id,name,status,effective_status,daily_budget,lifetime_budget,optimization_goal," +
		"created_time,updated_time,targeting,bid_strategy,pacing_type," +
		"insights.date_preset(" + datePreset + "){" + insightMetricFields + "}"

	params := url.Values{}
	params.Add("limit", strconv.Itoa(limit))
	params.Add("fields", fields)
	params.Add("access_token", c.accessToken())

	return c.fetchPaged(c.objectURL(campaignID)+"/adsets", params)
}
