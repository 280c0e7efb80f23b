package metaclient

import (
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
)

// GetAds busca os anúncios de um conjunto de anúncios
func (c *MetaClient) GetAds(adSetID string, limit int) ([]metadomain.RawNode, error) {
	params := url.Values{}
	params.Add("limit", strconv.Itoa(limit))
	params.Add("fields", "id,name,status,effective_status,creative,created_time,updated_time")
	params.Add("access_token", c.accessToken())

	return c.fetchPaged(c.objectURL(adSetID)+"/ads", params)
}
