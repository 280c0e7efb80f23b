package metaclient

import (
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
)

// UpdateAdSetStatus altera o status de um conjunto de anúncios
func (c *MetaClient) UpdateAdSetStatus(adSetID, status string) (metadomain.RawNode, error) {
	form := url.Values{}
	form.Add("status", status)

	return c.postForm(c.objectURL(adSetID), form)
}

// UpdateAdSetBudget altera o orçamento de um conjunto de anúncios. Apenas os
// campos fornecidos são enviados; valores em centavos da moeda da conta.
func (c *MetaClient) UpdateAdSetBudget(adSetID string, dailyBudget, lifetimeBudget *int) (metadomain.RawNode, error) {
	form := url.Values{}
	if dailyBudget != nil {
		form.Add("daily_budget", strconv.Itoa(*dailyBudget))
	}
	if lifetimeBudget != nil {
		form.Add("lifetime_budget", strconv.Itoa(*lifetimeBudget))
	}

	return c.postForm(c.objectURL(adSetID), form)
}
