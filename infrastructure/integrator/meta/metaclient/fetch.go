package metaclient

import (
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
)

// fetchPaged faz um GET paginado contra um endpoint de listagem e acumula
// todas as páginas em ordem. O link paging.next é seguido literalmente (ele já
// embute todo o estado da query). A ausência do link encerra a varredura; uma
// falha ao buscar uma página intermediária é logada e encerra a varredura com
// os resultados parciais, que são considerados utilizáveis.
func (c *MetaClient) fetchPaged(baseURL string, params url.Values) ([]metadomain.RawNode, error) {
	var page metadomain.Page
	if err := c.getJSON(baseURL+"?"+params.Encode(), &page); err != nil {
		return nil, err
	}

	nodes := page.Data
	if nodes == nil {
		nodes = []metadomain.RawNode{}
	}

	for page.Paging != nil && page.Paging.Next != "" {
		next := page.Paging.Next

		page = metadomain.Page{}
		if err := c.getJSON(next, &page); err != nil {
			logrus.WithError(err).Warn("Falha ao buscar próxima página, mantendo resultados parciais")
			break
		}

		nodes = append(nodes, page.Data...)
	}

	return nodes, nil
}
