package metaclient

import (
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
)

// GetAppInfo busca as informações do app do Meta configurado
func (c *MetaClient) GetAppInfo() (metadomain.RawNode, error) {
	cfg := c.store.Snapshot()

	params := url.Values{}
	params.Add("fields", "id,name")

	var info metadomain.RawNode
	if err := c.getJSON(c.objectURL(cfg.Meta.AppID)+"?"+params.Encode(), &info); err != nil {
		return nil, err
	}

	return info, nil
}

// GetAdAccountInfo busca as informações da conta de anúncios configurada
func (c *MetaClient) GetAdAccountInfo() (metadomain.RawNode, error) {
	cfg := c.store.Snapshot()

	params := url.Values{}
	params.Add("fields", "id,account_id,currency,account_status,timezone_name")

	var info metadomain.RawNode
	if err := c.getJSON(c.objectURL("act_"+cfg.Meta.AdAccountID)+"?"+params.Encode(), &info); err != nil {
		return nil, err
	}

	return info, nil
}

// GetAccountInsights busca as métricas agregadas da conta para o período
func (c *MetaClient) GetAccountInsights(datePreset string) (metadomain.RawNode, error) {
	params := url.Values{}
	params.Add("date_preset", datePreset)
	params.Add("fields", "spend,impressions,clicks,ctr,cpc,cpm,reach,frequency")

	var page metadomain.Page
	if err := c.getJSON(c.accountURL("insights")+"?"+params.Encode(), &page); err != nil {
		return nil, err
	}

	if len(page.Data) == 0 {
		return metadomain.RawNode{}, nil
	}

	return page.Data[0], nil
}

// TestConnection verifica a conectividade com a API do Meta
func (c *MetaClient) TestConnection() bool {
	if _, err := c.GetAdAccountInfo(); err != nil {
		logrus.WithError(err).Error("Teste de conexão com a API do Meta falhou")
		return false
	}
	return true
}
