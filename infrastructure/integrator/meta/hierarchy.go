package meta

import (
	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
)

// fallbackChildLimit limita os filhos buscados por pai no caminho de fallback
const fallbackChildLimit = 50

// CampaignHierarchy monta a árvore campanha > conjunto > anúncio com as
// métricas de todos os níveis normalizadas. O caminho principal usa a busca
// aninhada em uma única chamada; se ela falhar, a árvore é montada campanha a
// campanha com chamadas individuais.
func (s *service) CampaignHierarchy(limit int, datePreset string) ([]metadomain.RawNode, error) {
	campaigns, err := s.client.GetCampaignsNested(limit, datePreset)
	if err != nil {
		logrus.WithError(err).Warn("Busca aninhada de campanhas falhou, montando hierarquia por chamadas individuais")
		return s.assembleFallback(limit, datePreset)
	}

	for _, campaign := range campaigns {
		metadomain.NormalizeInsights(campaign)

		adSets := metadomain.ChildNodes(campaign, "adsets")
		delete(campaign, "adsets")

		for _, adSet := range adSets {
			metadomain.NormalizeInsights(adSet)

			ads := metadomain.ChildNodes(adSet, "ads")
			for _, ad := range ads {
				metadomain.NormalizeInsights(ad)
			}
			adSet["ads"] = ads
		}

		campaign["ad_sets"] = adSets
	}

	return campaigns, nil
}

// assembleFallback reconstrói a hierarquia com uma chamada por nível. Falhas
// em sub-árvores individuais não derrubam a montagem: a campanha fica com
// ad_sets vazio e o conjunto fica com ads vazio.
func (s *service) assembleFallback(limit int, datePreset string) ([]metadomain.RawNode, error) {
	campaigns, err := s.client.GetCampaigns(limit)
	if err != nil {
		return nil, err
	}

	for _, campaign := range campaigns {
		metadomain.NormalizeInsights(campaign)

		campaignID, _ := campaign["id"].(string)

		adSets, err := s.client.GetAdSets(campaignID, fallbackChildLimit, datePreset)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"campaign_id": campaignID,
			}).Warn("Falha ao buscar conjuntos da campanha, seguindo com lista vazia")

			campaign["ad_sets"] = []metadomain.RawNode{}
			continue
		}

		for _, adSet := range adSets {
			metadomain.NormalizeInsights(adSet)

			adSetID, _ := adSet["id"].(string)

			ads, err := s.client.GetAds(adSetID, fallbackChildLimit)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"ad_set_id": adSetID,
				}).Warn("Falha ao buscar anúncios do conjunto, seguindo com lista vazia")

				adSet["ads"] = []metadomain.RawNode{}
				continue
			}

			for _, ad := range ads {
				metadomain.NormalizeInsights(ad)
			}
			adSet["ads"] = ads
		}

		campaign["ad_sets"] = adSets
	}

	return campaigns, nil
}
