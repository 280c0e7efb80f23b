package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-sync-agent/internal/config"
	"github.com/vfg2006/meta-sync-agent/internal/credentials"
	"github.com/vfg2006/meta-sync-agent/pkg/apiErrors"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

type Client interface {
	TestConnection() bool
	GetAppInfo() (metadomain.RawNode, error)
	GetAdAccountInfo() (metadomain.RawNode, error)
	GetAccountInsights(datePreset string) (metadomain.RawNode, error)
	GetCampaigns(limit int) ([]metadomain.RawNode, error)
	GetCampaignsNested(limit int, datePreset string) ([]metadomain.RawNode, error)
	GetAdSets(campaignID string, limit int, datePreset string) ([]metadomain.RawNode, error)
	GetAds(adSetID string, limit int) ([]metadomain.RawNode, error)
	CreateCampaign(name, objective, status string) (metadomain.RawNode, error)
	UpdateAdSetStatus(adSetID, status string) (metadomain.RawNode, error)
	UpdateAdSetBudget(adSetID string, dailyBudget, lifetimeBudget *int) (metadomain.RawNode, error)
	CreateAutomatedRule(rule metadomain.AutomatedRuleInput) (metadomain.RawNode, error)
	GetAutomatedRules(limit int) ([]metadomain.RawNode, error)
	DeleteAutomatedRule(ruleID string) (metadomain.RawNode, error)
	UpdateAutomatedRuleStatus(ruleID, status string) (metadomain.RawNode, error)
}

type MetaClient struct {
	store      *config.Store
	creds      *credentials.Store
	httpClient *http.Client
}

func NewClient(store *config.Store, creds *credentials.Store) Client {
	timeout := store.Snapshot().Meta.Timeout
	if timeout <= 0 {
		timeout = 30
	}

	return &MetaClient{
		store: store,
		creds: creds,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// accessToken resolve o token de acesso corrente: o arquivo de credenciais da
// conta tem precedência sobre o token do arquivo de configuração
func (c *MetaClient) accessToken() string {
	cfg := c.store.Snapshot()

	if c.creds != nil {
		if token, ok := c.creds.AccessToken(cfg.Meta.AdAccountID); ok {
			return token
		}
	}

	return cfg.Meta.AccessToken
}

// objectURL monta a URL de um objeto pelo ID (campanha, conjunto, anúncio, regra)
func (c *MetaClient) objectURL(objectID string) string {
	return fmt.Sprintf("%s/%s", c.store.Snapshot().Meta.BaseURL, strings.TrimPrefix(objectID, "/"))
}

// accountURL monta a URL de um recurso da conta de anúncios configurada
func (c *MetaClient) accountURL(resource string) string {
	cfg := c.store.Snapshot()
	return fmt.Sprintf("%s/act_%s/%s", cfg.Meta.BaseURL, cfg.Meta.AdAccountID, resource)
}

// do executa a requisição e devolve o corpo. Respostas não-2xx viram
// UpstreamError, extraindo o envelope de erro estruturado quando presente.
func (c *MetaClient) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.accessToken())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apiErrors.UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apiErrors.UpstreamError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, metadomain.UpstreamErrorFromBody(resp.StatusCode, body)
	}

	return body, nil
}

// getJSON faz um GET e decodifica o corpo em out
func (c *MetaClient) getJSON(rawURL string, out any) error {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(err, "meta: erro ao criar requisição")
	}

	body, err := c.do(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "meta: erro ao decodificar resposta")
	}

	return nil
}

// postForm envia um POST form-encoded, com o token de acesso em query param
// conforme a convenção de atualização da API do Meta
func (c *MetaClient) postForm(rawURL string, form url.Values) (metadomain.RawNode, error) {
	params := url.Values{}
	params.Add("access_token", c.accessToken())

	req, err := http.NewRequest(
		http.MethodPost,
		rawURL+"?"+params.Encode(),
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "meta: erro ao criar requisição")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result metadomain.RawNode
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "meta: erro ao decodificar resposta")
	}

	return result, nil
}

// postJSON envia um POST com corpo JSON
func (c *MetaClient) postJSON(rawURL string, payload any) (metadomain.RawNode, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "meta: erro ao serializar payload")
	}

	req, err := http.NewRequest(http.MethodPost, rawURL, strings.NewReader(string(data)))
	if err != nil {
		return nil, errors.Wrap(err, "meta: erro ao criar requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result metadomain.RawNode
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "meta: erro ao decodificar resposta")
	}

	return result, nil
}

// delete envia um DELETE com o token de acesso em query param
func (c *MetaClient) delete(rawURL string) (metadomain.RawNode, error) {
	params := url.Values{}
	params.Add("access_token", c.accessToken())

	req, err := http.NewRequest(http.MethodDelete, rawURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "meta: erro ao criar requisição")
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result metadomain.RawNode
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "meta: erro ao decodificar resposta")
	}

	return result, nil
}
