package crmclient

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/meta-sync-agent/internal/config"
	"github.com/vfg2006/meta-sync-agent/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const requestTimeout = 20 * time.Second

// Client fala com o CRM interno em nome do agente. Todas as chamadas são
// autenticadas com o token do agente.
type Client interface {
	Heartbeat() (map[string]any, error)
	PullConfig() (map[string]any, error)
	PullCommands() ([]map[string]any, error)
	SyncMetaData(payload map[string]any) error
}

type CRMClient struct {
	store      *config.Store
	httpClient *http.Client
}

func NewClient(store *config.Store) Client {
	return &CRMClient{
		store: store,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// agentURL monta a URL de um recurso do agente no CRM
func (c *CRMClient) agentURL(resource string) string {
	cfg := c.store.Snapshot()
	return fmt.Sprintf("%s/api/agents/%s/%s", strings.TrimSuffix(cfg.CRM.BaseURL, "/"), cfg.Agent.ID, resource)
}

func (c *CRMClient) post(rawURL string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "crm: erro ao serializar payload")
		}
		body = strings.NewReader(string(data))
	}

	req, err := http.NewRequest(http.MethodPost, rawURL, body)
	if err != nil {
		return errors.Wrap(err, "crm: erro ao criar requisição")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.store.Snapshot().Agent.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "crm: erro de transporte")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "crm: erro ao ler resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apiErrors.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("crm: status inesperado %d", resp.StatusCode),
			RawBody:    string(respBody),
		}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.Wrap(err, "crm: erro ao decodificar resposta")
		}
	}

	return nil
}

// Heartbeat informa ao CRM que o agente está vivo e devolve a resposta crua,
// que pode carregar diretivas para o agente
func (c *CRMClient) Heartbeat() (map[string]any, error) {
	payload := map[string]any{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	var result map[string]any
	if err := c.post(c.agentURL("heartbeat"), payload, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// PullConfig busca no CRM a configuração remota pendente para o agente
func (c *CRMClient) PullConfig() (map[string]any, error) {
	var result map[string]any
	if err := c.post(c.agentURL("config:pull"), nil, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// PullCommands busca no CRM os comandos pendentes para o agente
func (c *CRMClient) PullCommands() ([]map[string]any, error) {
	var result struct {
		Commands []map[string]any `json:"commands"`
	}
	if err := c.post(c.agentURL("commands:pull"), nil, &result); err != nil {
		return nil, err
	}

	if result.Commands == nil {
		return []map[string]any{}, nil
	}

	return result.Commands, nil
}

// SyncMetaData envia ao CRM o snapshot de dados coletados da conta do Meta
func (c *CRMClient) SyncMetaData(payload map[string]any) error {
	return c.post(c.agentURL("meta:sync"), payload, nil)
}
