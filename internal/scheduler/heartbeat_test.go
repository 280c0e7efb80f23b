package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/meta-sync-agent/internal/config"
)

// stubCRMClient registra as chamadas feitas ao CRM
type stubCRMClient struct {
	heartbeats int
	syncs      int
	lastSync   map[string]any
}

func (c *stubCRMClient) Heartbeat() (map[string]any, error) {
	c.heartbeats++
	return map[string]any{}, nil
}

func (c *stubCRMClient) PullConfig() (map[string]any, error) {
	return map[string]any{}, nil
}

func (c *stubCRMClient) PullCommands() ([]map[string]any, error) {
	return []map[string]any{}, nil
}

func (c *stubCRMClient) SyncMetaData(payload map[string]any) error {
	c.syncs++
	c.lastSync = payload
	return nil
}

func TestBeatEncerraAgendadorComCredenciaisInvalidas(t *testing.T) {
	// Sem token de agente, a recarga produz um erro de configuração
	t.Setenv("AGENT_TOKEN", "")

	crm := &stubCRMClient{}
	svc := NewHeartbeatService(config.NewStoreWith(&config.Config{
		Agent: config.Agent{ID: "agt_teste", Token: "token-de-teste"},
		Poll:  config.Poll{HeartbeatIntervalSeconds: 30},
	}), crm)

	_, err := svc.scheduler.Every(30).Seconds().Do(func() { svc.beat() })
	require.NoError(t, err)
	require.Equal(t, 1, svc.scheduler.Len())

	// beat roda dentro do job do agendador; encerrar o heartbeat não pode
	// bloquear a própria chamada
	done := make(chan struct{})
	go func() {
		svc.beat()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("beat não retornou após credenciais inválidas")
	}

	assert.Equal(t, 0, svc.scheduler.Len())
	assert.Equal(t, 0, crm.heartbeats)
}
