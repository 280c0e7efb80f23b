package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-sync-agent/internal/config"
)

// stubSyncIntegrator cobre só o que a sincronização usa. Métodos não
// sobrescritos vêm da interface embutida e explodem se alcançados.
type stubSyncIntegrator struct {
	meta.Integrator

	connected        bool
	accountInfoCalls int
	campaignCalls    int
}

func (s *stubSyncIntegrator) TestConnection() bool {
	return s.connected
}

func (s *stubSyncIntegrator) AccountInfo() (metadomain.RawNode, error) {
	s.accountInfoCalls++
	return metadomain.RawNode{"id": "act_123", "name": "Conta de Teste"}, nil
}

func (s *stubSyncIntegrator) Campaigns(limit int) ([]metadomain.RawNode, error) {
	s.campaignCalls++
	return []metadomain.RawNode{{"id": "c1"}}, nil
}

func newTestDataSync(connected bool) (*DataSyncService, *stubSyncIntegrator, *stubCRMClient) {
	store := config.NewStoreWith(&config.Config{
		Poll: config.Poll{SyncIntervalSeconds: 300},
	})
	integrator := &stubSyncIntegrator{connected: connected}
	crm := &stubCRMClient{}

	return NewDataSyncService(store, integrator, crm), integrator, crm
}

func TestSyncMetaDataPulaEnvioSemConexao(t *testing.T) {
	svc, integrator, crm := newTestDataSync(false)

	svc.syncMetaData()

	assert.Equal(t, 0, crm.syncs)
	assert.Equal(t, 0, integrator.accountInfoCalls)
	assert.Equal(t, 0, integrator.campaignCalls)
	assert.True(t, svc.lastSyncCompletedAt.IsZero())
}

func TestSyncMetaDataEnviaSnapshotCompleto(t *testing.T) {
	svc, integrator, crm := newTestDataSync(true)

	svc.syncMetaData()

	require.Equal(t, 1, crm.syncs)
	assert.Equal(t, true, crm.lastSync["meta_connected"])
	assert.Equal(t, metadomain.RawNode{"id": "act_123", "name": "Conta de Teste"}, crm.lastSync["account_info"])
	assert.Equal(t, []metadomain.RawNode{{"id": "c1"}}, crm.lastSync["campaigns"])
	assert.Equal(t, 1, integrator.campaignCalls)
	assert.False(t, svc.lastSyncCompletedAt.IsZero())
}
