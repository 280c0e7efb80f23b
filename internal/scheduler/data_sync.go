package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-sync-agent/internal/config"
)

// syncCampaignLimit limita quantas campanhas entram no snapshot enviado ao CRM
const syncCampaignLimit = 10

// DataSyncService gerencia o agendamento e execução da sincronização completa
// de dados da conta do Meta para o CRM
type DataSyncService struct {
	scheduler           *gocron.Scheduler
	store               *config.Store
	metaService         meta.Integrator
	crm                 crmclient.Client
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDataSyncService cria uma nova instância do serviço de sincronização de dados
func NewDataSyncService(store *config.Store, metaService meta.Integrator, crm crmclient.Client) *DataSyncService {
	return &DataSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		store:       store,
		metaService: metaService,
		crm:         crm,
		syncRunning: false,
	}
}

// Start inicia o agendador da sincronização de dados
func (s *DataSyncService) Start(ctx context.Context) error {
	interval := s.store.Snapshot().Poll.SyncIntervalSeconds

	logrus.WithField("interval_seconds", interval).Info("Iniciando agendador de sincronização de dados do Meta")

	_, err := s.scheduler.Every(interval).Seconds().Do(func() {
		s.syncMetaData()
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar sincronização de dados do Meta")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de dados do Meta")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma sincronização fora do agendamento
func (s *DataSyncService) TriggerManualSync() {
	go s.syncMetaData()
}

// GetStatus retorna o estado corrente do serviço de sincronização
func (s *DataSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running": s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.UTC().Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.UTC().Format(time.RFC3339)
	}

	return status
}

// syncMetaData coleta o snapshot da conta do Meta e envia ao CRM. Falhas são
// logadas e a próxima execução agendada segue normalmente.
func (s *DataSyncService) syncMetaData() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de dados do Meta já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("Iniciando sincronização de dados do Meta")

	connected := s.metaService.TestConnection()
	if !connected {
		logrus.Warn("API do Meta inacessível, sincronização adiada para o próximo ciclo")
		return
	}

	payload := map[string]any{
		"meta_connected": connected,
		"last_sync":      time.Now().UTC().Format(time.RFC3339),
	}

	accountInfo, err := s.metaService.AccountInfo()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar informações da conta para sincronização")
	} else {
		payload["account_info"] = accountInfo
	}

	campaigns, err := s.metaService.Campaigns(syncCampaignLimit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas para sincronização")
	} else {
		payload["campaigns"] = campaigns
	}

	if err := s.crm.SyncMetaData(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar dados sincronizados ao CRM")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithField("duration", time.Since(startTime).String()).
		Info("Sincronização de dados do Meta concluída")
}
