package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/meta-sync-agent/internal/config"
	"github.com/vfg2006/meta-sync-agent/pkg/apiErrors"
)

// HeartbeatService avisa o CRM periodicamente que o agente está vivo. Antes de
// cada batida a configuração é recarregada; se a recarga apontar credenciais
// inválidas o heartbeat é encerrado em definitivo, sem derrubar o agente.
type HeartbeatService struct {
	scheduler  *gocron.Scheduler
	store      *config.Store
	crm        crmclient.Client
	lastBeatAt time.Time
}

// NewHeartbeatService cria uma nova instância do serviço de heartbeat
func NewHeartbeatService(store *config.Store, crm crmclient.Client) *HeartbeatService {
	return &HeartbeatService{
		scheduler: gocron.NewScheduler(time.UTC),
		store:     store,
		crm:       crm,
	}
}

// Start inicia o agendador do heartbeat
func (s *HeartbeatService) Start(ctx context.Context) error {
	interval := s.store.Snapshot().Poll.HeartbeatIntervalSeconds

	logrus.WithField("interval_seconds", interval).Info("Iniciando agendador de heartbeat")

	_, err := s.scheduler.Every(interval).Seconds().Do(func() {
		s.beat()
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar heartbeat")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de heartbeat")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *HeartbeatService) beat() {
	if err := s.store.Reload(); err != nil {
		var configErr *apiErrors.ConfigError
		if errors.As(err, &configErr) {
			logrus.WithError(err).Error("Credenciais inválidas na recarga, encerrando heartbeat em definitivo")
			// Clear, e não Stop: Stop espera o job corrente terminar, e o job
			// corrente é esta própria função
			s.scheduler.Clear()
			return
		}

		logrus.WithError(err).Warn("Falha ao recarregar configuração, mantendo snapshot anterior")
	}

	if _, err := s.crm.Heartbeat(); err != nil {
		logrus.WithError(err).Error("Falha ao enviar heartbeat ao CRM")
		return
	}

	s.lastBeatAt = time.Now()
	logrus.Debug("Heartbeat enviado ao CRM")
}
