package scheduler

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/meta-sync-agent/internal/config"
)

// PullLoop executa uma função de pull contra o CRM em um laço perene com
// backoff exponencial: após sucesso a próxima execução acontece no intervalo
// inicial; cada falha consecutiva dobra a espera até o teto.
type PullLoop struct {
	name    string
	pull    func() error
	backoff *backoff.ExponentialBackOff
}

// NewPullLoop cria um laço de pull com os intervalos da configuração corrente
func NewPullLoop(store *config.Store, name string, pull func() error) *PullLoop {
	cfg := store.Snapshot()

	initial := time.Duration(cfg.Poll.PullInitialSeconds) * time.Second
	max := time.Duration(cfg.Poll.PullMaxSeconds) * time.Second

	b := &backoff.ExponentialBackOff{
		InitialInterval:     initial,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         max,
	}
	b.Reset()
	// Consome o intervalo inicial: a primeira falha já espera o dobro dele
	b.NextBackOff()

	return &PullLoop{
		name:    name,
		pull:    pull,
		backoff: b,
	}
}

// Start inicia o laço em uma goroutine própria, encerrada pelo contexto
func (l *PullLoop) Start(ctx context.Context) error {
	logrus.WithField("loop", l.name).Info("Iniciando laço de pull contra o CRM")

	go l.run(ctx)

	return nil
}

func (l *PullLoop) run(ctx context.Context) {
	for {
		err := l.pull()
		if err != nil {
			logrus.WithError(err).WithField("loop", l.name).Warn("Falha no pull contra o CRM, aplicando backoff")
		}

		delay := l.nextDelay(err)

		select {
		case <-ctx.Done():
			logrus.WithField("loop", l.name).Info("Encerrando laço de pull contra o CRM")
			return
		case <-time.After(delay):
		}
	}
}

// nextDelay devolve a espera até a próxima execução. Sucesso reinicia a escala
// e espera o intervalo inicial; falhas consecutivas dobram a espera até o teto.
func (l *PullLoop) nextDelay(err error) time.Duration {
	if err == nil {
		l.backoff.Reset()
		return l.backoff.NextBackOff()
	}

	return l.backoff.NextBackOff()
}

// NewConfigPullLoop cria o laço que busca configuração remota pendente no CRM
func NewConfigPullLoop(store *config.Store, crm crmclient.Client) *PullLoop {
	return NewPullLoop(store, "config", func() error {
		remote, err := crm.PullConfig()
		if err != nil {
			return err
		}

		if len(remote) > 0 {
			logrus.WithField("keys", len(remote)).Info("Configuração remota recebida do CRM")
		}

		return nil
	})
}

// NewCommandPullLoop cria o laço que busca comandos pendentes no CRM. Os
// comandos são reconhecidos e logados; a execução ainda não é suportada.
func NewCommandPullLoop(store *config.Store, crm crmclient.Client) *PullLoop {
	return NewPullLoop(store, "commands", func() error {
		commands, err := crm.PullCommands()
		if err != nil {
			return err
		}

		if len(commands) > 0 {
			logrus.WithField("commands", len(commands)).Info("Comandos recebidos do CRM e reconhecidos")
		}

		return nil
	})
}
