package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-sync-agent/internal/api"
	"github.com/vfg2006/meta-sync-agent/internal/config"
	"github.com/vfg2006/meta-sync-agent/internal/credentials"
	"github.com/vfg2006/meta-sync-agent/internal/scheduler"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	// Credenciais inválidas na partida encerram o processo
	store, err := config.NewStore()
	if err != nil {
		logrus.Fatal(err)
	}
	cfg := store.Snapshot()

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	logrus.WithField("agent_id", cfg.Agent.ID).Info("Agente iniciando com credenciais válidas")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	credStore := credentials.NewStore(cfg.SecretsDir)
	if err := credStore.LoadAll(); err != nil {
		logrus.WithError(err).Warn("Erro ao carregar arquivos de credenciais")
	}
	go func() {
		if err := credStore.Watch(ctx); err != nil {
			logrus.WithError(err).Error("Erro no observador de arquivos de credenciais")
		}
	}()

	metaClient := metaclient.NewClient(store, credStore)
	metaIntegrator := meta.NewService(metaClient)

	crmClient := crmclient.NewClient(store)

	// Inicializa os ciclos de polling contra o CRM e a conta do Meta
	heartbeatService := scheduler.NewHeartbeatService(store, crmClient)
	dataSyncService := scheduler.NewDataSyncService(store, metaIntegrator, crmClient)
	configPullLoop := scheduler.NewConfigPullLoop(store, crmClient)
	commandPullLoop := scheduler.NewCommandPullLoop(store, crmClient)

	if err := heartbeatService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de heartbeat")
	} else {
		logrus.Info("Agendador de heartbeat iniciado com sucesso")
	}

	if err := dataSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de dados do Meta")
	} else {
		logrus.Info("Agendador de sincronização de dados do Meta iniciado com sucesso")
	}

	if err := configPullLoop.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o laço de pull de configuração")
	} else {
		logrus.Info("Laço de pull de configuração iniciado com sucesso")
	}

	if err := commandPullLoop.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o laço de pull de comandos")
	} else {
		logrus.Info("Laço de pull de comandos iniciado com sucesso")
	}

	server, err := api.New(cfg, metaIntegrator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
