package config

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Store guarda a configuração corrente do processo. Todas as chamadas de
// saída leem um snapshot imutável; apenas a tarefa de heartbeat troca o
// ponteiro via Reload. Leitores podem observar um snapshot antigo entre
// recargas, mas nunca um snapshot parcialmente escrito.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore carrega e valida a configuração inicial
func NewStore() (*Store, error) {
	cfg, err := NewConfig()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := &Store{}
	store.current.Store(cfg)

	return store, nil
}

// NewStoreWith cria um Store a partir de uma configuração já montada, sem
// passar pelas fontes externas. Útil em testes.
func NewStoreWith(cfg *Config) *Store {
	store := &Store{}
	store.current.Store(cfg)
	return store
}

// Snapshot retorna a configuração corrente. O resultado não deve ser mutado.
func (s *Store) Snapshot() *Config {
	return s.current.Load()
}

// Reload recarrega a configuração das mesmas fontes usadas na inicialização e
// troca o snapshot atomicamente. Em caso de erro o snapshot anterior é mantido.
func (s *Store) Reload() error {
	cfg, err := NewConfig()
	if err != nil {
		logrus.WithError(err).Error("Falha ao recarregar configuração")
		return err
	}

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Errorf(
			"Credenciais inválidas na recarga - agent_id=%q, token=%s",
			cfg.Agent.ID, tokenState(cfg.Agent.Token),
		)
		return err
	}

	s.current.Store(cfg)

	logrus.WithField("agent_id", cfg.Agent.ID).Debug("Configuração recarregada")
	return nil
}

func tokenState(token string) string {
	if token == "" {
		return "EMPTY"
	}
	return "SET"
}
