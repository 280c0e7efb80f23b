package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const credExtension = ".creds"

// Store mantém as credenciais por conta carregadas do diretório de segredos.
// Um arquivo <conta>.creds contém um objeto JSON com os segredos daquela
// conta (tipicamente "access_token"). O watcher recarrega arquivos
// modificados sem reiniciar o processo.
type Store struct {
	mu          sync.RWMutex
	dir         string
	credentials map[string]map[string]any
}

// NewStore cria um Store para o diretório de segredos informado
func NewStore(dir string) *Store {
	return &Store{
		dir:         dir,
		credentials: make(map[string]map[string]any),
	}
}

// Dir retorna o diretório de segredos observado
func (s *Store) Dir() string {
	return s.dir
}

// LoadAll carrega todos os arquivos *.creds do diretório de segredos.
// Falhas individuais são logadas e não impedem o carregamento das demais.
func (s *Store) LoadAll() error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}

	files, err := filepath.Glob(filepath.Join(s.dir, "*"+credExtension))
	if err != nil {
		return err
	}

	for _, file := range files {
		accountID := accountIDFromPath(file)
		if err := s.load(accountID, file); err != nil {
			logrus.WithError(err).Errorf("Falha ao carregar credenciais de %s", accountID)
		}
	}

	logrus.WithField("accounts", len(files)).Info("Credenciais por conta carregadas")
	return nil
}

// Get retorna as credenciais de uma conta. Conta desconhecida retorna um
// mapa vazio, nunca nil.
func (s *Store) Get(accountID string) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	creds, ok := s.credentials[accountID]
	if !ok {
		return map[string]any{}
	}
	return creds
}

// AccessToken retorna o access_token de uma conta, se existir
func (s *Store) AccessToken(accountID string) (string, bool) {
	token, ok := s.Get(accountID)["access_token"].(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// Reload recarrega as credenciais de uma conta específica
func (s *Store) Reload(accountID string) {
	file := filepath.Join(s.dir, accountID+credExtension)
	if _, err := os.Stat(file); err != nil {
		return
	}

	if err := s.load(accountID, file); err != nil {
		logrus.WithError(err).Errorf("Falha ao recarregar credenciais de %s", accountID)
		return
	}

	logrus.Infof("Credenciais recarregadas para %s", accountID)
}

func (s *Store) load(accountID, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var creds map[string]any
	if err := json.Unmarshal(data, &creds); err != nil {
		return err
	}

	s.mu.Lock()
	s.credentials[accountID] = creds
	s.mu.Unlock()

	return nil
}

func accountIDFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), credExtension)
}
