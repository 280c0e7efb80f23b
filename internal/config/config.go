package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/meta-sync-agent/pkg/apiErrors"
)

type Config struct {
	App    App    `mapstructure:"app"`
	Server Server `mapstructure:"server"`
	Meta   Meta   `mapstructure:"meta_api"`
	Agent  Agent  `mapstructure:"agent"`
	CRM    CRM    `mapstructure:"crm"`
	Poll   Poll   `mapstructure:"poll"`

	SecretsDir string `mapstructure:"secrets_dir"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL     string `mapstructure:"base_url"`
	AccessToken string `mapstructure:"access_token"`
	AdAccountID string `mapstructure:"ad_account_id"`
	AppID       string `mapstructure:"app_id"`
	AppSecret   string `mapstructure:"app_secret"`
	Timeout     int    `mapstructure:"timeout"`
}

type Agent struct {
	ID    string `mapstructure:"id"`
	Token string `mapstructure:"token"`
}

type CRM struct {
	BaseURL string `mapstructure:"base_url"`
}

type Poll struct {
	HeartbeatIntervalSeconds int `mapstructure:"heartbeat_interval_seconds"`
	SyncIntervalSeconds      int `mapstructure:"sync_interval_seconds"`
	PullInitialSeconds       int `mapstructure:"pull_initial_seconds"`
	PullMaxSeconds           int `mapstructure:"pull_max_seconds"`
}

// configPaths são as localizações candidatas do arquivo de configuração JSON,
// na ordem de precedência. Se nenhuma existir, caímos nas variáveis de ambiente.
var configPaths = []string{
	"/etc/sm-agent/agent_config.json",
	"config/agent_config.json",
	"agent_config.json",
}

func SetDefaults() {
	viper.SetDefault("app.log_level", "debug")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "9000")

	viper.SetDefault("meta_api.base_url", "https://graph.facebook.com/v20.0")
	viper.SetDefault("meta_api.timeout", 30)

	viper.SetDefault("agent.id", "agt_dev")

	viper.SetDefault("crm.base_url", "http://localhost:8000")

	// Defaults dos ciclos de polling
	viper.SetDefault("poll.heartbeat_interval_seconds", 30)
	viper.SetDefault("poll.sync_interval_seconds", 300)
	viper.SetDefault("poll.pull_initial_seconds", 5)
	viper.SetDefault("poll.pull_max_seconds", 300)
}

// NewConfig carrega a configuração do primeiro arquivo JSON candidato
// encontrado, com fallback para variáveis de ambiente.
func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("json")
	viper.AutomaticEnv()
	bindEnvAliases()

	if path, ok := findConfigFile(); ok {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			logrus.WithError(err).Warnf("Falha ao ler arquivo de configuração %s", path)
		} else {
			logrus.Infof("Configuração carregada de: %s", path)
		}
	} else {
		logrus.Info("Arquivo de configuração não encontrado, usando variáveis de ambiente")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.SecretsDir == "" {
		config.SecretsDir = defaultSecretsDir()
	}

	return config, nil
}

// Validate verifica as credenciais mínimas para falar com o CRM
func (c *Config) Validate() error {
	if c.Agent.ID == "" {
		return apiErrors.NewConfigError("agent id vazio")
	}

	if c.Agent.Token == "" {
		return apiErrors.NewConfigError("agent token vazio")
	}

	return nil
}

// bindEnvAliases mapeia as variáveis de ambiente históricas do agente para as
// chaves aninhadas do arquivo de configuração
func bindEnvAliases() {
	aliases := map[string]string{
		"meta_api.app_id":        "META_APP_ID",
		"meta_api.app_secret":    "META_APP_SECRET",
		"meta_api.access_token":  "META_ACCESS_TOKEN",
		"meta_api.ad_account_id": "META_AD_ACCOUNT_ID",
		"meta_api.base_url":      "META_BASE_URL",
		"meta_api.timeout":       "META_TIMEOUT",
		"agent.id":               "AGENT_ID",
		"agent.token":            "AGENT_TOKEN",
		"crm.base_url":           "CRM_BASE_URL",
		"app.log_level":          "LOG_LEVEL",
		"server.host":            "HOST",
		"server.port":            "PORT",
		"secrets_dir":            "SECRETS_DIR",
	}

	for key, env := range aliases {
		if err := viper.BindEnv(key, env); err != nil {
			logrus.WithError(err).Warnf("Falha ao vincular variável de ambiente %s", env)
		}
	}
}

func findConfigFile() (string, bool) {
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// defaultSecretsDir usa /etc/sm-agent quando existe (container), senão ./secrets
func defaultSecretsDir() string {
	if _, err := os.Stat("/etc/sm-agent"); err == nil {
		return "/etc/sm-agent"
	}
	return "secrets"
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}
