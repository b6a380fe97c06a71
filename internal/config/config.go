package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Webhooks         Webhooks         `mapstructure:",squash"`
	N8N              N8N              `mapstructure:",squash"`
	ExecutionSummary ExecutionSummary `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Webhooks guarda os endpoints dos dois feeds de analytics e o timeout das chamadas
type Webhooks struct {
	VoiceURL       string        `mapstructure:"voice_webhook_url"`
	ChatURL        string        `mapstructure:"chat_webhook_url"`
	RequestTimeout time.Duration `mapstructure:"webhook_request_timeout"`
}

type N8N struct {
	BaseURL        string        `mapstructure:"n8n_base_url"`
	APIKey         string        `mapstructure:"n8n_api_key"`
	RequestTimeout time.Duration `mapstructure:"n8n_request_timeout"`
}

type ExecutionSummary struct {
	CacheTTL     time.Duration `mapstructure:"execution_summary_cache_ttl"`
	CronSchedule string        `mapstructure:"execution_summary_sync_cron"`
	SyncEnabled  bool          `mapstructure:"execution_summary_sync_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("VOICE_WEBHOOK_URL", "")
	viper.SetDefault("CHAT_WEBHOOK_URL", "")
	viper.SetDefault("WEBHOOK_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("N8N_BASE_URL", "")
	viper.SetDefault("N8N_API_KEY", "")
	viper.SetDefault("N8N_REQUEST_TIMEOUT", "15s")

	// Defaults para o resumo de execuções de workflows
	viper.SetDefault("EXECUTION_SUMMARY_CACHE_TTL", "60s")
	viper.SetDefault("EXECUTION_SUMMARY_SYNC_CRON", "*/5 * * * *")
	viper.SetDefault("EXECUTION_SUMMARY_SYNC_ENABLED", false)

	// Segredo compartilhado com o provedor de identidade. Vazio desabilita a
	// validação do token (somente desenvolvimento local).
	viper.SetDefault("AUTH_SECRET", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	return config, nil
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
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
