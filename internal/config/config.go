package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Attribution       Attribution       `mapstructure:",squash"`
	InstallReportSync InstallReportSync `mapstructure:",squash"`
	Registry          *Registry         `mapstructure:"-"`
}

type Server struct {
	Host                 string        `mapstructure:"host"`
	Port                 string        `mapstructure:"port"`
	AllowedOrigins       []string      `mapstructure:"allowed_origins"`
	SlowRequestThreshold time.Duration `mapstructure:"slow_request_threshold"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Attribution struct {
	RegistryPath        string `mapstructure:"channel_registry_path"`
	MaxConcurrentJobs   int    `mapstructure:"attribution_max_concurrent_jobs"`
	QueryTimeoutSeconds int    `mapstructure:"attribution_query_timeout_seconds"`
}

// QueryTimeout retorna o timeout aplicado a cada consulta de fonte
func (a Attribution) QueryTimeout() time.Duration {
	if a.QueryTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.QueryTimeoutSeconds) * time.Second
}

type InstallReportSync struct {
	CronSchedule  string `mapstructure:"install_report_sync_cron"`
	Enabled       bool   `mapstructure:"install_report_sync_enabled"`
	RetentionDays int    `mapstructure:"install_report_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SLOW_REQUEST_THRESHOLD", "500ms")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	// Defaults para a reconciliação de atribuição
	viper.SetDefault("CHANNEL_REGISTRY_PATH", "")             // Vazio usa o registro embutido
	viper.SetDefault("ATTRIBUTION_MAX_CONCURRENT_JOBS", 4)    // Normalizações de série simultâneas
	viper.SetDefault("ATTRIBUTION_QUERY_TIMEOUT_SECONDS", 30) // Timeout por consulta de fonte

	// Defaults para o relatório diário de instalações
	viper.SetDefault("INSTALL_REPORT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("INSTALL_REPORT_SYNC_ENABLED", false)    // Habilitar relatório diário
	viper.SetDefault("INSTALL_REPORT_RETENTION_DAYS", 400)    // Relatórios mais antigos são removidos (0 desativa)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Registry, err = LoadRegistry(config.Attribution.RegistryPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar registro de canais: %w", err)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
