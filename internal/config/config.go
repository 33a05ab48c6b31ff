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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Gemini           Gemini           `mapstructure:",squash"`
	Forecast         Forecast         `mapstructure:",squash"`
	Redis            Redis            `mapstructure:",squash"`
	Sales            Sales            `mapstructure:",squash"`
	ForecastSnapshot ForecastSnapshot `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
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
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Gemini struct {
	APIKey string `mapstructure:"gemini_api_key"`
	Model  string `mapstructure:"gemini_model"`
}

// Forecast agrupa os parâmetros do pipeline de previsão de vendas
type Forecast struct {
	EndpointURL       string        `mapstructure:"forecast_endpoint_url"`
	HorizonDays       int           `mapstructure:"forecast_horizon_days"`
	MaxAttempts       int           `mapstructure:"forecast_max_attempts"`
	InitialBackoff    time.Duration `mapstructure:"forecast_initial_backoff"`
	BackoffMultiplier float64       `mapstructure:"forecast_backoff_multiplier"`
	RequestTimeout    time.Duration `mapstructure:"forecast_request_timeout"`
	RatePerMinute     int           `mapstructure:"forecast_rate_per_minute"`
	CacheTTL          time.Duration `mapstructure:"forecast_cache_ttl"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Sales struct {
	Timezone            string `mapstructure:"sales_timezone"`
	MovingAverageWindow int    `mapstructure:"moving_average_window"`
}

type ForecastSnapshot struct {
	CronSchedule string `mapstructure:"forecast_snapshot_cron"`
	Enabled      bool   `mapstructure:"forecast_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/inventory?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")

	// Vazio significa que a previsão roda no próprio processo
	viper.SetDefault("FORECAST_ENDPOINT_URL", "")
	viper.SetDefault("FORECAST_HORIZON_DAYS", 7)
	viper.SetDefault("FORECAST_MAX_ATTEMPTS", 3)
	viper.SetDefault("FORECAST_INITIAL_BACKOFF", "2s")
	viper.SetDefault("FORECAST_BACKOFF_MULTIPLIER", 2)
	viper.SetDefault("FORECAST_REQUEST_TIMEOUT", "60s")
	viper.SetDefault("FORECAST_RATE_PER_MINUTE", 10)
	viper.SetDefault("FORECAST_CACHE_TTL", "1h")

	// Vazio desabilita o cache de previsões
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("SALES_TIMEZONE", "UTC")
	viper.SetDefault("MOVING_AVERAGE_WINDOW", 7)

	viper.SetDefault("FORECAST_SNAPSHOT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("FORECAST_SNAPSHOT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// SalesLocation retorna o fuso usado para derivar o dia de uma venda a partir do timestamp
func (c *Config) SalesLocation() *time.Location {
	loc, err := time.LoadLocation(c.Sales.Timezone)
	if err != nil || c.Sales.Timezone == "" {
		logrus.Warnf("Fuso horário inválido: %q, usando UTC", c.Sales.Timezone)
		return time.UTC
	}
	return loc
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
