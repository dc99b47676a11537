package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

// AuthFlow - вариант входа в портал
type AuthFlow string

const (
	// AuthFlowEmail - PIN-код запрашивается по email
	AuthFlowEmail AuthFlow = "email"
	// AuthFlowOrderNumber - PIN-код запрашивается по номеру заказа
	AuthFlowOrderNumber AuthFlow = "order"
)

type Arguments struct {
	ListenAddr      string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	SessionSecret   string        `env:"SESSION_SECRET" envDefault:"secret"`
	CookieSecure    bool          `env:"COOKIE_SECURE" envDefault:"false"`
	AuthFlow        string        `env:"AUTH_FLOW" envDefault:"email"`
	CommerceAddr    string        `env:"COMMERCE_API_ADDRESS" envDefault:"http://localhost:8081"`
	CommerceRPS     float64       `env:"COMMERCE_API_RPS" envDefault:"0"`
	CommerceTimeout time.Duration `env:"COMMERCE_API_TIMEOUT" envDefault:"10s"`
	DatabaseDSN     string        `env:"DATABASE_DSN" envDefault:""`
	RedisAddr       string        `env:"REDIS_ADDRESS" envDefault:""`
	AnonSessionTTL  time.Duration `env:"SESSION_ANON_TTL" envDefault:"24h"`
	RabbitURL       string        `env:"RABBITMQ_URL" envDefault:""`
	SupportQueue    string        `env:"SUPPORT_QUEUE" envDefault:"support_requests"`
}

// ServerConfig модель настроек веб-сервера
type ServerConfig struct {
	ListenAddr    string
	LogLevel      string
	SessionSecret string
	CookieSecure  bool
	AuthFlow      AuthFlow
}

// CommerceConfig модель настроек работы с внешней торговой системой
type CommerceConfig struct {
	Addr    string
	RPS     float64
	Timeout time.Duration
}

// StorageConfig модель настроек хранилища сессий
type StorageConfig struct {
	DatabaseDSN     string
	RedisAddr       string
	AnonSessionTTL  time.Duration
	JanitorInterval time.Duration
}

// SupportConfig модель настроек очереди обращений в поддержку
type SupportConfig struct {
	RabbitURL string
	Queue     string
}

// Config модель настроек сервиса
type Config struct {
	Server   ServerConfig
	Commerce CommerceConfig
	Storage  StorageConfig
	Support  SupportConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		secret   = pflag.StringP("secret", "s", args.SessionSecret, "Secret to sign session cookies")
		flow     = pflag.StringP("auth_flow", "f", args.AuthFlow, "Login flow: email or order.")
		commerce = pflag.StringP("commerce", "r", args.CommerceAddr, "Commerce API base URL.")
		rps      = pflag.Float64("commerce_rps", args.CommerceRPS, "Commerce API requests per second, 0 for unlimited.")
		dsn      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN for the session storage.")
		redis    = pflag.String("redis", args.RedisAddr, "Redis address for the session storage.")
		rabbit   = pflag.String("rabbitmq", args.RabbitURL, "RabbitMQ URL for support requests.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:    *server,
			LogLevel:      *logLevel,
			SessionSecret: *secret,
			CookieSecure:  args.CookieSecure,
			AuthFlow:      ParseAuthFlow(*flow),
		},
		Commerce: CommerceConfig{
			Addr:    *commerce,
			RPS:     *rps,
			Timeout: args.CommerceTimeout,
		},
		Storage: StorageConfig{
			DatabaseDSN:     *dsn,
			RedisAddr:       *redis,
			AnonSessionTTL:  args.AnonSessionTTL,
			JanitorInterval: time.Hour,
		},
		Support: SupportConfig{
			RabbitURL: *rabbit,
			Queue:     args.SupportQueue,
		},
	}
}

// ParseAuthFlow - неизвестное значение трактуется как вход по email
func ParseAuthFlow(value string) AuthFlow {
	if AuthFlow(value) == AuthFlowOrderNumber {
		return AuthFlowOrderNumber
	}
	return AuthFlowEmail
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:    "localhost:8080",
			LogLevel:      "info",
			SessionSecret: "secret",
			AuthFlow:      AuthFlowEmail,
		},
		Commerce: CommerceConfig{
			Addr:    "http://localhost:8081",
			Timeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			AnonSessionTTL:  24 * time.Hour,
			JanitorInterval: time.Hour,
		},
		Support: SupportConfig{
			Queue: "support_requests",
		},
	}
}
