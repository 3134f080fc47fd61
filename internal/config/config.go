// Package config carrega as configurações da API a partir do ambiente,
// com suporte opcional a arquivos .env.local e .env.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultCancelURL = "http://localhost:5174#pricing"

type Config struct {
	Port string
	Env  string

	Log     LogConfig
	Stripe  StripeConfig
	Plans   PlansConfig
	Return  ReturnConfig
	HTTP    HTTPConfig
	Version string
}

type LogConfig struct {
	Level  string
	Format string
}

// StripeConfig nunca tem valores padrão para segredos.
type StripeConfig struct {
	SecretKey string
	APIURL    string // vazio = api.stripe.com
}

type PlansConfig struct {
	GestaoPriceID string
	FullPriceID   string
	SetupPriceID  string
}

// ReturnConfig define para onde o cliente volta depois do checkout.
type ReturnConfig struct {
	SuccessURL       string
	CancelURL        string
	DefaultCancelURL string
}

type HTTPConfig struct {
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
	StaticDir      string
}

// Load lê .env.local e .env (se existirem) e depois o ambiente.
// Variáveis já definidas no ambiente têm prioridade.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	rateLimit, err := getEnvInt("CHECKOUT_RATE_LIMIT", 0)
	if err != nil {
		return nil, err
	}
	rateWindow, err := getEnvDuration("CHECKOUT_RATE_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:    getEnv("PORT", "3000"),
		Env:     getEnv("ENV", "development"),
		Version: getEnv("APP_VERSION", "1.0.0"),
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			APIURL:    getEnv("STRIPE_API_URL", ""),
		},
		Plans: PlansConfig{
			GestaoPriceID: getEnv("STRIPE_PRICE_GESTAO", ""),
			FullPriceID:   getEnv("STRIPE_PRICE_FULL", ""),
			SetupPriceID:  getEnv("STRIPE_PRICE_SETUP", ""),
		},
		Return: ReturnConfig{
			SuccessURL:       getEnv("SUCCESS_URL", ""),
			CancelURL:        getEnv("CANCEL_URL", ""),
			DefaultCancelURL: getEnv("DEFAULT_CANCEL_URL", DefaultCancelURL),
		},
		HTTP: HTTPConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			RateLimit:      rateLimit,
			RateWindow:     rateWindow,
			StaticDir:      getEnv("STATIC_DIR", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate só rejeita valores malformados. Segredos ausentes não impedem o
// boot: o endpoint de checkout responde com erro de configuração.
func (c *Config) validate() error {
	if c.HTTP.RateLimit < 0 {
		return fmt.Errorf("CHECKOUT_RATE_LIMIT não pode ser negativo")
	}
	if c.HTTP.RateWindow <= 0 {
		return fmt.Errorf("CHECKOUT_RATE_WINDOW deve ser positivo")
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT inválido: %q", c.Log.Format)
	}
	return nil
}

// Missing lista as variáveis obrigatórias que não foram definidas.
func (c *Config) Missing() []string {
	var missing []string
	if c.Stripe.SecretKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	if c.Plans.GestaoPriceID == "" {
		missing = append(missing, "STRIPE_PRICE_GESTAO")
	}
	if c.Plans.FullPriceID == "" {
		missing = append(missing, "STRIPE_PRICE_FULL")
	}
	if c.Plans.SetupPriceID == "" {
		missing = append(missing, "STRIPE_PRICE_SETUP")
	}
	if c.Return.SuccessURL == "" {
		missing = append(missing, "SUCCESS_URL")
	}
	return missing
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LogLevel converte LOG_LEVEL para slog.Level; valores desconhecidos viram info.
func (c *Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return parsed, nil
}

func getEnvList(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
