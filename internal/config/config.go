package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"https://site-project-eight.vercel.app",
}

type Config struct {
	Port            int
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	// SMTP
	MailHost    string
	MailPort    int
	MailUser    string
	MailPass    string
	MailFrom    string
	TeamEmail   string
	CompanyName string

	// Vazio = alerta interno vai direto por email, sem fila
	RabbitMQURL string

	KommoBaseURL  string
	KommoToken    string
	KommoStatusID int

	OpenAIKey         string
	OpenAIModel       string
	OpenAIMaxTokens   int
	OpenAITemperature float64

	WhatsAppNumber string
	NotifyTimeout  time.Duration
	// Requisições de captura por minuto por IP; 0 desliga
	LeadRateLimit int
}

// Load lê a configuração das variáveis de ambiente. O .env, se existir,
// já deve ter sido carregado pelo main.
func Load() (*Config, error) {
	cfg := &Config{}
	var err error

	if cfg.Port, err = getEnvInt("PORT", 3001); err != nil {
		return nil, fmt.Errorf("PORT: %w", err)
	}
	cfg.AllowedOrigins = getEnvList("ALLOWED_ORIGINS", defaultOrigins)
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg.MailHost = os.Getenv("MAIL_HOST")
	if cfg.MailPort, err = getEnvInt("MAIL_PORT", 587); err != nil {
		return nil, fmt.Errorf("MAIL_PORT: %w", err)
	}
	cfg.MailUser = os.Getenv("MAIL_USER")
	cfg.MailPass = os.Getenv("MAIL_PASS")
	cfg.MailFrom = getEnvDefault("MAIL_FROM", cfg.MailUser)
	cfg.TeamEmail = getEnvDefault("TEAM_EMAIL", cfg.MailUser)
	cfg.CompanyName = getEnvDefault("COMPANY_NAME", "Site Project")

	cfg.RabbitMQURL = os.Getenv("RABBITMQ_URL")

	cfg.KommoBaseURL = os.Getenv("KOMMO_BASE_URL")
	cfg.KommoToken = os.Getenv("KOMMO_API_TOKEN")
	if cfg.KommoStatusID, err = getEnvInt("KOMMO_STATUS_ID", 0); err != nil {
		return nil, fmt.Errorf("KOMMO_STATUS_ID: %w", err)
	}

	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIModel = getEnvDefault("OPENAI_MODEL", "gpt-4.1-mini")
	if cfg.OpenAIMaxTokens, err = getEnvInt("OPENAI_MAX_TOKENS", 100); err != nil {
		return nil, fmt.Errorf("OPENAI_MAX_TOKENS: %w", err)
	}
	if cfg.OpenAITemperature, err = getEnvFloat("OPENAI_TEMPERATURE", 0.7); err != nil {
		return nil, fmt.Errorf("OPENAI_TEMPERATURE: %w", err)
	}

	cfg.WhatsAppNumber = getEnvDefault("WHATSAPP_NUMBER", "5511940663895")
	if cfg.NotifyTimeout, err = getEnvDuration("NOTIFY_TIMEOUT", 30*time.Second); err != nil {
		return nil, fmt.Errorf("NOTIFY_TIMEOUT: %w", err)
	}
	if cfg.LeadRateLimit, err = getEnvInt("LEAD_RATE_LIMIT", 10); err != nil {
		return nil, fmt.Errorf("LEAD_RATE_LIMIT: %w", err)
	}

	return cfg, nil
}

func (c *Config) MailConfigured() bool {
	return c.MailHost != "" && c.MailUser != ""
}

func (c *Config) KommoConfigured() bool {
	return c.KommoBaseURL != "" && c.KommoToken != ""
}

func (c *Config) OpenAIConfigured() bool {
	return c.OpenAIKey != ""
}

func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("inteiro inválido: %q", val)
	}
	return n, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("número inválido: %q", val)
	}
	return f, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("duração inválida: %q", val)
	}
	return d, nil
}

// getEnvList separa por vírgula e ignora itens vazios.
func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
