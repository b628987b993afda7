package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
		"MAIL_HOST", "MAIL_PORT", "MAIL_USER", "MAIL_PASS", "MAIL_FROM", "TEAM_EMAIL", "COMPANY_NAME",
		"RABBITMQ_URL", "KOMMO_BASE_URL", "KOMMO_API_TOKEN", "KOMMO_STATUS_ID",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_MAX_TOKENS", "OPENAI_TEMPERATURE",
		"WHATSAPP_NUMBER", "NOTIFY_TIMEOUT", "LEAD_RATE_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://site-project-eight.vercel.app"}, cfg.AllowedOrigins)
	assert.Equal(t, 587, cfg.MailPort)
	assert.Equal(t, "gpt-4.1-mini", cfg.OpenAIModel)
	assert.Equal(t, 100, cfg.OpenAIMaxTokens)
	assert.InDelta(t, 0.7, cfg.OpenAITemperature, 1e-9)
	assert.Equal(t, "5511940663895", cfg.WhatsAppNumber)
	assert.Equal(t, 30*time.Second, cfg.NotifyTimeout)
	assert.Equal(t, 10, cfg.LeadRateLimit)
	assert.False(t, cfg.MailConfigured())
	assert.False(t, cfg.KommoConfigured())
	assert.False(t, cfg.OpenAIConfigured())
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", " https://a.com , ,https://b.com")
	t.Setenv("MAIL_HOST", "smtp.gmail.com")
	t.Setenv("MAIL_USER", "contato@site.com")
	t.Setenv("NOTIFY_TIMEOUT", "5s")
	t.Setenv("LEAD_RATE_LIMIT", "0")
	t.Setenv("KOMMO_BASE_URL", "https://conta.kommo.com/api/v4")
	t.Setenv("KOMMO_API_TOKEN", "tok")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.MailConfigured())
	// remetente e destino do alerta caem no usuário SMTP
	assert.Equal(t, "contato@site.com", cfg.MailFrom)
	assert.Equal(t, "contato@site.com", cfg.TeamEmail)
	assert.Equal(t, 5*time.Second, cfg.NotifyTimeout)
	assert.Zero(t, cfg.LeadRateLimit)
	assert.True(t, cfg.KommoConfigured())
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	cases := map[string]string{
		"PORT":               "abc",
		"MAIL_PORT":          "x",
		"NOTIFY_TIMEOUT":     "30",
		"OPENAI_TEMPERATURE": "quente",
		"LEAD_RATE_LIMIT":    "dez",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)

			_, err := Load()
			assert.ErrorContains(t, err, key)
		})
	}
}
