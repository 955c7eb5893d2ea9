package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SITE_URL", "")
	t.Setenv("LEAD_DUP_WINDOW", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("RESEND_FROM_EMAIL", "")
	t.Setenv("RESEND_TO_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "leads.db", cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.LeadDupWindow)
	assert.Equal(t, "http://localhost:3000", cfg.SiteURL)
}

func TestLoad_TrimsTrailingSlashOnSiteURL(t *testing.T) {
	t.Setenv("SITE_URL", "https://mobilehomeloanhelp.com/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://mobilehomeloanhelp.com", cfg.SiteURL)
}

func TestLoad_InvalidWindow(t *testing.T) {
	t.Setenv("LEAD_DUP_WINDOW", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProdRequiresMailCredentials(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("RESEND_FROM_EMAIL", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("RESEND_API_KEY", "re_test_key")
	_, err = Load()
	require.Error(t, err) // from address still missing

	t.Setenv("RESEND_FROM_EMAIL", "no-reply@mobilehomeloanhelp.com")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "re_test_key", cfg.ResendAPIKey)
}
