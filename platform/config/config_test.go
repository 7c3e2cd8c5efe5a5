package config

import (
	"os"
	"path/filepath"
	"testing"

	"contact_phone_backend/platform/apperr"
	"contact_phone_backend/platform/phone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"APP_ENV", "HTTP_ADDR", "CORS_ORIGINS", "CORS_ALLOW_CREDENTIALS",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "PHONE_RULES_FILE",
	"PHONE_DEFAULT_REGION", "PHONE_BATCH_LIMIT",
}

// isolate runs the test in an empty directory with every config variable unset.
// t.Setenv restores the previous values, including anything godotenv sets.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.GetCORSOrigins())
	assert.False(t, cfg.GetCORSAllowAll())
	assert.Equal(t, 500, cfg.GetBatchLimit())
	assert.Equal(t, "defaults", cfg.GetPhoneRulesSource())
	assert.Equal(t, phone.DefaultRules(), cfg.GetPhoneRules())
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_ADDR=:9090\nPHONE_BATCH_LIMIT=10\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GetHTTPAddr())
	assert.Equal(t, 10, cfg.GetBatchLimit())
}

func TestLoadWildcardCORS(t *testing.T) {
	isolate(t)
	t.Setenv("CORS_ORIGINS", "*")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.GetCORSAllowAll())

	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS_ORIGINS is *")
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	isolate(t)

	for _, key := range []string{"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "PHONE_BATCH_LIMIT"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "-1")
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoadPhoneRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \" \"\n"), 0o600))

	rules, source, err := LoadPhoneRules(path, "hk")
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, " ", rules.Separator)
	assert.Equal(t, "HK", rules.DefaultRegion)
}

func TestLoadPhoneRulesRejectsUnknownRegion(t *testing.T) {
	_, _, err := LoadPhoneRules("", "XX")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestLoadPhoneRulesMissingFile(t *testing.T) {
	_, _, err := LoadPhoneRules(filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.Error(t, err)
}
