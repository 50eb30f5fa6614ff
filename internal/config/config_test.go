package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestViper(values map[string]interface{}) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for key, value := range values {
		v.Set(key, value)
	}
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	require.Equal(t, ":3001", cfg.HTTPAddress())
	require.False(t, cfg.Email.Enabled)
	require.Equal(t, "Sua leitura da Mestra Aurora", cfg.Email.ReadingSubject)
	require.Equal(t, "contact@mestraaurora.xyz", cfg.Email.ContactTo)
	require.Equal(t, 587, cfg.Email.SMTPPort)
	require.Equal(t, 5*time.Second, cfg.LeadWriteTimeout)
	require.Equal(t, 30*time.Second, cfg.AI.Timeout)
	require.False(t, cfg.AI.Delegated())
	require.True(t, cfg.AutoMigrate)
}

func TestFromViperDelegatedWhenKeyPresent(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]interface{}{"ai.api_key": "sk-test", "ai.timeout": "2s"}))
	require.NoError(t, err)
	require.True(t, cfg.AI.Delegated())
	require.Equal(t, 2*time.Second, cfg.AI.Timeout)
}

func TestFromViperRejectsInvalidDuration(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]interface{}{"ai.cache_ttl": "soon"}))
	require.Error(t, err)
}

func TestFromViperRequiresHostWhenEmailEnabled(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]interface{}{"email.enabled": true, "smtp.host": " "}))
	require.Error(t, err)
}

func TestHTTPAddressKeepsColonPrefix(t *testing.T) {
	require.Equal(t, ":8080", Config{AppPort: ":8080"}.HTTPAddress())
}
