package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv([]string{"retaildb", "5432", "alice"}, envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "retaildb", cfg.DBName)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "alice", cfg.DBUser)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "", cfg.DBPassword)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, SchemeBcrypt, cfg.PasswordScheme)
	assert.Equal(t, 30.0, cfg.StoreRadius)
	assert.True(t, cfg.ClearScreen)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv([]string{"db", "6000", "bob"}, envOf(map[string]string{
		"DB_HOST":         "pg.internal",
		"DB_PASSWORD":     "s3cret",
		"DB_SSLMODE":      "require",
		"PASSWORD_SCHEME": "PLAINTEXT",
		"STORE_RADIUS":    "12.5",
		"CLEAR_SCREEN":    "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, "pg.internal", cfg.DBHost)
	assert.Equal(t, "s3cret", cfg.DBPassword)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.Equal(t, SchemePlaintext, cfg.PasswordScheme)
	assert.Equal(t, 12.5, cfg.StoreRadius)
	assert.False(t, cfg.ClearScreen)
}

func TestFromEnvRejectsBadInput(t *testing.T) {
	_, err := FromEnv([]string{"db", "5432"}, envOf(nil))
	assert.ErrorIs(t, err, ErrUsage)

	_, err = FromEnv([]string{"db", "port", "u"}, envOf(nil))
	assert.Error(t, err)

	_, err = FromEnv([]string{"db", "5432", "u"}, envOf(map[string]string{"PASSWORD_SCHEME": "md5"}))
	assert.Error(t, err)

	_, err = FromEnv([]string{"db", "5432", "u"}, envOf(map[string]string{"STORE_RADIUS": "-1"}))
	assert.Error(t, err)
}

func TestLoadChecksArgCount(t *testing.T) {
	_, err := Load([]string{"only-one"})
	assert.ErrorIs(t, err, ErrUsage)
}
