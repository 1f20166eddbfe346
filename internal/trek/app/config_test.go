package app

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "access")
	t.Setenv("REFRESH_SECRET", "refresh")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "trekking-company", cfg.Issuer)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 5*time.Second, cfg.StoreTimeout)
	require.Equal(t, 2, cfg.MaxAdmins)
	require.Equal(t, "minio", cfg.Assets.Driver)
	require.Equal(t, "trek-assets", cfg.Assets.Bucket)
	require.Empty(t, cfg.Search.URLs)
	require.Equal(t, 15*time.Minute, cfg.Search.ReindexInterval)
	require.False(t, cfg.Production())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "access")
	t.Setenv("REFRESH_SECRET", "refresh")
	t.Setenv("ENV", "production")
	t.Setenv("STORE_TIMEOUT", "2s")
	t.Setenv("ASSET_DRIVER", "s3")
	t.Setenv("SEARCH_URLS", "http://es1:9200,http://es2:9200")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.True(t, cfg.Production())
	require.Equal(t, 2*time.Second, cfg.StoreTimeout)
	require.Equal(t, "s3", cfg.Assets.Driver)
	require.Equal(t, []string{"http://es1:9200", "http://es2:9200"}, cfg.Search.URLs)
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	// Setenv restores the previous values on cleanup.
	t.Setenv("JWT_SECRET", "")
	t.Setenv("REFRESH_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	require.NoError(t, os.Unsetenv("REFRESH_SECRET"))

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestNewRejectsSharedSecret(t *testing.T) {
	_, err := New(Config{
		AccessSecret:  "same",
		RefreshSecret: "same",
		LogLevel:      "error",
		DatabaseFile:  t.TempDir() + "/trek.db",
	})
	require.Error(t, err)
}

func TestUsageListsVariables(t *testing.T) {
	usage := Usage()
	require.Contains(t, usage, "JWT_SECRET")
	require.Contains(t, usage, "SEARCH_REINDEX_INTERVAL")
}
