package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StorageDynamoDB, cfg.Storage.Driver)
	assert.Equal(t, "payment_intents", cfg.DynamoDB.Tables.Intents)
	assert.Equal(t, "LKR", cfg.Gateways.Redirect.SettlementCurrency)
	assert.Equal(t, 32, cfg.SideEffects.Parallelism)
	assert.False(t, cfg.Currency.Strict)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
storage:
  driver: memory
gateways:
  redirect:
    merchant-id: "1211149"
currency:
  strict: true
  rates:
    USD_LKR: 300
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("GATEWAYS_REDIRECT_MERCHANT_SECRET", "s3cret")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "1211149", cfg.Gateways.Redirect.MerchantID)
	assert.Equal(t, "s3cret", cfg.Gateways.Redirect.MerchantSecret)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Currency.Strict)
	assert.Equal(t, 300.0, cfg.Currency.Rates["USD_LKR"])
}

func TestConfig_Validate(t *testing.T) {
	base := Config{Storage: Storage{Driver: StorageMemory}, SideEffects: SideEffects{Parallelism: 1}}
	require.NoError(t, base.Validate())

	pg := base
	pg.Storage.Driver = StoragePostgres
	assert.Error(t, pg.Validate())

	unknown := base
	unknown.Storage.Driver = "mongo"
	assert.Error(t, unknown.Validate())

	noWorkers := base
	noWorkers.SideEffects.Parallelism = 0
	assert.Error(t, noWorkers.Validate())
}
