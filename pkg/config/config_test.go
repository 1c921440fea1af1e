package config_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smartbin/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "smartbin", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 100, cfg.Bin.InitialStock)
	assert.Equal(t, 20, cfg.Bin.Threshold)
	assert.True(t, cfg.Bin.CustomerBalance.Equal(decimal.NewFromInt(100)))
	assert.True(t, cfg.Bin.SupplierBalance.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 5*time.Second, cfg.Bin.CheckInterval)
}

func TestFromViper_Sobrescribe(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("BIN_THRESHOLD", "35")
	v.Set("WALLET_CUSTOMER_BALANCE", "250")
	v.Set("BIN_CHECK_INTERVAL", "1m")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 35, cfg.Bin.Threshold)
	assert.True(t, cfg.Bin.CustomerBalance.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, time.Minute, cfg.Bin.CheckInterval)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("BIN_INITIAL_STOCK", "40")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 40, cfg.Bin.InitialStock)
}

func TestFromViper_Invalidos(t *testing.T) {
	cases := map[string]string{
		"BIN_THRESHOLD":           "-1",
		"WALLET_SUPPLIER_BALANCE": "-10",
		"BIN_CHECK_INTERVAL":      "0s",
		"HTTP_PORT":               "70000",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			v := viper.New()
			v.Set(key, val)
			_, err := config.FromViper(v)
			assert.Error(t, err)
		})
	}

	t.Run("intervalo ilegible", func(t *testing.T) {
		v := viper.New()
		v.Set("BIN_CHECK_INTERVAL", "cinco")
		_, err := config.FromViper(v)
		assert.Error(t, err)
	})

	for _, key := range []string{"HTTP_PORT", "BIN_THRESHOLD", "BIN_INITIAL_STOCK"} {
		t.Run(key+" no numérico", func(t *testing.T) {
			v := viper.New()
			v.Set(key, "veinte")
			_, err := config.FromViper(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}

	t.Run("saldo ilegible", func(t *testing.T) {
		v := viper.New()
		v.Set("WALLET_CUSTOMER_BALANCE", "mucho")
		_, err := config.FromViper(v)
		assert.Error(t, err)
	})
}
