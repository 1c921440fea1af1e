package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Bin  BinConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BinConfig estado inicial del contenedor y de las billeteras, más el intervalo de revisión periódica.
type BinConfig struct {
	InitialStock    int
	Threshold       int
	CustomerBalance decimal.Decimal
	SupplierBalance decimal.Decimal
	CheckInterval   time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BIN_THRESHOLD, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye y valida la configuración a partir de una instancia de Viper ya poblada.
func FromViper(v *viper.Viper) (*Config, error) {
	interval, err := getDuration(v, "BIN_CHECK_INTERVAL", 5*time.Second)
	if err != nil {
		return nil, err
	}
	customer, err := getDecimal(v, "WALLET_CUSTOMER_BALANCE", decimal.NewFromInt(100))
	if err != nil {
		return nil, err
	}
	supplier, err := getDecimal(v, "WALLET_SUPPLIER_BALANCE", decimal.NewFromInt(50))
	if err != nil {
		return nil, err
	}
	port, err := getInt(v, "HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	stock, err := getInt(v, "BIN_INITIAL_STOCK", 100)
	if err != nil {
		return nil, err
	}
	threshold, err := getInt(v, "BIN_THRESHOLD", 20)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "smartbin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: port,
		},
		Bin: BinConfig{
			InitialStock:    stock,
			Threshold:       threshold,
			CustomerBalance: customer,
			SupplierBalance: supplier,
			CheckInterval:   interval,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	if c.Bin.InitialStock < 0 {
		return fmt.Errorf("config: BIN_INITIAL_STOCK no puede ser negativo")
	}
	if c.Bin.Threshold < 0 {
		return fmt.Errorf("config: BIN_THRESHOLD no puede ser negativo")
	}
	if c.Bin.CustomerBalance.IsNegative() || c.Bin.SupplierBalance.IsNegative() {
		return fmt.Errorf("config: los saldos iniciales no pueden ser negativos")
	}
	if c.Bin.CheckInterval <= 0 {
		return fmt.Errorf("config: BIN_CHECK_INTERVAL debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch raw := v.Get(key).(type) {
	case int:
		return raw, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, fmt.Errorf("config: %s: %w", key, err)
		}
		return n, nil
	default:
		n, err := cast.ToIntE(raw)
		if err != nil {
			return 0, fmt.Errorf("config: %s: %w", key, err)
		}
		return n, nil
	}
}

func getDuration(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func getDecimal(v *viper.Viper, key string, def decimal.Decimal) (decimal.Decimal, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
