package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	DB      DBConfig
	Session SessionConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Billing BillingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	SeedDemo bool // carga usuarios, catálogo y clientes de demostración al arrancar
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

// StorageConfig selecciona dónde viven clientes, productos, facturas, usuarios y ajustes.
type StorageConfig struct {
	Driver string // memory | postgres
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// SessionConfig selecciona el almacén de sesiones y carritos en curso.
type SessionConfig struct {
	Driver string // memory | redis
}

// RedisConfig conexión a Redis para sesiones.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig configuración del token de sesión firmado.
// Los tokens no expiran: la sesión solo se invalida con logout.
type JWTConfig struct {
	Secret string
	Issuer string
}

// BillingConfig parámetros del punto de venta.
type BillingConfig struct {
	TaxRate  decimal.Decimal // tasa fija aplicada al subtotal (0.10 = 10%)
	Currency string          // código ISO 4217 para PDF y reportes
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

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

// FromViper construye la configuración a partir de una instancia de Viper ya poblada.
func FromViper(v *viper.Viper) (*Config, error) {
	taxRate, err := decimal.NewFromString(getString(v, "BILLING_TAX_RATE", "0.10"))
	if err != nil {
		return nil, fmt.Errorf("BILLING_TAX_RATE inválido: %w", err)
	}
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("BILLING_TAX_RATE no puede ser negativo")
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "supermack-billing"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			SeedDemo: getBool(v, "SEED_DEMO_DATA", true),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString(v, "STORAGE_DRIVER", DriverMemory)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "supermack_billing"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Session: SessionConfig{
			Driver: strings.ToLower(getString(v, "SESSION_DRIVER", DriverMemory)),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "supermack-billing"),
		},
		Billing: BillingConfig{
			TaxRate:  taxRate,
			Currency: strings.ToUpper(getString(v, "BILLING_CURRENCY", "LKR")),
		},
	}

	switch cfg.Storage.Driver {
	case DriverMemory, DriverPostgres:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", cfg.Storage.Driver)
	}
	switch cfg.Session.Driver {
	case DriverMemory, DriverRedis:
	default:
		return nil, fmt.Errorf("SESSION_DRIVER desconocido: %q", cfg.Session.Driver)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
