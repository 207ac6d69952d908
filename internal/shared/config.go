package shared

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	SupplierBase string
	SupplierKey  string
	Suppliers    []string
	SupplierRPS  int
	FetchWorkers int
	CacheTTL     time.Duration
	FixtureDir   string
}

// Load reads configuration from the given viper instance, layered as
// defaults < config file < HOTELMERGER_* environment. A local .env file
// is folded into the environment first when present.
func Load(v *viper.Viper) Config {
	_ = godotenv.Load()

	v.SetEnvPrefix("HOTELMERGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	return Config{
		AppEnv:       v.GetString("app_env"),
		HTTPAddr:     v.GetString("http_addr"),
		MetricsAddr:  v.GetString("metrics_addr"),
		RedisAddr:    v.GetString("redis_addr"),
		RedisPass:    v.GetString("redis_password"),
		RedisDB:      v.GetInt("redis_db"),
		SupplierBase: v.GetString("supplier_base_url"),
		SupplierKey:  v.GetString("supplier_api_key"),
		Suppliers:    v.GetStringSlice("suppliers"),
		SupplierRPS:  v.GetInt("supplier_rps"),
		FetchWorkers: v.GetInt("fetch_workers"),
		CacheTTL:     time.Duration(v.GetInt("cache_ttl_seconds")) * time.Second,
		FixtureDir:   v.GetString("fixture_dir"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "prod")
	v.SetDefault("http_addr", ":8080")
	// Empty disables the standalone metrics listener.
	v.SetDefault("metrics_addr", "")
	// Empty disables the supplier payload cache.
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("supplier_base_url", "https://5f2be0b4ffc88500167b85a0.mockapi.io/suppliers")
	v.SetDefault("supplier_api_key", "")
	v.SetDefault("suppliers", []string{"acme", "patagonia", "paperflies"})
	v.SetDefault("supplier_rps", 5)
	v.SetDefault("fetch_workers", 3)
	v.SetDefault("cache_ttl_seconds", 900)
	v.SetDefault("fixture_dir", "")
}
