package shared_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/tienhung-ho/my-hotel-merger/internal/shared"
)

func TestLoadDefaults(t *testing.T) {
	cfg := shared.Load(viper.New())

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("http addr: %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != "" {
		t.Fatalf("metrics should default to disabled, got %s", cfg.MetricsAddr)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("cache should default to disabled, got %s", cfg.RedisAddr)
	}
	if len(cfg.Suppliers) != 3 || cfg.Suppliers[0] != "acme" {
		t.Fatalf("suppliers: %v", cfg.Suppliers)
	}
	if cfg.CacheTTL != 15*time.Minute {
		t.Fatalf("cache ttl: %s", cfg.CacheTTL)
	}
	if cfg.FetchWorkers != 3 {
		t.Fatalf("workers: %d", cfg.FetchWorkers)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOTELMERGER_HTTP_ADDR", ":9999")
	t.Setenv("HOTELMERGER_SUPPLIER_BASE_URL", "http://localhost:7000/suppliers")
	t.Setenv("HOTELMERGER_CACHE_TTL_SECONDS", "60")

	cfg := shared.Load(viper.New())

	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("http addr: %s", cfg.HTTPAddr)
	}
	if cfg.SupplierBase != "http://localhost:7000/suppliers" {
		t.Fatalf("supplier base: %s", cfg.SupplierBase)
	}
	if cfg.CacheTTL != time.Minute {
		t.Fatalf("cache ttl: %s", cfg.CacheTTL)
	}
}
