package app

import (
	"path/filepath"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Report output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the complete application configuration, loadable from
// environment variables (REPORT_ prefix), flags, or YAML config files.
// Per-file overrides default to <data-dir>/<name>.csv; files with a .gz
// suffix are decompressed transparently.
type Config struct {
	DataDir    string `default:"data" usage:"Directory containing the input CSV files" flag:"data-dir"`
	Customers  string `default:"" usage:"Customers file (default <data-dir>/customers.csv)"`
	Products   string `default:"" usage:"Products file (default <data-dir>/products.csv)"`
	Orders     string `default:"" usage:"Orders file (default <data-dir>/orders.csv)"`
	Promotions string `default:"" usage:"Promotions file (default <data-dir>/promotions.csv)"`
	Zones      string `default:"" usage:"Shipping zones file (default <data-dir>/shipping_zones.csv)"`
	Format     string `default:"text" usage:"Report format: text or json"`
	Output     string `default:"-" usage:"Report output path (- for stdout)"`
	Workers    int    `default:"4" usage:"Customers priced in parallel"`
}

// LoadConfig loads configuration from environment variables, flags, and
// YAML config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "REPORT",
		Files:     []string{"config.yaml", "/etc/pricing-report/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return nil, errors.Errorf("unknown report format %q", cfg.Format)
	}
	if cfg.Workers < 1 {
		return nil, errors.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}

	return &cfg, nil
}

// CustomersPath resolves the customers file path.
func (c *Config) CustomersPath() string { return c.path(c.Customers, "customers.csv") }

// ProductsPath resolves the products file path.
func (c *Config) ProductsPath() string { return c.path(c.Products, "products.csv") }

// OrdersPath resolves the orders file path.
func (c *Config) OrdersPath() string { return c.path(c.Orders, "orders.csv") }

// PromotionsPath resolves the promotions file path.
func (c *Config) PromotionsPath() string { return c.path(c.Promotions, "promotions.csv") }

// ZonesPath resolves the shipping zones file path.
func (c *Config) ZonesPath() string { return c.path(c.Zones, "shipping_zones.csv") }

func (c *Config) path(override, name string) string {
	if override != "" {
		return override
	}
	return filepath.Join(c.DataDir, name)
}
