package app

import (
	"context"
	"io"
	"os"
	"sort"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/orderlab/pricing-report/internal/domain/customer"
	"github.com/orderlab/pricing-report/internal/domain/order"
	"github.com/orderlab/pricing-report/internal/domain/product"
	"github.com/orderlab/pricing-report/internal/domain/promo"
	"github.com/orderlab/pricing-report/internal/domain/shipping"
	"github.com/orderlab/pricing-report/internal/pricing"
	"github.com/orderlab/pricing-report/internal/report"
	"github.com/orderlab/pricing-report/internal/repository"
)

// Run loads the input files, prices every customer's orders, and writes
// the report. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	runID := uuid.New().String()
	lg = lg.With(zap.String("run_id", runID))
	ctx = zctx.Base(ctx, lg)

	lg.Info("Loading input files", zap.String("data_dir", cfg.DataDir))

	customers, err := repository.Customers(ctx, cfg.CustomersPath())
	if err != nil {
		return errors.Wrap(err, "load customers")
	}
	products, err := repository.Products(ctx, cfg.ProductsPath())
	if err != nil {
		return errors.Wrap(err, "load products")
	}
	lines, err := repository.Orders(ctx, cfg.OrdersPath())
	if err != nil {
		return errors.Wrap(err, "load orders")
	}
	promotions, err := repository.Promotions(ctx, cfg.PromotionsPath())
	if err != nil {
		return errors.Wrap(err, "load promotions")
	}
	zones, err := repository.Zones(ctx, cfg.ZonesPath())
	if err != nil {
		return errors.Wrap(err, "load shipping zones")
	}

	lg.Info("Input loaded",
		zap.Int("customers", len(customers)),
		zap.Int("products", len(products)),
		zap.Int("order_lines", len(lines)),
		zap.Int("promotions", len(promotions)),
		zap.Int("zones", len(zones)),
	)

	summaries := process(cfg.Workers, customers, lines, products, promotions, zones)

	grandTotal, taxCollected := report.Totals(summaries)
	lg.Info("Pricing complete",
		zap.Int("customers_priced", len(summaries)),
		zap.String("grand_total", grandTotal.StringFixed(2)),
		zap.String("tax_collected", taxCollected.StringFixed(2)),
	)

	return write(cfg, runID, summaries)
}

// process prices customers in ascending customer-id order. Customers with
// no order lines are skipped. Pricing is pure and the lookup maps are
// read-only, so customers fan out across workers; each summary lands in a
// preassigned slot to keep the output order deterministic.
func process(
	workers int,
	customers map[string]customer.Customer,
	lines []order.Line,
	products map[string]product.Product,
	promotions map[string]promo.Promotion,
	zones map[string]shipping.Zone,
) []pricing.Summary {
	byCustomer := make(map[string][]order.Line, len(customers))
	for _, l := range lines {
		byCustomer[l.CustomerID] = append(byCustomer[l.CustomerID], l)
	}

	ids := make([]string, 0, len(customers))
	for id := range customers {
		if len(byCustomer[id]) == 0 {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	proc := pricing.NewProcessor(pricing.DefaultConfig())
	summaries := make([]pricing.Summary, len(ids))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			summaries[i] = proc.Process(customers[id], byCustomer[id], products, promotions, zones)
			return nil
		})
	}
	// Workers never return errors; pricing is total over valid records.
	_ = g.Wait()

	return summaries
}

// write renders the summaries in the configured format to the configured
// destination.
func write(cfg *Config, runID string, summaries []pricing.Summary) error {
	var out io.Writer = os.Stdout
	if cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return errors.Wrap(err, "create output file")
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	switch cfg.Format {
	case FormatJSON:
		if err := report.JSON(out, runID, time.Now(), summaries); err != nil {
			return errors.Wrap(err, "write json report")
		}
	default:
		if _, err := io.WriteString(out, report.Text(summaries)); err != nil {
			return errors.Wrap(err, "write text report")
		}
	}
	return nil
}
