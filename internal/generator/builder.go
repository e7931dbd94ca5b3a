// Package generator builds the randomized Maropost fixture dataset.
package generator

import (
	"time"

	"maropost_fixtures/internal/config"
	"maropost_fixtures/models/maropost"

	"github.com/brianvoe/gofakeit/v6"
)

// Builder generates records from a single faker source. It is not safe for
// concurrent use.
type Builder struct {
	faker *gofakeit.Faker
	now   time.Time
	cfg   config.DatasetConfig
}

// New returns a Builder seeded from cfg.Seed (0 picks a random seed) with
// cfg.Now() as the reference time for relative dates.
func New(cfg config.DatasetConfig) *Builder {
	return NewWithFaker(gofakeit.New(cfg.Seed), cfg.Now(), cfg)
}

// NewWithFaker returns a Builder drawing from f.
func NewWithFaker(f *gofakeit.Faker, now time.Time, cfg config.DatasetConfig) *Builder {
	if cfg.MinOrderLines < 1 {
		cfg.MinOrderLines = config.DefaultMinOrderLines
	}
	if cfg.MinOrderLines > config.MaxOrderLinesLimit {
		cfg.MinOrderLines = config.MaxOrderLinesLimit
	}
	if cfg.MaxOrderLines < cfg.MinOrderLines {
		cfg.MaxOrderLines = cfg.MinOrderLines
	}
	if cfg.MaxOrderLines > config.MaxOrderLinesLimit {
		cfg.MaxOrderLines = config.MaxOrderLinesLimit
	}
	return &Builder{faker: f, now: now.UTC(), cfg: cfg}
}

// BuildDataset generates cfg.Orders orders, cfg.Customers customers and
// cfg.Products products, in that order.
func (b *Builder) BuildDataset() maropost.Dataset {
	ds := maropost.Dataset{
		Orders:    make([]maropost.Order, 0, b.cfg.Orders),
		Customers: make([]maropost.Customer, 0, b.cfg.Customers),
		Products:  make([]maropost.Product, 0, b.cfg.Products),
	}

	for i := 1; i <= b.cfg.Orders; i++ {
		ds.Orders = append(ds.Orders, b.GenerateOrder(i))
	}
	for i := 1; i <= b.cfg.Customers; i++ {
		ds.Customers = append(ds.Customers, b.GenerateCustomer(i))
	}
	for i := 1; i <= b.cfg.Products; i++ {
		ds.Products = append(ds.Products, b.GenerateProduct(i))
	}

	return ds
}
