// Package api serves a fixture document as a read-only json-server style API.
package api

import (
	"fmt"

	"maropost_fixtures/internal/cache"
	"maropost_fixtures/models/maropost"
)

// Store keeps each collection in file order for listing and indexed by
// record ID for lookups. The dataset stays the source of truth: a record
// evicted from an index by size or TTL limits is found again in the dataset.
type Store struct {
	dataset   maropost.Dataset
	orders    *cache.RecordCache[maropost.Order]
	customers *cache.RecordCache[maropost.Customer]
	products  *cache.RecordCache[maropost.Product]
}

// NewStore indexes ds. Call Close when done.
func NewStore(ds maropost.Dataset, opts cache.Options) (*Store, error) {
	orders, err := cache.New(opts, maropost.Order.RecordID)
	if err != nil {
		return nil, fmt.Errorf("orders cache: %w", err)
	}
	customers, err := cache.New(opts, maropost.Customer.RecordID)
	if err != nil {
		orders.Close()
		return nil, fmt.Errorf("customers cache: %w", err)
	}
	products, err := cache.New(opts, maropost.Product.RecordID)
	if err != nil {
		orders.Close()
		customers.Close()
		return nil, fmt.Errorf("products cache: %w", err)
	}

	orders.LoadFromSlice(ds.Orders)
	customers.LoadFromSlice(ds.Customers)
	products.LoadFromSlice(ds.Products)

	return &Store{dataset: ds, orders: orders, customers: customers, products: products}, nil
}

// List returns a collection by its document key.
func (s *Store) List(collection string) (any, bool) {
	switch collection {
	case maropost.OrdersKey:
		return s.dataset.Orders, true
	case maropost.CustomersKey:
		return s.dataset.Customers, true
	case maropost.ProductsKey:
		return s.dataset.Products, true
	}
	return nil, false
}

// Get looks a record up. The second result is false for an unknown
// collection, the third for an unknown id.
func (s *Store) Get(collection, id string) (record any, knownCollection, found bool) {
	switch collection {
	case maropost.OrdersKey:
		record, found = lookup(s.orders, s.dataset.Orders, maropost.Order.RecordID, id)
	case maropost.CustomersKey:
		record, found = lookup(s.customers, s.dataset.Customers, maropost.Customer.RecordID, id)
	case maropost.ProductsKey:
		record, found = lookup(s.products, s.dataset.Products, maropost.Product.RecordID, id)
	default:
		return nil, false, false
	}
	return record, true, found
}

// Indexed reports how many records each index currently holds.
func (s *Store) Indexed() (orders, customers, products int) {
	return s.orders.Len(), s.customers.Len(), s.products.Len()
}

// lookup tries the index first and falls back to a scan of records,
// putting the record back into the index on a hit.
func lookup[T any](c *cache.RecordCache[T], records []T, key func(T) string, id string) (any, bool) {
	if v, ok := c.Get(id); ok {
		return v, true
	}
	for _, r := range records {
		if key(r) == id {
			c.Set(r)
			return r, true
		}
	}
	return nil, false
}

// Close stops the cache cleaners.
func (s *Store) Close() {
	s.orders.Close()
	s.customers.Close()
	s.products.Close()
}
