package generator

import (
	"fmt"

	"maropost_fixtures/models/maropost"
)

// GenerateProduct returns the n-th catalog product. Inventory counters are
// drawn independently, AvailableQuantity is not derived from the others.
func (b *Builder) GenerateProduct(n int) maropost.Product {
	f := b.faker

	return maropost.Product{
		ProductID: n,
		SKU:       "PROD-" + b.code(8),
		Name:      f.ProductName(),
		Brand:     f.Company(),
		Model:     f.CarModel(),

		DefaultPrice: b.price(10, 1000),
		CostPrice:    b.price(5, 500),
		RRP:          b.price(15, 1500),

		WarehouseQuantity: f.Number(0, 500),
		CommittedQuantity: f.Number(0, 50),
		AvailableQuantity: f.Number(0, 450),

		ShortDescription: f.ProductDescription(),
		Description:      f.Paragraph(2, 3, 12, "\n\n"),
		Weight:           b.weight(0.1, 50),
		Dimensions:       fmt.Sprintf("%dx%dx%d", f.Number(10, 100), f.Number(10, 100), f.Number(10, 100)),

		Category:    b.pick("Electronics", "Clothing", "Home & Garden", "Sports", "Books", "Toys"),
		Subcategory: f.ProductCategory(),

		IsActive:   f.Bool(),
		IsVisible:  f.Bool(),
		IsFeatured: WithProbability(f, 0.2, func() bool { return true }),

		DateCreated: timestamp(b.past(2)),
		DateUpdated: timestamp(b.recent(90)),

		MetaTitle:       b.maybe(0.6, func() string { return b.words(5) }),
		MetaDescription: b.maybe(0.6, func() string { return f.Sentence(10) }),

		SupplierSKU:  b.maybe(0.7, func() string { return "SUP-" + b.code(10) }),
		SupplierName: b.maybe(0.7, f.Company),
	}
}
