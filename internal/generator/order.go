package generator

import (
	"fmt"
	"strings"
	"time"

	"maropost_fixtures/models/maropost"

	"github.com/shopspring/decimal"
)

var shippingTaxRate = decimal.New(1, -1)

// GenerateOrderLines returns count lines whose IDs are prefixed with orderID.
func (b *Builder) GenerateOrderLines(orderID string, count int) []maropost.OrderLine {
	f := b.faker
	lines := make([]maropost.OrderLine, 0, count)

	for i := 0; i < count; i++ {
		lines = append(lines, maropost.OrderLine{
			OrderLineID:        fmt.Sprintf("%s-%d", orderID, i),
			SKU:                b.pick("SAMPLE_P10", "SAMPLE_P1_G", "SAMPLE_P11", "SAMPLE_P12", "SAMPLE_V2_SML") + b.code(3),
			ProductName:        f.ProductName(),
			Quantity:           f.Number(1, 5),
			UnitPrice:          b.price(5, 500),
			PickQuantity:       f.Number(0, 5),
			BackorderQuantity:  f.Number(0, 2),
			Tax:                b.price(0, 50),
			TaxCode:            b.pick("GST", "VAT", "NONE"),
			WarehouseID:        f.Number(1, 5),
			WarehouseName:      b.pick("Main Warehouse", "East Coast", "West Coast", "Central"),
			WarehouseReference: "WH-" + b.code(5),
			PercentDiscount:    b.price(0, 20),
			ProductDiscount:    b.price(0, 50),
			CostPrice:          b.price(3, 300),
			ShippingMethod:     b.pick("Standard Shipping", "Express Shipping", "Overnight"),
			ShippingTracking:   b.code(16),
			Weight:             b.weight(0.1, 25),
			BinLoc:             fmt.Sprintf("%s%d-%d", strings.ToUpper(f.Letter()), f.Number(1, 99), f.Number(1, 20)),
		})
	}

	return lines
}

// GenerateOrder returns the n-th order (IDs N000001, N000002, ...). Totals are
// derived from its lines.
func (b *Builder) GenerateOrder(n int) maropost.Order {
	f := b.faker
	orderID := fmt.Sprintf("N%06d", n)
	firstName := f.FirstName()
	lastName := f.LastName()
	company := b.maybe(0.3, f.Company)

	lines := b.GenerateOrderLines(orderID, f.Number(b.cfg.MinOrderLines, b.cfg.MaxOrderLines))
	shippingTotal := b.price(5, 30)

	order := maropost.Order{
		OrderID:  orderID,
		ID:       orderID,
		Username: f.Username(),
		Email:    f.Email(),

		BillFirstName:   firstName,
		BillLastName:    lastName,
		BillCompany:     company,
		BillStreetLine1: f.Street(),
		BillStreetLine2: b.maybe(0.3, b.secondaryAddress),
		BillCity:        strings.ToUpper(f.City()),
		BillState:       f.StateAbr(),
		BillCountry:     b.country(),
		BillPostCode:    f.Zip(),
		BillPhone:       f.PhoneFormatted(),

		ShipFirstName:   orDefault(b.maybe(0.8, f.FirstName), firstName),
		ShipLastName:    orDefault(b.maybe(0.8, f.LastName), lastName),
		ShipCompany:     orDefault(b.maybe(0.3, f.Company), company),
		ShipStreetLine1: f.Street(),
		ShipStreetLine2: b.maybe(0.3, b.secondaryAddress),
		ShipCity:        strings.ToUpper(f.City()),
		ShipState:       f.StateAbr(),
		ShipCountry:     b.country(),
		ShipPostCode:    f.Zip(),
		ShipPhone:       f.PhoneFormatted(),

		OrderStatus:         b.pick("New", "New Backorder", "Pick", "Pack", "Pending Dispatch", "Dispatched", "On Hold"),
		OrderType:           b.pick("sales", "dropshipping"),
		ShippingOption:      b.pick("Standard Shipping", "Express Shipping", "Overnight", "Free Shipping"),
		ShippingSignature:   f.Bool(),
		DeliveryInstruction: b.maybe(0.4, func() string { return f.Sentence(8) }),

		ShippingTotal:    shippingTotal,
		TaxInclusive:     f.Bool(),
		ShippingDiscount: b.price(0, 10),
		CouponCode:       b.maybe(0.2, func() string { return b.code(8) }),
		CouponDiscount:   WithProbability(f, 0.2, func() maropost.Money { return b.price(5, 50) }),

		DatePlaced:   timestamp(b.between(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))),
		DateRequired: b.maybe(0.6, func() string { return timestamp(b.soon(7)) }),
		DateInvoiced: timestamp(b.recent(30)),
		DatePaid:     b.maybe(0.8, func() string { return timestamp(b.recent(30)) }),

		PurchaseOrderNumber: b.maybe(0.3, func() string { return "PO-" + b.code(10) }),
		SalesChannel:        b.pick("Web", "eBay", "Amazon", "Phone", "In-Store"),
		SalesPerson:         b.maybe(0.4, f.Name),

		OrderLine: lines,

		CompleteStatus:     b.pick("Approved", "Incomplete"),
		PaymentStatus:      b.pick("FullyPaid", "PartialPaid", "Pending"),
		InternalOrderNotes: b.maybe(0.3, func() string { return f.Sentence(8) }),
	}
	ApplyTotals(&order)

	return order
}

// ApplyTotals derives ProductSubtotal, OrderTax, GrandTotal and ShippingTax
// from the order lines and ShippingTotal.
func ApplyTotals(o *maropost.Order) {
	var subtotal, tax maropost.Money
	for _, line := range o.OrderLine {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		tax = tax.Add(line.Tax)
	}

	o.ProductSubtotal = subtotal
	o.OrderTax = tax
	o.GrandTotal = subtotal.Add(o.ShippingTotal).Add(tax)
	o.ShippingTax = o.ShippingTotal.Mul(shippingTaxRate)
}
