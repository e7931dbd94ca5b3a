// Package maropost describes the record shapes of the Maropost (Neto) order
// management API as they appear in the fixture file.
package maropost

import "strconv"

// Collection keys of the fixture document.
const (
	OrdersKey    = "maropost-orders"
	CustomersKey = "maropost-customers"
	ProductsKey  = "maropost-products"
)

// CollectionKeys lists the top-level keys in document order.
var CollectionKeys = []string{OrdersKey, CustomersKey, ProductsKey}

// TimestampLayout is the Neto date format, UTC truncated to seconds.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is used for dates without a time part (DOB).
const DateLayout = "2006-01-02"

// Dataset is the whole fixture document.
type Dataset struct {
	Orders    []Order    `json:"maropost-orders" validate:"dive"`
	Customers []Customer `json:"maropost-customers" validate:"dive"`
	Products  []Product  `json:"maropost-products" validate:"dive"`
}

// Order mirrors a Neto GetOrder record. Optional fields are always present
// and hold "" when not set.
type Order struct {
	OrderID  string `json:"OrderID" validate:"required"`
	ID       string `json:"ID" validate:"required,eqfield=OrderID"`
	Username string `json:"Username"`
	Email    string `json:"Email" validate:"required,contains=@"`

	BillFirstName   string `json:"BillFirstName" validate:"required"`
	BillLastName    string `json:"BillLastName" validate:"required"`
	BillCompany     string `json:"BillCompany"`
	BillStreetLine1 string `json:"BillStreetLine1" validate:"required"`
	BillStreetLine2 string `json:"BillStreetLine2"`
	BillCity        string `json:"BillCity"`
	BillState       string `json:"BillState"`
	BillCountry     string `json:"BillCountry" validate:"required,len=2"`
	BillPostCode    string `json:"BillPostCode"`
	BillPhone       string `json:"BillPhone"`

	ShipFirstName   string `json:"ShipFirstName" validate:"required"`
	ShipLastName    string `json:"ShipLastName" validate:"required"`
	ShipCompany     string `json:"ShipCompany"`
	ShipStreetLine1 string `json:"ShipStreetLine1" validate:"required"`
	ShipStreetLine2 string `json:"ShipStreetLine2"`
	ShipCity        string `json:"ShipCity"`
	ShipState       string `json:"ShipState"`
	ShipCountry     string `json:"ShipCountry" validate:"required,len=2"`
	ShipPostCode    string `json:"ShipPostCode"`
	ShipPhone       string `json:"ShipPhone"`

	OrderStatus         string `json:"OrderStatus" validate:"required"`
	OrderType           string `json:"OrderType" validate:"oneof=sales dropshipping"`
	ShippingOption      string `json:"ShippingOption"`
	ShippingSignature   bool   `json:"ShippingSignature"`
	DeliveryInstruction string `json:"DeliveryInstruction"`

	GrandTotal       Money  `json:"GrandTotal"`
	ProductSubtotal  Money  `json:"ProductSubtotal"`
	ShippingTotal    Money  `json:"ShippingTotal"`
	ShippingTax      Money  `json:"ShippingTax"`
	OrderTax         Money  `json:"OrderTax"`
	TaxInclusive     bool   `json:"TaxInclusive"`
	ShippingDiscount Money  `json:"ShippingDiscount"`
	CouponCode       string `json:"CouponCode"`
	CouponDiscount   Money  `json:"CouponDiscount"`

	DatePlaced   string `json:"DatePlaced" validate:"required"`
	DateRequired string `json:"DateRequired"`
	DateInvoiced string `json:"DateInvoiced"`
	DatePaid     string `json:"DatePaid"`

	PurchaseOrderNumber string `json:"PurchaseOrderNumber"`
	SalesChannel        string `json:"SalesChannel"`
	SalesPerson         string `json:"SalesPerson"`

	OrderLine []OrderLine `json:"OrderLine" validate:"min=1,max=4,dive"`

	CompleteStatus     string `json:"CompleteStatus"`
	PaymentStatus      string `json:"PaymentStatus"`
	InternalOrderNotes string `json:"InternalOrderNotes"`
}

// OrderLine is one line of an Order. Counters are string-typed on the wire.
type OrderLine struct {
	OrderLineID        string  `json:"OrderLineID" validate:"required"`
	SKU                string  `json:"SKU" validate:"required"`
	ProductName        string  `json:"ProductName"`
	Quantity           int     `json:"Quantity,string" validate:"min=1,max=5"`
	UnitPrice          Money   `json:"UnitPrice"`
	PickQuantity       int     `json:"PickQuantity,string" validate:"min=0,max=5"`
	BackorderQuantity  int     `json:"BackorderQuantity,string" validate:"min=0,max=2"`
	Tax                Money   `json:"Tax"`
	TaxCode            string  `json:"TaxCode" validate:"oneof=GST VAT NONE"`
	WarehouseID        int     `json:"WarehouseID" validate:"min=1"`
	WarehouseName      string  `json:"WarehouseName"`
	WarehouseReference string  `json:"WarehouseReference"`
	PercentDiscount    Money   `json:"PercentDiscount"`
	ProductDiscount    Money   `json:"ProductDiscount"`
	CostPrice          Money   `json:"CostPrice"`
	ShippingMethod     string  `json:"ShippingMethod"`
	ShippingTracking   string  `json:"ShippingTracking"`
	Weight             float64 `json:"Weight" validate:"gte=0"`
	BinLoc             string  `json:"BinLoc"`
}

// Customer mirrors a Neto GetCustomer record. The statistics are not derived
// from any Order in the dataset.
type Customer struct {
	CustomerID string `json:"CustomerID" validate:"required"`
	Username   string `json:"Username"`
	Email      string `json:"Email" validate:"required,contains=@"`
	FirstName  string `json:"FirstName" validate:"required"`
	LastName   string `json:"LastName" validate:"required"`
	Company    string `json:"Company"`
	Phone      string `json:"Phone"`
	Mobile     string `json:"Mobile"`

	StreetLine1 string `json:"StreetLine1"`
	StreetLine2 string `json:"StreetLine2"`
	City        string `json:"City"`
	State       string `json:"State"`
	Country     string `json:"Country" validate:"required,len=2"`
	PostCode    string `json:"PostCode"`

	DOB                  string `json:"DOB"`
	Gender               string `json:"Gender" validate:"oneof=Male Female Other ''"`
	NewsletterSubscriber bool   `json:"NewsletterSubscriber"`

	DateCreated   string `json:"DateCreated"`
	DateLastLogin string `json:"DateLastLogin"`

	TotalOrders       int   `json:"TotalOrders" validate:"min=0"`
	TotalSpent        Money `json:"TotalSpent"`
	AverageOrderValue Money `json:"AverageOrderValue"`
}

// Product mirrors a Neto GetItem record. Inventory counters are independent
// of each other.
type Product struct {
	ProductID int    `json:"ProductID" validate:"min=1"`
	SKU       string `json:"SKU" validate:"required"`
	Name      string `json:"Name" validate:"required"`
	Brand     string `json:"Brand"`
	Model     string `json:"Model"`

	DefaultPrice Money `json:"DefaultPrice"`
	CostPrice    Money `json:"CostPrice"`
	RRP          Money `json:"RRP"`

	WarehouseQuantity int `json:"WarehouseQuantity" validate:"min=0"`
	CommittedQuantity int `json:"CommittedQuantity" validate:"min=0"`
	AvailableQuantity int `json:"AvailableQuantity" validate:"min=0"`

	ShortDescription string  `json:"ShortDescription"`
	Description      string  `json:"Description"`
	Weight           float64 `json:"Weight" validate:"gte=0"`
	Dimensions       string  `json:"Dimensions"`

	Category    string `json:"Category"`
	Subcategory string `json:"Subcategory"`

	IsActive   bool `json:"IsActive"`
	IsVisible  bool `json:"IsVisible"`
	IsFeatured bool `json:"IsFeatured"`

	DateCreated string `json:"DateCreated"`
	DateUpdated string `json:"DateUpdated"`

	MetaTitle       string `json:"MetaTitle"`
	MetaDescription string `json:"MetaDescription"`

	SupplierSKU  string `json:"SupplierSKU"`
	SupplierName string `json:"SupplierName"`
}

// RecordID returns the identifier the mock API looks records up by.
func (o Order) RecordID() string { return o.OrderID }

func (c Customer) RecordID() string { return c.CustomerID }

func (p Product) RecordID() string { return strconv.Itoa(p.ProductID) }
