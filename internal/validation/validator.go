// Package validation проверяет записи фикстур по тегам validate и правилу расчета итогов заказа.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"maropost_fixtures/models/maropost"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterStructValidation(orderTotals, maropost.Order{})
	return val
}

// orderTotals проверяет GrandTotal = ProductSubtotal + ShippingTotal + OrderTax
// и что ProductSubtotal и OrderTax совпадают с суммами по строкам.
func orderTotals(sl validator.StructLevel) {
	o := sl.Current().Interface().(maropost.Order)

	subtotal, tax := decimal.Zero, decimal.Zero
	for _, line := range o.OrderLine {
		subtotal = subtotal.Add(line.UnitPrice.Decimal().Mul(decimal.NewFromInt(int64(line.Quantity))))
		tax = tax.Add(line.Tax.Decimal())
	}
	if !o.ProductSubtotal.Decimal().Equal(subtotal.Round(maropost.MoneyPlaces)) {
		sl.ReportError(o.ProductSubtotal, "ProductSubtotal", "ProductSubtotal", "line_subtotal", subtotal.StringFixed(maropost.MoneyPlaces))
	}
	if !o.OrderTax.Decimal().Equal(tax.Round(maropost.MoneyPlaces)) {
		sl.ReportError(o.OrderTax, "OrderTax", "OrderTax", "line_tax", tax.StringFixed(maropost.MoneyPlaces))
	}
	grand := o.ProductSubtotal.Add(o.ShippingTotal).Add(o.OrderTax)
	if !o.GrandTotal.Equal(grand) {
		sl.ReportError(o.GrandTotal, "GrandTotal", "GrandTotal", "grand_total", grand.String())
	}
}

// ValidateRecord проверяет, соответствует ли запись правилам валидации.
func ValidateRecord(r interface{}) error {
	if err := v.Struct(r); err != nil {
		var invalidValidationError *validator.InvalidValidationError
		if errors.As(err, &invalidValidationError) {
			return err
		}
		// Aggregate readable message
		var sb strings.Builder
		sb.WriteString("validation failed:")
		for _, fe := range err.(validator.ValidationErrors) {
			fmt.Fprintf(&sb, " %s(%s %s)", fe.Namespace(), fe.Tag(), fe.Param())
		}
		return errors.New(sb.String())
	}
	return nil
}

// ValidateDataset проверяет все записи набора данных.
func ValidateDataset(ds maropost.Dataset) error {
	return ValidateRecord(ds)
}

// ValidateRecordID проверяет, что идентификатор записи состоит из букв, цифр и дефиса.
func ValidateRecordID(id string) bool {
	if len(id) == 0 {
		return false
	}

	for _, r := range id {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r == '-') {
			return false
		}
	}
	return true
}
