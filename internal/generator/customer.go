package generator

import (
	"fmt"

	"maropost_fixtures/models/maropost"
)

// GenerateCustomer returns the n-th customer (IDs C000001, C000002, ...).
// Its statistics are drawn independently of any order.
func (b *Builder) GenerateCustomer(n int) maropost.Customer {
	f := b.faker

	return maropost.Customer{
		CustomerID: fmt.Sprintf("C%06d", n),
		Username:   f.Username(),
		Email:      f.Email(),
		FirstName:  f.FirstName(),
		LastName:   f.LastName(),
		Company:    b.maybe(0.4, f.Company),
		Phone:      f.PhoneFormatted(),
		Mobile:     f.PhoneFormatted(),

		StreetLine1: f.Street(),
		StreetLine2: b.maybe(0.3, b.secondaryAddress),
		City:        f.City(),
		State:       f.StateAbr(),
		Country:     b.country(),
		PostCode:    f.Zip(),

		DOB:                  b.between(b.now.AddDate(-80, 0, 0), b.now.AddDate(-18, 0, 0)).Format(maropost.DateLayout),
		Gender:               b.pick("Male", "Female", "Other", ""),
		NewsletterSubscriber: f.Bool(),

		DateCreated:   timestamp(b.past(3)),
		DateLastLogin: timestamp(b.recent(30)),

		TotalOrders:       f.Number(0, 50),
		TotalSpent:        b.price(0, 5000),
		AverageOrderValue: b.price(50, 500),
	}
}
