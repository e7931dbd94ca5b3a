package maropost

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places every monetary field carries.
const MoneyPlaces = 2

// Money is a monetary amount serialized as a string with exactly two decimals ("42.50").
type Money struct {
	d decimal.Decimal
}

// NewMoney rounds d to two places.
func NewMoney(d decimal.Decimal) Money {
	return Money{d: d.Round(MoneyPlaces)}
}

// MoneyFromFloat is a shorthand for NewMoney(decimal.NewFromFloat(f)).
func MoneyFromFloat(f float64) Money {
	return NewMoney(decimal.NewFromFloat(f))
}

// ParseMoney parses a decimal string such as "12.30".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	return NewMoney(d), nil
}

// Decimal returns the underlying value.
func (m Money) Decimal() decimal.Decimal { return m.d }

func (m Money) Add(o Money) Money { return NewMoney(m.d.Add(o.d)) }

func (m Money) Mul(d decimal.Decimal) Money { return NewMoney(m.d.Mul(d)) }

func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

func (m Money) String() string { return m.d.StringFixed(MoneyPlaces) }

// MarshalJSON always emits a quoted string with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both "12.30" and 12.3.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Money{}
		return nil
	}
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	if s == "" {
		*m = Money{}
		return nil
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
