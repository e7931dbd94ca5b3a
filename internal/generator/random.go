package generator

import (
	"math"
	"strings"
	"time"

	"maropost_fixtures/models/maropost"

	"github.com/brianvoe/gofakeit/v6"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// WithProbability returns gen() with probability p and the zero value of T
// otherwise. Optional fields keep their key in the output and carry "" (or
// false, or 0) when not drawn.
func WithProbability[T any](f *gofakeit.Faker, p float64, gen func() T) T {
	var zero T
	if p <= 0 {
		return zero
	}
	if p >= 1 || f.Float64() < p {
		return gen()
	}
	return zero
}

// orDefault returns v, or fallback when v is the zero value.
func orDefault[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}

func (b *Builder) maybe(p float64, gen func() string) string {
	return WithProbability(b.faker, p, gen)
}

func (b *Builder) pick(options ...string) string {
	return b.faker.RandomString(options)
}

func (b *Builder) price(min, max float64) maropost.Money {
	return maropost.MoneyFromFloat(b.faker.Float64Range(min, max))
}

// weight draws a float rounded to hundredths.
func (b *Builder) weight(min, max float64) float64 {
	return math.Round(b.faker.Float64Range(min, max)*100) / 100
}

// code returns n random upper-case letters and digits.
func (b *Builder) code(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(codeAlphabet[b.faker.Number(0, len(codeAlphabet)-1)])
	}
	return sb.String()
}

func (b *Builder) words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = b.faker.LoremIpsumWord()
	}
	return strings.Join(w, " ")
}

func (b *Builder) between(from, to time.Time) time.Time {
	return b.faker.DateRange(from, to).UTC()
}

// recent draws a moment within the last days before the reference time.
func (b *Builder) recent(days int) time.Time {
	return b.between(b.now.AddDate(0, 0, -days), b.now)
}

// soon draws a moment within the next days after the reference time.
func (b *Builder) soon(days int) time.Time {
	return b.between(b.now, b.now.AddDate(0, 0, days))
}

func (b *Builder) past(years int) time.Time {
	return b.between(b.now.AddDate(-years, 0, 0), b.now)
}

func timestamp(t time.Time) string {
	return t.UTC().Format(maropost.TimestampLayout)
}

func (b *Builder) secondaryAddress() string {
	return b.faker.Numerify(b.pick("Apt. ###", "Suite ###", "Unit ##"))
}

func (b *Builder) country() string {
	return b.pick("AU", "US", "GB", "NZ")
}
