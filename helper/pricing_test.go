package helper

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func nd(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d(s), Valid: true}
}

func TestDiscountPercentage(t *testing.T) {
	cases := []struct {
		name     string
		price    decimal.Decimal
		original decimal.NullDecimal
		want     int
	}{
		{"no original price", d("10000"), decimal.NullDecimal{}, 0},
		{"original equals price", d("10000"), nd("10000"), 0},
		{"original below price", d("10000"), nd("9000"), 0},
		{"quarter off", d("7500"), nd("10000"), 25},
		{"rounds to nearest", d("6667"), nd("10000"), 33},
		{"rounds half up", d("6650"), nd("10000"), 34},
		{"zero original", d("10000"), decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DiscountPercentage(tc.price, tc.original)
			if got != tc.want {
				t.Errorf("DiscountPercentage(%s, %v) = %d, want %d", tc.price, tc.original, got, tc.want)
			}
		})
	}
}

func TestPricePerDay(t *testing.T) {
	cases := []struct {
		name  string
		price decimal.Decimal
		days  int
		want  decimal.Decimal
	}{
		{"even split", d("10000"), 4, d("2500")},
		{"rounds to 2dp", d("10000"), 3, d("3333.33")},
		{"zero days returns price", d("10000"), 0, d("10000")},
		{"negative days returns price", d("10000"), -1, d("10000")},
		{"single day", d("4999.50"), 1, d("4999.50")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PricePerDay(tc.price, tc.days)
			if !got.Equal(tc.want) {
				t.Errorf("PricePerDay(%s, %d) = %s, want %s", tc.price, tc.days, got, tc.want)
			}
		})
	}
}

func TestPaymentPercentage(t *testing.T) {
	cases := []struct {
		name    string
		advance decimal.Decimal
		total   decimal.Decimal
		want    decimal.Decimal
	}{
		{"fully paid", d("10000"), d("10000"), d("100")},
		{"nothing paid", d("0"), d("10000"), d("0")},
		{"quarter paid", d("2500"), d("10000"), d("25")},
		{"rounds to 2dp", d("1000"), d("3000"), d("33.33")},
		{"zero total guards division", d("500"), d("0"), d("0")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PaymentPercentage(tc.advance, tc.total)
			if !got.Equal(tc.want) {
				t.Errorf("PaymentPercentage(%s, %s) = %s, want %s", tc.advance, tc.total, got, tc.want)
			}
		})
	}
}

func TestBalanceAmount(t *testing.T) {
	got := BalanceAmount(d("10000"), d("2500"))
	if !got.Equal(d("7500")) {
		t.Errorf("BalanceAmount = %s, want 7500", got)
	}

	got = BalanceAmount(d("10000"), d("0"))
	if !got.Equal(d("10000")) {
		t.Errorf("BalanceAmount with no advance = %s, want 10000", got)
	}
}
