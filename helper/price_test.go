package helper

import (
	"testing"

	"tourhub/model"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestComputeTotal_SalePriceWithChild(t *testing.T) {
	tour := model.Tour{BasePrice: dec("100"), SalePrice: decPtr("80")}

	got := ComputeTotal(tour, 2, 1)
	if !got.Equal(dec("200.00")) {
		t.Fatalf("total = %s, want 200.00", got)
	}
}

func TestComputeTotal_UsesBasePrice(t *testing.T) {
	cases := []struct {
		name string
		sale *decimal.Decimal
	}{
		{"no sale price", nil},
		{"zero sale price", decPtr("0")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tour := model.Tour{BasePrice: dec("150"), SalePrice: tc.sale}
			got := ComputeTotal(tour, 3, 2)
			if !got.Equal(dec("600")) {
				t.Fatalf("total = %s, want 600", got)
			}
		})
	}
}

func TestComputeTotal_RoundsHalfUp(t *testing.T) {
	tour := model.Tour{BasePrice: dec("99.99")}

	got := ComputeTotal(tour, 0, 1)
	if got.StringFixed(2) != "50.00" {
		t.Fatalf("total = %s, want 50.00", got.StringFixed(2))
	}
}

func TestComputeTotal_MonotonicInPartySize(t *testing.T) {
	tours := []model.Tour{
		{BasePrice: dec("100")},
		{BasePrice: dec("249.50"), SalePrice: decPtr("199.95")},
		{BasePrice: dec("0.01")},
	}
	for _, tour := range tours {
		for a := 1; a < 8; a++ {
			for c := 0; c < 8; c++ {
				cur := ComputeTotal(tour, a, c)
				if next := ComputeTotal(tour, a+1, c); next.LessThan(cur) {
					t.Fatalf("adults %d -> %d decreased total: %s -> %s", a, a+1, cur, next)
				}
				if next := ComputeTotal(tour, a, c+1); next.LessThan(cur) {
					t.Fatalf("children %d -> %d decreased total: %s -> %s", c, c+1, cur, next)
				}
			}
		}
	}
}

func TestComputeTotal_MatchesFormula(t *testing.T) {
	sale := dec("80")
	tour := model.Tour{BasePrice: dec("100"), SalePrice: &sale}
	half := dec("0.5")
	tolerance := dec("0.01")

	for a := 1; a <= 5; a++ {
		for c := 0; c <= 5; c++ {
			want := sale.Mul(decimal.NewFromInt(int64(a))).Add(sale.Mul(half).Mul(decimal.NewFromInt(int64(c))))
			got := ComputeTotal(tour, a, c)
			if got.Sub(want).Abs().GreaterThan(tolerance) {
				t.Fatalf("ComputeTotal(%d, %d) = %s, want %s", a, c, got, want)
			}
		}
	}
}

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		base string
		sale *decimal.Decimal
		want int
	}{
		{"150", decPtr("120"), 20},
		{"100", decPtr("66.66"), 33},
		{"100", nil, 0},
		{"100", decPtr("0"), 0},
		{"100", decPtr("100"), 0},
		{"0", decPtr("10"), 0},
	}
	for _, tc := range cases {
		if got := DiscountPercent(dec(tc.base), tc.sale); got != tc.want {
			t.Errorf("DiscountPercent(%s, %v) = %d, want %d", tc.base, tc.sale, got, tc.want)
		}
	}
}
