package helper

import (
	"tourhub/constants"
	"tourhub/model"

	"github.com/shopspring/decimal"
)

var childRatio = decimal.RequireFromString(constants.CHILD_PRICE_RATIO)

// UnitPrice is the per-adult price of a tour: the sale price when one is set
// and positive, otherwise the base price.
func UnitPrice(tour model.Tour) decimal.Decimal {
	if tour.SalePrice != nil && tour.SalePrice.IsPositive() {
		return *tour.SalePrice
	}
	return tour.BasePrice
}

// ComputeTotal prices a party: adults pay the unit price, children half of it.
// The result is rounded half-up to cents.
func ComputeTotal(tour model.Tour, adults, children int) decimal.Decimal {
	unit := UnitPrice(tour)
	adultTotal := unit.Mul(decimal.NewFromInt(int64(adults)))
	childTotal := unit.Mul(childRatio).Mul(decimal.NewFromInt(int64(children)))
	return adultTotal.Add(childTotal).Round(2)
}

// DiscountPercent is the whole-number discount a sale price gives off base.
func DiscountPercent(base decimal.Decimal, sale *decimal.Decimal) int {
	if sale == nil || !sale.IsPositive() || !base.IsPositive() || sale.GreaterThanOrEqual(base) {
		return 0
	}
	pct := base.Sub(*sale).Div(base).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}
