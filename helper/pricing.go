package helper

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// DiscountPercentage tính phần trăm giảm giá, làm tròn về số nguyên gần nhất.
// Trả 0 khi không có giá gốc hoặc giá gốc <= giá bán.
func DiscountPercentage(price decimal.Decimal, originalPrice decimal.NullDecimal) int {
	if !originalPrice.Valid {
		return 0
	}
	original := originalPrice.Decimal
	if original.LessThanOrEqual(price) || original.IsZero() {
		return 0
	}
	discount := original.Sub(price).Div(original).Mul(oneHundred)
	return int(discount.Round(0).IntPart())
}

// PricePerDay trả nguyên giá khi durationDays = 0 (tránh chia 0),
// ngược lại chia theo ngày và làm tròn 2 chữ số.
func PricePerDay(price decimal.Decimal, durationDays int) decimal.Decimal {
	if durationDays <= 0 {
		return price
	}
	return price.Div(decimal.NewFromInt(int64(durationDays))).Round(2)
}

// PaymentPercentage phần trăm đã thanh toán, 2 chữ số thập phân
func PaymentPercentage(advancePaid, totalPrice decimal.Decimal) decimal.Decimal {
	if totalPrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return advancePaid.Div(totalPrice).Mul(oneHundred).Round(2)
}

func BalanceAmount(totalPrice, advancePaid decimal.Decimal) decimal.Decimal {
	return totalPrice.Sub(advancePaid)
}
