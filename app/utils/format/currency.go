package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var inr = accounting.Accounting{Symbol: "₹", Precision: 0, Thousand: ","}

// INR renders an amount the way the storefront shows prices.
func INR(amount decimal.Decimal) string {
	return inr.FormatMoneyDecimal(amount)
}
