package format

import (
	"github.com/shopspring/decimal"
)

var rubles = []string{"рубль", "рубля", "рублей"}

// Rublify renders an amount with the agreeing ruble form: "5 рублей", "2,50 рубля".
func Rublify(amount decimal.Decimal) string {
	if !amount.IsInteger() {
		amount = amount.Round(2)
	}
	phrase, _ := Countify(amount, rubles)
	return phrase
}
