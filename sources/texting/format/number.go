package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ru = message.NewPrinter(language.Russian)

func Numberify(value int64) string {
	return ru.Sprintf("%d", value)
}

// Decimalify keeps as many fraction digits as the value carries: "2,5", "2,50", "21".
func Decimalify(value decimal.Decimal) string {
	if value.IsInteger() {
		if n := value.BigInt(); n.IsInt64() {
			return Numberify(n.Int64())
		}
		return value.String()
	}
	return ru.Sprintf("%.*f", int(-value.Exponent()), value.InexactFloat64())
}

// Countify renders "<number> <form>", e.g. "5 дней" or "2,5 дня".
func Countify(number decimal.Decimal, forms []string) (string, error) {
	form, err := SelectFormDecimal(number, forms)
	if err != nil {
		return "", err
	}
	return Decimalify(number) + " " + form, nil
}
