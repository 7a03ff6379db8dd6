package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidFormSet is returned when fewer than three word forms are supplied.
	ErrInvalidFormSet  = errors.New("invalid form set")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Category is the Slavic plural class of a quantity.
type Category int

const (
	One Category = iota
	Few
	Many
)

func (c Category) String() string {
	switch c {
	case One:
		return "one"
	case Few:
		return "few"
	case Many:
		return "many"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// FormSet holds the one, few and many forms of a word, in that order.
type FormSet [3]string

// NewFormSet copies the first three forms. Extra forms are ignored.
func NewFormSet(forms []string) (FormSet, error) {
	if len(forms) < 3 {
		return FormSet{}, fmt.Errorf("%w: got %d forms, need 3", ErrInvalidFormSet, len(forms))
	}
	return FormSet{forms[0], forms[1], forms[2]}, nil
}

func (f FormSet) Select(number int64) string {
	return f[CategoryOf(number)]
}

func (f FormSet) SelectDecimal(number decimal.Decimal) string {
	return f[CategoryOfDecimal(number)]
}

// CategoryOf classifies a quantity: numbers ending in 11..19 are many, then the
// last digit decides (1 is one, 2..4 is few, the rest is many).
// Negative numbers are classified by their magnitude.
func CategoryOf(number int64) Category {
	rem := number % 100
	if rem < 0 {
		rem = -rem
	}

	if rem >= 11 && rem <= 19 {
		return Many
	}

	switch rem % 10 {
	case 1:
		return One
	case 2, 3, 4:
		return Few
	default:
		return Many
	}
}

// SelectForm returns the form agreeing with number. forms must hold at least
// the one, few and many forms.
func SelectForm(number int64, forms []string) (string, error) {
	set, err := NewFormSet(forms)
	if err != nil {
		return "", err
	}
	return set.Select(number), nil
}

// CategoryOfDecimal is CategoryOf for decimals, fractional quantities are always few.
func CategoryOfDecimal(number decimal.Decimal) Category {
	if !number.IsInteger() {
		return Few
	}
	// only the last two digits matter
	return CategoryOf(number.Mod(decimal.NewFromInt(100)).IntPart())
}

// SelectFormDecimal works like SelectForm, fractional quantities always take the few form.
func SelectFormDecimal(number decimal.Decimal, forms []string) (string, error) {
	set, err := NewFormSet(forms)
	if err != nil {
		return "", err
	}
	return set.SelectDecimal(number), nil
}

// ParseQuantity accepts integers and decimal fractions such as "21" or "-2.5".
func ParseQuantity(value string) (decimal.Decimal, error) {
	number, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidQuantity, value)
	}
	return number, nil
}
