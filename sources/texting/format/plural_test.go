package format

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

var dayForms = []string{"day", "days(few)", "days(many)"}

func TestSelectForm(t *testing.T) {
	tests := []struct {
		name     string
		number   int64
		expected string
	}{
		{name: "One", number: 1, expected: "day"},
		{name: "Twenty one", number: 21, expected: "day"},
		{name: "Hundred and one", number: 101, expected: "day"},
		{name: "Two", number: 2, expected: "days(few)"},
		{name: "Four", number: 4, expected: "days(few)"},
		{name: "Thirty three", number: 33, expected: "days(few)"},
		{name: "Zero", number: 0, expected: "days(many)"},
		{name: "Five", number: 5, expected: "days(many)"},
		{name: "Hundred", number: 100, expected: "days(many)"},
		{name: "Eleven", number: 11, expected: "days(many)"},
		{name: "Twelve", number: 12, expected: "days(many)"},
		{name: "Fourteen", number: 14, expected: "days(many)"},
		{name: "Nineteen", number: 19, expected: "days(many)"},
		{name: "Hundred and eleven", number: 111, expected: "days(many)"},
		{name: "Hundred and twelve", number: 1012, expected: "days(many)"},
		{name: "Twenty", number: 20, expected: "days(many)"},
		{name: "Minus one", number: -1, expected: "day"},
		{name: "Minus twenty two", number: -22, expected: "days(few)"},
		{name: "Minus eleven", number: -11, expected: "days(many)"},
		{name: "Minus hundred and thirteen", number: -113, expected: "days(many)"},
		{name: "Minus twenty five", number: -25, expected: "days(many)"},
		{name: "Max int64", number: math.MaxInt64, expected: "days(many)"},
		{name: "Min int64", number: math.MinInt64, expected: "days(many)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SelectForm(tt.number, dayForms)
			if err != nil {
				t.Fatalf("SelectForm() unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("SelectForm(%d) = %q, expected %q", tt.number, result, tt.expected)
			}
		})
	}
}

func TestSelectFormIsStable(t *testing.T) {
	for n := int64(-250); n <= 250; n++ {
		first, err := SelectForm(n, dayForms)
		if err != nil {
			t.Fatalf("SelectForm(%d) unexpected error: %v", n, err)
		}
		second, _ := SelectForm(n, dayForms)
		if first != second {
			t.Errorf("SelectForm(%d) returned %q then %q", n, first, second)
		}
	}
}

func TestSelectFormTeens(t *testing.T) {
	for _, base := range []int64{0, 100, 1000, 12300} {
		for n := base + 11; n <= base+19; n++ {
			result, err := SelectForm(n, dayForms)
			if err != nil {
				t.Fatalf("SelectForm(%d) unexpected error: %v", n, err)
			}
			if result != dayForms[2] {
				t.Errorf("SelectForm(%d) = %q, expected %q", n, result, dayForms[2])
			}
		}
	}
}

func TestSelectFormInvalidFormSet(t *testing.T) {
	tests := []struct {
		name  string
		forms []string
	}{
		{name: "Nil", forms: nil},
		{name: "Empty", forms: []string{}},
		{name: "Single form", forms: []string{"day"}},
		{name: "Two forms", forms: []string{"day", "days"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SelectForm(1, tt.forms)
			if !errors.Is(err, ErrInvalidFormSet) {
				t.Fatalf("SelectForm() error = %v, expected ErrInvalidFormSet", err)
			}
			if result != "" {
				t.Errorf("SelectForm() = %q, expected empty string on error", result)
			}
		})
	}
}

func TestSelectFormIgnoresExtraForms(t *testing.T) {
	result, err := SelectForm(7, []string{"день", "дня", "дней", "дни"})
	if err != nil {
		t.Fatalf("SelectForm() unexpected error: %v", err)
	}
	if result != "дней" {
		t.Errorf("SelectForm(7) = %q, expected %q", result, "дней")
	}
}

func TestCategoryOfMatchesCLDR(t *testing.T) {
	expected := map[plural.Form]Category{
		plural.One:  One,
		plural.Few:  Few,
		plural.Many: Many,
	}

	for n := 0; n <= 2000; n++ {
		form := plural.Cardinal.MatchPlural(language.Russian, n, 0, 0, 0, 0)
		if got := CategoryOf(int64(n)); got != expected[form] {
			t.Errorf("CategoryOf(%d) = %s, CLDR says %v", n, got, form)
		}
	}
}

func TestSelectFormDecimal(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected string
	}{
		{name: "Integral one", number: "21", expected: "день"},
		{name: "Integral with zero fraction", number: "3.00", expected: "дня"},
		{name: "Integral teen", number: "112", expected: "дней"},
		{name: "Half", number: "2.5", expected: "дня"},
		{name: "One and a half", number: "1.5", expected: "дня"},
		{name: "Fraction of eleven", number: "11.25", expected: "дня"},
		{name: "Negative integral", number: "-121", expected: "день"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SelectFormDecimal(decimal.RequireFromString(tt.number), []string{"день", "дня", "дней"})
			if err != nil {
				t.Fatalf("SelectFormDecimal() unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("SelectFormDecimal(%s) = %q, expected %q", tt.number, result, tt.expected)
			}
		})
	}

	if _, err := SelectFormDecimal(decimal.NewFromInt(1), []string{"день"}); !errors.Is(err, ErrInvalidFormSet) {
		t.Errorf("SelectFormDecimal() error = %v, expected ErrInvalidFormSet", err)
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{name: "Integer", input: "21", expected: One},
		{name: "Padded integer", input: " 104 ", expected: Few},
		{name: "Negative fraction", input: "-2.5", expected: Few},
		{name: "Zero fraction", input: "11.0", expected: Many},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, err := ParseQuantity(tt.input)
			if err != nil {
				t.Fatalf("ParseQuantity(%q) unexpected error: %v", tt.input, err)
			}
			if result := CategoryOfDecimal(number); result != tt.expected {
				t.Errorf("CategoryOfDecimal(%q) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}

	for _, input := range []string{"", "five", "2,5", "1/2"} {
		if _, err := ParseQuantity(input); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("ParseQuantity(%q) error = %v, expected ErrInvalidQuantity", input, err)
		}
	}
}

func TestCategoryString(t *testing.T) {
	for category, expected := range map[Category]string{One: "one", Few: "few", Many: "many", Category(7): "category(7)"} {
		if result := category.String(); result != expected {
			t.Errorf("Category.String() = %q, expected %q", result, expected)
		}
	}
}
