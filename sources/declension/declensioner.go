package declension

import (
	"declension/sources/dictionary"
	"declension/sources/metrics"
	"declension/sources/texting/format"
	"declension/sources/tracing"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Result is a selected form together with its rendered phrase.
type Result struct {
	Number   decimal.Decimal
	Form     string
	Category format.Category
	Phrase   string
}

type Declensioner struct {
	dictionary *dictionary.Dictionary
	metrics    *metrics.MetricsService
	log        *tracing.Logger
}

func NewDeclensioner(dictionary *dictionary.Dictionary, metrics *metrics.MetricsService, log *tracing.Logger) *Declensioner {
	return &Declensioner{dictionary: dictionary, metrics: metrics, log: log}
}

// Select picks the form agreeing with number out of forms.
func (x *Declensioner) Select(number decimal.Decimal, forms []string) (Result, error) {
	log := x.log.With(tracing.Number, number.String(), tracing.Forms, forms)

	form, err := tracing.ReportExecutionForRE(log, func() (string, error) {
		return format.SelectFormDecimal(number, forms)
	}, func(l *tracing.Logger) {
		l.D("Form selection finished")
	})
	if err != nil {
		if errors.Is(err, format.ErrInvalidFormSet) {
			x.metrics.RecordInvalidFormSet()
		}
		log.W("Form selection rejected", tracing.InnerError, err)
		return Result{}, err
	}

	return x.result(log, number, form), nil
}

// SelectWord declines a dictionary lemma.
func (x *Declensioner) SelectWord(number decimal.Decimal, lemma string) (Result, error) {
	log := x.log.With(tracing.Number, number.String(), tracing.Lemma, lemma)

	forms, err := x.dictionary.Lookup(lemma)
	if err != nil {
		x.metrics.RecordUnknownWord()
		log.W("Dictionary lookup failed", tracing.InnerError, err)
		return Result{}, err
	}

	return x.result(log, number, forms.SelectDecimal(number)), nil
}

// Rubles renders a money amount, fractional amounts are kept to kopecks.
func (x *Declensioner) Rubles(amount decimal.Decimal) string {
	phrase := format.Rublify(amount)
	x.metrics.RecordSelection(format.CategoryOfDecimal(amount).String())
	x.log.D("Amount rendered", tracing.Number, amount.String(), tracing.Form, phrase)
	return phrase
}

// Age renders how long ago createdAt was, relative to now.
func (x *Declensioner) Age(createdAt, now time.Time, lang language.Tag) string {
	phrase := format.Ageify(createdAt, now, lang)
	x.log.D("Age rendered", tracing.CreatedAt, createdAt, tracing.Form, phrase)
	return phrase
}

func (x *Declensioner) Lemmas() []string {
	return x.dictionary.Lemmas()
}

func (x *Declensioner) result(log *tracing.Logger, number decimal.Decimal, form string) Result {
	category := format.CategoryOfDecimal(number)
	x.metrics.RecordSelection(category.String())

	log.D("Form selected", tracing.Form, form, tracing.Category, category.String())
	return Result{
		Number:   number,
		Form:     form,
		Category: category,
		Phrase:   format.Decimalify(number) + " " + form,
	}
}
