package format

import (
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
)

var (
	days   = FormSet{"день", "дня", "дней"}
	weeks  = FormSet{"неделю", "недели", "недель"}
	months = FormSet{"месяц", "месяца", "месяцев"}
	years  = FormSet{"год", "года", "лет"}
)

// Ageify describes how long ago createdAt was relative to now. Russian gets
// declined units, other languages fall back to humanize.
func Ageify(createdAt, now time.Time, lang language.Tag) string {
	if base, _ := lang.Base(); base.String() != "ru" {
		return humanize.RelTime(createdAt, now, "ago", "from now")
	}

	age := now.Sub(createdAt)
	if age < 0 {
		age = 0
	}

	d := int64(age.Hours() / 24)

	if d == 0 {
		return "сегодня"
	}

	if d < 7 {
		return ago(d, days)
	}

	if w := d / 7; w < 5 {
		return ago(w, weeks)
	}

	if m := d / 30; m < 12 {
		return ago(m, months)
	}

	return ago(max(d/365, 1), years)
}

func ago(n int64, forms FormSet) string {
	return Numberify(n) + " " + forms.Select(n) + " назад"
}
