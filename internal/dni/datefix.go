package dni

import (
	"strconv"
	"time"
)

type datePart int

const (
	partDay datePart = iota
	partMonth
	partYear
)

// dateRule is one catalogued digit confusion of the card's OCR font. Rules
// run in declaration order against the component they name, and later rules
// see the output of earlier ones.
type dateRule struct {
	part    datePart
	match   func(string) bool
	rewrite func(string) string
}

// dateRules is the repair catalog for 8-digit ddmmyyyy runs. New observed
// misreads get appended here; the extractors never change.
var dateRules = []dateRule{
	{
		// A day like 35 or 38 is a zero misread as 3 (05 -> 35).
		part: partDay,
		match: func(d string) bool {
			n, err := strconv.Atoi(d)
			return err == nil && d[0] == '3' && n > 31
		},
		rewrite: func(d string) string { return "0" + d[1:] },
	},
	{
		// Month 19 is 10 with the zero read as 9.
		part:    partMonth,
		match:   matchLiteral("19"),
		rewrite: rewriteLiteral("10"),
	},
	{
		// Year glyph confusions seen on real scans: 0<->6 and 0<->9.
		part:    partYear,
		match:   matchLiteral("2062"),
		rewrite: rewriteLiteral("2002"),
	},
	{
		part:    partYear,
		match:   matchLiteral("2919"),
		rewrite: rewriteLiteral("2019"),
	},
}

func matchLiteral(lit string) func(string) bool {
	return func(s string) bool { return s == lit }
}

func rewriteLiteral(lit string) func(string) string {
	return func(string) string { return lit }
}

// CorrectDate repairs known OCR digit confusions in an 8-character ddmmyyyy
// run and validates the result as a real calendar date. It returns the date
// and true on success, or the zero time and false when the input is not
// exactly 8 digits or no real date survives the repairs. Age plausibility is
// the caller's problem, not this function's.
func CorrectDate(raw string) (time.Time, bool) {
	if len(raw) != 8 || !allDigits(raw) {
		return time.Time{}, false
	}
	day, month, year := raw[0:2], raw[2:4], raw[4:8]

	for _, r := range dateRules {
		switch r.part {
		case partDay:
			if r.match(day) {
				day = r.rewrite(day)
			}
		case partMonth:
			if r.match(month) {
				month = r.rewrite(month)
			}
		case partYear:
			if r.match(year) {
				year = r.rewrite(year)
			}
		}
	}

	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)

	// time.Date normalizes out-of-range components (32/01 becomes 01/02), so
	// a round-trip mismatch means the corrected digits are not a real date.
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// FormatDMY renders a date the way the card prints it.
func FormatDMY(t time.Time) string {
	return t.Format("02/01/2006")
}

// AgeAt returns the number of full years elapsed from birth to now.
// Negative results are possible for future dates and are for the caller to
// reject.
func AgeAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
