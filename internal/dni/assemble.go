package dni

import "time"

// ParseRecord runs every field extractor over the OCR text and assembles the
// result. Extractors are independent: one missing its anchor or rejecting its
// candidate simply leaves that field absent and never aborts the others.
// Whether the record is usable at all is the caller's call, via
// HasDocumentNumber.
func ParseRecord(text RawText, now time.Time) Record {
	var rec Record

	if v, ok := extractDocumentNumber(text); ok {
		rec.DocumentNumber = v
	}
	if v, ok := extractPaternalSurname(text); ok {
		rec.PaternalSurname = v
	}
	if v, ok := extractMaternalSurname(text); ok {
		rec.MaternalSurname = v
	}
	if v, ok := extractGivenNames(text); ok {
		rec.GivenNames = v
	}
	if date, age, ok := extractBirthDate(text, now); ok {
		rec.BirthDate = FormatDMY(date)
		rec.BirthDateISO = date.Format("2006-01-02")
		a := age
		rec.Age = &a
	}
	if code, ok := extractSex(text); ok {
		rec.Sex = code
		rec.SexLabel = sexLabels[code]
	}

	rec.FullName = buildFullName(rec)
	return rec
}

// buildFullName joins given names with the surnames. Surnames alone never
// make a full name.
func buildFullName(rec Record) string {
	switch {
	case rec.GivenNames == "" || rec.PaternalSurname == "":
		return ""
	case rec.MaternalSurname != "":
		return rec.GivenNames + " " + rec.PaternalSurname + " " + rec.MaternalSurname
	default:
		return rec.GivenNames + " " + rec.PaternalSurname
	}
}
