// Package dni parses the noisy OCR text of a Peruvian national ID card front
// into a typed record. It owns the field recognizers, the catalog of observed
// OCR misreads, and the cross-field plausibility checks; it never touches
// image data or the OCR engine itself.
package dni

import "strings"

// Record holds the fields recognized on the front of a card. A string field
// is empty when its extractor could not produce a validated value; Age uses a
// pointer because zero is a legitimate age. JSON rendering omits absent
// fields entirely rather than emitting null or empty placeholders.
type Record struct {
	DocumentNumber  string `json:"document_number,omitempty"`
	PaternalSurname string `json:"paternal_surname,omitempty"`
	MaternalSurname string `json:"maternal_surname,omitempty"`
	GivenNames      string `json:"given_names,omitempty"`
	BirthDate       string `json:"birth_date,omitempty"`     // dd/mm/yyyy as printed on the card
	BirthDateISO    string `json:"birth_date_iso,omitempty"` // yyyy-mm-dd
	Age             *int   `json:"age,omitempty"`
	Sex             string `json:"sex,omitempty"` // "M" | "F"
	SexLabel        string `json:"sex_label,omitempty"`
	FullName        string `json:"full_name,omitempty"`
}

// HasDocumentNumber reports whether the record carries the one field that
// makes it usable. Everything else is optional.
func (r Record) HasDocumentNumber() bool {
	return r.DocumentNumber != ""
}

// RawText is the OCR output for one card. Blob is the newline-joined text
// used for whole-text regex scans (document number, sex, date candidates);
// Lines keeps the reading order needed by line-adjacency rules (a value sits
// on the line immediately after its printed label).
type RawText struct {
	Blob  string
	Lines []string
}

// NewRawText builds a RawText from recognized lines, trimming whitespace and
// dropping empties while preserving order.
func NewRawText(lines []string) RawText {
	clean := make([]string, 0, len(lines))
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		clean = append(clean, ln)
	}
	return RawText{
		Blob:  strings.Join(clean, "\n"),
		Lines: clean,
	}
}

// IsEmpty reports whether no text was recognized at all.
func (t RawText) IsEmpty() bool {
	return len(t.Lines) == 0
}
