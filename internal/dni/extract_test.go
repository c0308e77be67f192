package dni

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

func rawFrom(text string) RawText {
	return NewRawText(strings.Split(text, "\n"))
}

func TestExtractDocumentNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "plain match after label",
			text: "DOCUMENTO NACIONAL DE IDENTIDAD\nDNI 45678123",
			want: "45678123",
			ok:   true,
		},
		{
			name: "lowercase label",
			text: "dni 45678123",
			want: "45678123",
			ok:   true,
		},
		{
			name: "leading zeros prefer MRZ",
			text: "DNI 00345678\nI<PERPER87654321<4<<<<<<<<<<<<",
			want: "87654321",
			ok:   true,
		},
		{
			name: "leading zeros with no MRZ keep captured value",
			text: "DNI 00345678",
			want: "00345678",
			ok:   true,
		},
		{
			name: "no label",
			text: "REPUBLICA DEL PERU\n45678123",
			ok:   false,
		},
		{
			name: "label with too few digits",
			text: "DNI 4567812",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractDocumentNumber(rawFrom(tt.text))
			if ok != tt.ok || got != tt.want {
				t.Errorf("extractDocumentNumber() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExtractSurnames(t *testing.T) {
	text := rawFrom(`DOCUMENTO NACIONAL DE IDENTIDAD
PRIMER APELLIDO
GARCIA
SEGUNDO APELLIDO
MUNEZ`)

	paternal, ok := extractPaternalSurname(text)
	if !ok || paternal != "GARCIA" {
		t.Errorf("paternal = (%q, %v), want (GARCIA, true)", paternal, ok)
	}

	// the catalogued MUNEZ misread resolves to NUNEZ
	maternal, ok := extractMaternalSurname(text)
	if !ok || maternal != "NUNEZ" {
		t.Errorf("maternal = (%q, %v), want (NUNEZ, true)", maternal, ok)
	}
}

func TestExtractSurnameEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "anchor with period before APELLIDO",
			text: "SEGUNDO. APELLIDO\nQUISPE",
			want: "QUISPE",
			ok:   true,
		},
		{
			name: "accented candidate accepted",
			text: "SEGUNDO APELLIDO\nÑAUPARI",
			want: "ÑAUPARI",
			ok:   true,
		},
		{
			name: "candidate with digits rejected",
			text: "SEGUNDO APELLIDO\nT0RRES",
			ok:   false,
		},
		{
			name: "candidate with lowercase rejected",
			text: "SEGUNDO APELLIDO\nTorres",
			ok:   false,
		},
		{
			name: "anchor on last line has no candidate",
			text: "SEGUNDO APELLIDO",
			ok:   false,
		},
		{
			name: "only first anchor is consulted",
			text: "SEGUNDO APELLIDO\n123\nSEGUNDO APELLIDO\nTORRES",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractMaternalSurname(rawFrom(tt.text))
			if ok != tt.ok || got != tt.want {
				t.Errorf("extractMaternalSurname() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExtractGivenNames(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "merged name gets split",
			text: "PRE NOMBRES\nMARIAISABEL",
			want: "MARIA ISABEL",
			ok:   true,
		},
		{
			name: "already spaced name untouched",
			text: "PRE NOMBRES\nMARIA ISABEL",
			want: "MARIA ISABEL",
			ok:   true,
		},
		{
			name: "only first catalog hit applies",
			text: "PRE NOMBRES\nJUANCARLOS",
			want: "JUAN CARLOS",
			ok:   true,
		},
		{
			name: "name outside catalog untouched",
			text: "PRENOMBRES\nROSARIO",
			want: "ROSARIO",
			ok:   true,
		},
		{
			name: "singular anchor form",
			text: "PRE NOMBRE\nLUIS",
			want: "LUIS",
			ok:   true,
		},
		{
			name: "exact catalog name is not padded",
			text: "PRE NOMBRES\nCARLOS",
			want: "CARLOS",
			ok:   true,
		},
		{
			name: "no anchor",
			text: "NOMBRES\nMARIA",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractGivenNames(rawFrom(tt.text))
			if ok != tt.ok || got != tt.want {
				t.Errorf("extractGivenNames() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExtractBirthDate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDMY  string
		wantAge  int
		accepted bool
	}{
		{
			name:     "first plausible run wins",
			text:     "FECHA DE NACIMIENTO\n05111995",
			wantDMY:  "05/11/1995",
			wantAge:  30,
			accepted: true,
		},
		{
			name:     "implausible run skipped in favor of next",
			text:     "45678123\n05111995",
			wantDMY:  "05/11/1995",
			wantAge:  30,
			accepted: true,
		},
		{
			name:     "corrected run accepted",
			text:     "35112002",
			wantDMY:  "05/11/2002",
			wantAge:  23,
			accepted: true,
		},
		{
			name:     "age above bound rejects candidate",
			text:     "01011880",
			accepted: false,
		},
		{
			name:     "future date rejects candidate",
			text:     "01012030",
			accepted: false,
		},
		{
			name:     "no digit runs at all",
			text:     "PRIMER APELLIDO\nGARCIA",
			accepted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, age, ok := extractBirthDate(rawFrom(tt.text), testNow)
			if ok != tt.accepted {
				t.Fatalf("extractBirthDate() accepted = %v, want %v", ok, tt.accepted)
			}
			if !tt.accepted {
				return
			}
			if got := FormatDMY(date); got != tt.wantDMY {
				t.Errorf("date = %q, want %q", got, tt.wantDMY)
			}
			if age != tt.wantAge {
				t.Errorf("age = %d, want %d", age, tt.wantAge)
			}
		})
	}
}

func TestExtractSex(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "female code in MRZ",
			text: "9511057F2612315PER<<<<<<<<<<<4",
			want: "F",
			ok:   true,
		},
		{
			name: "male code in MRZ",
			text: "8204019M3101233PER<<<<<<<<<<<2",
			want: "M",
			ok:   true,
		},
		{
			name: "letter outside MRZ shape ignored",
			text: "SEXO\nM",
			ok:   false,
		},
		{
			name: "too few trailing digits",
			text: "951105F261231",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractSex(rawFrom(tt.text))
			if ok != tt.ok || got != tt.want {
				t.Errorf("extractSex() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
