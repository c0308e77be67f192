package dni

import (
	"encoding/json"
	"strings"
	"testing"
)

const sampleCard = `REPUBLICA DEL PERU
REGISTRO NACIONAL DE IDENTIFICACION Y ESTADO CIVIL
DOCUMENTO NACIONAL DE IDENTIDAD
DNI 45678123
PRIMER APELLIDO
GARCIA
SEGUNDO APELLIDO
MUNEZ
PRE NOMBRES
MARIAISABEL
FECHA DE NACIMIENTO
05111995
I<PERPER45678123<4<<<<<<<<<<<<
9511057F2612315PER<<<<<<<<<<<4`

func TestParseRecordFullCard(t *testing.T) {
	rec := ParseRecord(rawFrom(sampleCard), testNow)

	if rec.DocumentNumber != "45678123" {
		t.Errorf("DocumentNumber = %q, want 45678123", rec.DocumentNumber)
	}
	if rec.PaternalSurname != "GARCIA" {
		t.Errorf("PaternalSurname = %q, want GARCIA", rec.PaternalSurname)
	}
	if rec.MaternalSurname != "NUNEZ" {
		t.Errorf("MaternalSurname = %q, want NUNEZ", rec.MaternalSurname)
	}
	if rec.GivenNames != "MARIA ISABEL" {
		t.Errorf("GivenNames = %q, want MARIA ISABEL", rec.GivenNames)
	}
	if rec.BirthDate != "05/11/1995" {
		t.Errorf("BirthDate = %q, want 05/11/1995", rec.BirthDate)
	}
	if rec.BirthDateISO != "1995-11-05" {
		t.Errorf("BirthDateISO = %q, want 1995-11-05", rec.BirthDateISO)
	}
	if rec.Age == nil || *rec.Age != 30 {
		t.Errorf("Age = %v, want 30", rec.Age)
	}
	if rec.Sex != "F" || rec.SexLabel != "FEMENINO" {
		t.Errorf("Sex = (%q, %q), want (F, FEMENINO)", rec.Sex, rec.SexLabel)
	}
	if rec.FullName != "MARIA ISABEL GARCIA NUNEZ" {
		t.Errorf("FullName = %q, want MARIA ISABEL GARCIA NUNEZ", rec.FullName)
	}
	if !rec.HasDocumentNumber() {
		t.Error("HasDocumentNumber() = false, want true")
	}
}

func TestParseRecordFullName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "names plus both surnames",
			text: "PRIMER APELLIDO\nGARCIA\nSEGUNDO APELLIDO\nTORRES\nPRE NOMBRES\nLUIS",
			want: "LUIS GARCIA TORRES",
		},
		{
			name: "names plus paternal only",
			text: "PRIMER APELLIDO\nGARCIA\nPRE NOMBRES\nLUIS",
			want: "LUIS GARCIA",
		},
		{
			name: "surnames alone make no full name",
			text: "PRIMER APELLIDO\nGARCIA\nSEGUNDO APELLIDO\nTORRES",
			want: "",
		},
		{
			name: "names alone make no full name",
			text: "PRE NOMBRES\nLUIS",
			want: "",
		},
		{
			name: "names plus maternal only make no full name",
			text: "SEGUNDO APELLIDO\nTORRES\nPRE NOMBRES\nLUIS",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseRecord(rawFrom(tt.text), testNow)
			if rec.FullName != tt.want {
				t.Errorf("FullName = %q, want %q", rec.FullName, tt.want)
			}
		})
	}
}

func TestParseRecordAbsentFieldsOmittedFromJSON(t *testing.T) {
	rec := ParseRecord(rawFrom("DNI 45678123"), testNow)
	if !rec.HasDocumentNumber() {
		t.Fatal("document number should be present")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)
	if want := `{"document_number":"45678123"}`; got != want {
		t.Errorf("json = %s, want %s", got, want)
	}
	for _, key := range []string{"paternal_surname", "birth_date", "age", "sex", "full_name"} {
		if strings.Contains(got, key) {
			t.Errorf("json contains absent field %q: %s", key, got)
		}
	}
}

func TestParseRecordMissingDocumentNumber(t *testing.T) {
	rec := ParseRecord(rawFrom("PRIMER APELLIDO\nGARCIA\nPRE NOMBRES\nLUIS"), testNow)
	if rec.HasDocumentNumber() {
		t.Fatal("no document number expected")
	}
	// other fields still extract independently
	if rec.PaternalSurname != "GARCIA" || rec.GivenNames != "LUIS" {
		t.Errorf("independent fields lost: %+v", rec)
	}
}

func TestRecordSchemaRoundTrip(t *testing.T) {
	schema := BuildRecordSchema()

	rec := ParseRecord(rawFrom(sampleCard), testNow)
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := ValidateRecordJSON(schema, data); err != nil {
		t.Fatalf("assembled record rejected by schema: %v", err)
	}

	// a record without a document number must not validate
	if err := ValidateRecordJSON(schema, []byte(`{"given_names":"LUIS"}`)); err == nil {
		t.Error("schema accepted record without document_number")
	}
	// malformed document number must not validate
	if err := ValidateRecordJSON(schema, []byte(`{"document_number":"1234"}`)); err == nil {
		t.Error("schema accepted 4-digit document number")
	}
}
