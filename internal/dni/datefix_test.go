package dni

import (
	"testing"
	"time"
)

func TestCorrectDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string // dd/mm/yyyy, "" when no valid date survives
	}{
		{
			name: "clean date passes through",
			raw:  "15032001",
			want: "15/03/2001",
		},
		{
			name: "day overflow leading 3 is a misread zero",
			raw:  "35112002",
			want: "05/11/2002",
		},
		{
			name: "month 19 is a misread 10",
			raw:  "15192005",
			want: "15/10/2005",
		},
		{
			name: "year 2062 is a misread 2002",
			raw:  "01012062",
			want: "01/01/2002",
		},
		{
			name: "year 2919 is a misread 2019",
			raw:  "01012919",
			want: "01/01/2019",
		},
		{
			name: "stacked repairs on day month and year",
			raw:  "35192062",
			want: "05/10/2002",
		},
		{
			name: "not a date even after repairs",
			raw:  "99999999",
			want: "",
		},
		{
			name: "day 31 in a 30-day month",
			raw:  "31042000",
			want: "",
		},
		{
			name: "february 29 outside leap year",
			raw:  "29022001",
			want: "",
		},
		{
			name: "february 29 in leap year",
			raw:  "29022016",
			want: "29/02/2016",
		},
		{
			name: "too short",
			raw:  "1512005",
			want: "",
		},
		{
			name: "too long",
			raw:  "151020055",
			want: "",
		},
		{
			name: "non digits",
			raw:  "15O32001",
			want: "",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := CorrectDate(tt.raw)
			if tt.want == "" {
				if ok {
					t.Fatalf("CorrectDate(%q) = %v, want rejection", tt.raw, date)
				}
				return
			}
			if !ok {
				t.Fatalf("CorrectDate(%q) rejected, want %q", tt.raw, tt.want)
			}
			if got := FormatDMY(date); got != tt.want {
				t.Errorf("CorrectDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{
			name:  "birthday already passed this year",
			birth: time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC),
			want:  26,
		},
		{
			name:  "birthday later this year",
			birth: time.Date(2000, time.December, 1, 0, 0, 0, 0, time.UTC),
			want:  25,
		},
		{
			name:  "birthday today",
			birth: time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC),
			want:  26,
		},
		{
			name:  "born this year",
			birth: time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "future date goes negative",
			birth: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeAt(tt.birth, now); got != tt.want {
				t.Errorf("AgeAt(%v) = %d, want %d", tt.birth, got, tt.want)
			}
		})
	}
}
