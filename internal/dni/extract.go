package dni

import (
	"regexp"
	"strings"
	"time"
)

// Plausibility bounds for a birth date. A corrected date whose derived age
// falls outside this window is discarded, not clamped.
const (
	MinAge = 0
	MaxAge = 120
)

var (
	reDocumentNumber = regexp.MustCompile(`(?i)DNI\s*(\d{8})`)
	reMRZNumber      = regexp.MustCompile(`PER(\d{8})`)
	rePaternalAnchor = regexp.MustCompile(`(?i)PRIMER\s*APELLIDO`)
	reMaternalAnchor = regexp.MustCompile(`(?i)SEGUNDO[.\s]*APELLIDO`)
	reNamesAnchor    = regexp.MustCompile(`(?i)PRE\s*NOMBRES?`)
	reDigitRun       = regexp.MustCompile(`\b(\d{8})\b`)
	reMRZSex         = regexp.MustCompile(`\d{6}([MF])\d{7}`)

	// Uppercase Latin letters, Spanish accented vowels and Ñ, plus spaces.
	// A candidate line with anything else in it is noise, and omitting the
	// field beats emitting garbage.
	reNameChars = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑ\s]+$`)
)

// surnameFixes catalogs whole-line surname misreads observed on real cards.
var surnameFixes = map[string]string{
	"MUNEZ": "NUNEZ",
}

// commonGivenNames drives the merged-name repair: when the scanner drops the
// space between words ("MARIAISABEL"), the first entry that strictly prefixes
// the candidate gets a space inserted after it. Order matters only for
// candidates that match more than one entry.
var commonGivenNames = []string{"MARIA", "MONICA", "JUAN", "JOSE", "LUIS", "CARLOS", "ISABEL"}

var sexLabels = map[string]string{
	"M": "MASCULINO",
	"F": "FEMENINO",
}

// extractDocumentNumber scans the whole blob for the printed "DNI" label
// followed by 8 digits. A captured value starting with "00" is a known
// leading-zero misread; the machine-readable zone ("PER" + 8 digits) is
// preferred when present.
func extractDocumentNumber(t RawText) (string, bool) {
	m := reDocumentNumber.FindStringSubmatch(t.Blob)
	if m == nil {
		return "", false
	}
	number := m[1]
	if strings.HasPrefix(number, "00") {
		if mrz := reMRZNumber.FindStringSubmatch(t.Blob); mrz != nil {
			return mrz[1], true
		}
	}
	return number, true
}

func extractPaternalSurname(t RawText) (string, bool) {
	candidate, ok := lineAfterAnchor(t.Lines, rePaternalAnchor)
	if !ok {
		return "", false
	}
	return validateNameLine(candidate)
}

func extractMaternalSurname(t RawText) (string, bool) {
	candidate, ok := lineAfterAnchor(t.Lines, reMaternalAnchor)
	if !ok {
		return "", false
	}
	if fixed, hit := surnameFixes[candidate]; hit {
		candidate = fixed
	}
	return validateNameLine(candidate)
}

func extractGivenNames(t RawText) (string, bool) {
	candidate, ok := lineAfterAnchor(t.Lines, reNamesAnchor)
	if !ok {
		return "", false
	}
	candidate = splitMergedName(candidate)
	return validateNameLine(candidate)
}

// extractBirthDate scans the blob for every maximal 8-digit run in order of
// appearance and accepts the first one that both survives CorrectDate and
// yields a plausible age. Also returns the age computed at acceptance time so
// the assembler never recomputes it.
func extractBirthDate(t RawText, now time.Time) (time.Time, int, bool) {
	for _, m := range reDigitRun.FindAllStringSubmatch(t.Blob, -1) {
		date, ok := CorrectDate(m[1])
		if !ok {
			continue
		}
		age := AgeAt(date, now)
		if age < MinAge || age > MaxAge {
			continue
		}
		return date, age, true
	}
	return time.Time{}, 0, false
}

// extractSex reads the sex code out of the MRZ: six digits, M or F, seven
// digits. The printed label on the card front is too unreliable to anchor on.
func extractSex(t RawText) (string, bool) {
	m := reMRZSex.FindStringSubmatch(t.Blob)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// lineAfterAnchor returns the line immediately following the first line
// matching re. Only the first anchor counts and only the single next line is
// ever read; there is no lookahead and no fallback.
func lineAfterAnchor(lines []string, re *regexp.Regexp) (string, bool) {
	for i, ln := range lines {
		if re.MatchString(ln) {
			if i+1 < len(lines) {
				return lines[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// splitMergedName re-inserts the space the scanner dropped between a common
// first name and whatever follows it. Only the first catalog hit applies.
func splitMergedName(candidate string) string {
	for _, name := range commonGivenNames {
		if strings.HasPrefix(candidate, name) && len(candidate) > len(name) {
			rest := candidate[len(name):]
			if strings.HasPrefix(rest, " ") {
				// already spaced, nothing to repair
				return candidate
			}
			return name + " " + rest
		}
	}
	return candidate
}

func validateNameLine(candidate string) (string, bool) {
	if !reNameChars.MatchString(candidate) {
		return "", false
	}
	return candidate, true
}
