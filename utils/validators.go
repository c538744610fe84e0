package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Old format AAA9999 or Mercosul format AAA9A99.
	plateRegex = regexp.MustCompile(`^([A-Z]{3}[0-9]{4}|[A-Z]{3}[0-9][A-Z][0-9]{2})$`)
	// One letter followed by two digits, e.g. "A01".
	spotCodeRegex = regexp.MustCompile(`^[A-Z][0-9]{2}$`)

	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize trims, uppercases and strips diacritics, so "pátio" and
// "PATIO" compare equal. All uniqueness checks go through this.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, strings.TrimSpace(s))
	if err != nil {
		out = strings.TrimSpace(s)
	}
	return strings.ToUpper(out)
}

func IsValidPlate(plate string) bool {
	return plateRegex.MatchString(strings.ToUpper(strings.TrimSpace(plate)))
}

func IsValidModel(model string) bool {
	switch strings.ToUpper(strings.TrimSpace(model)) {
	case "POP", "SPORT", "E":
		return true
	}
	return false
}

func IsValidSpotCode(code string) bool {
	return spotCodeRegex.MatchString(strings.ToUpper(strings.TrimSpace(code)))
}

func IsValidYardName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
