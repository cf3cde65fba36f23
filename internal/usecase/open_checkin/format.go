package open_checkin

import (
	"strings"
	"unicode"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// Digits keeps digits only, dropping the 55 country code of long numbers and a trunk 0
func Digits(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if strings.HasPrefix(digits, "55") && len(digits) > 11 {
		digits = digits[2:]
	}
	if strings.HasPrefix(digits, "0") && len(digits) > 2 {
		digits = digits[1:]
	}
	return digits
}

// SplitPhone returns the area code and the formatted number
func SplitPhone(raw string) (ddd, number string) {
	digits := Digits(raw)
	if len(digits) <= 2 {
		return "", digits
	}
	return digits[:2], FormatPhone(digits[2:])
}

// FormatPhone renders 9 digits as XXXXX-XXXX and 8 as XXXX-XXXX
func FormatPhone(number string) string {
	digits := Digits(number)
	if len(digits) > 4 {
		return digits[:len(digits)-4] + "-" + digits[len(digits)-4:]
	}
	return digits
}

// FormatCEP renders 8 digits as XXXXX-XXX and returns anything else as is
func FormatCEP(raw string) string {
	digits := Digits(raw)
	if len(digits) == 8 {
		return digits[:5] + "-" + digits[5:]
	}
	return raw
}

// FormatAddress renders "logradouro, bairro - cidade/UF"
func FormatAddress(a *domain.CustomerAddress) string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(a.Street); s != "" {
		parts = append(parts, s)
	}

	locality := make([]string, 0, 2)
	if s := strings.TrimSpace(a.Neighborhood); s != "" {
		locality = append(locality, s)
	}
	cityUF := make([]string, 0, 2)
	for _, s := range []string{a.City, a.State} {
		if s = strings.TrimSpace(s); s != "" {
			cityUF = append(cityUF, s)
		}
	}
	if len(cityUF) > 0 {
		locality = append(locality, strings.Join(cityUF, "/"))
	}
	if len(locality) > 0 {
		parts = append(parts, strings.Join(locality, " - "))
	}
	return strings.Join(parts, ", ")
}

func capitalizeFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
