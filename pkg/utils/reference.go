package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var referencePattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)

// FormatError indica uma referência fora do formato YYYY-MM
type FormatError struct {
	Reference string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("referência inválida %q: formato esperado YYYY-MM", e.Reference)
}

// NormalizeReference remove espaços e valida a referência no formato YYYY-MM.
// Retorna a forma canônica e false quando a referência é inválida.
func NormalizeReference(ref string) (string, bool) {
	canonical := strings.TrimSpace(ref)
	if !referencePattern.MatchString(canonical) {
		return "", false
	}
	return canonical, true
}

func IsValidReference(ref string) bool {
	_, ok := NormalizeReference(ref)
	return ok
}

// ExtractYear retorna o ano de uma referência já validada
func ExtractYear(ref string) (int, error) {
	canonical, ok := NormalizeReference(ref)
	if !ok {
		return 0, &FormatError{Reference: ref}
	}

	year, err := strconv.Atoi(canonical[:4])
	if err != nil {
		return 0, &FormatError{Reference: ref}
	}

	return year, nil
}

// IsValidYear valida um filtro de ano com exatamente quatro dígitos
func IsValidYear(year string) bool {
	if len(year) != 4 {
		return false
	}
	for _, c := range year {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
