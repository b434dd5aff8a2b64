// Package search implementa el filtro global de las tablas: coincidencia por
// subcadena sin distinguir mayúsculas (case folding Unicode).
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold normaliza s para comparaciones sin distinguir mayúsculas.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Contains informa si needle aparece en haystack ignorando mayúsculas.
// Un needle vacío coincide siempre.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

// AnyContains informa si needle aparece en alguno de los valores.
func AnyContains(needle string, values ...string) bool {
	if needle == "" {
		return true
	}
	n := Fold(needle)
	for _, v := range values {
		if strings.Contains(Fold(v), n) {
			return true
		}
	}
	return false
}
