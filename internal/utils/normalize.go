package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizarTag remove acentos e caixa de uma tag para que a interseção
// de conjuntos de tags seja por igualdade exata.
// Exemplo: "Saúde" -> "saude", "Educação" -> "educacao"
func NormalizarTag(tag string) string {
	if tag == "" {
		return tag
	}

	// Remove acentos e diacríticos
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, tag)

	normalized = strings.ToLower(strings.TrimSpace(normalized))

	return normalized
}

// NormalizarTags normaliza um conjunto de tags, descartando vazias e
// duplicadas e preservando a ordem da primeira ocorrência
func NormalizarTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	vistas := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalizada := NormalizarTag(tag)
		if normalizada == "" {
			continue
		}
		if _, ok := vistas[normalizada]; ok {
			continue
		}
		vistas[normalizada] = struct{}{}
		result = append(result, normalizada)
	}

	return result
}
