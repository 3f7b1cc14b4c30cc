package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MaxSlugBaseLength = 60
	ShortIDLength     = 8
)

// BasePathNoticias é o prefixo do endereço canônico de um artigo
const BasePathNoticias = "/noticias"

// GerarSlug cria um slug amigável para SEO a partir do título e do ID do artigo.
// Formato: {titulo-kebab-case}-{id-curto}
// Exemplo: "Eleições no Rio" + "abc123def456" -> "eleicoes-no-rio-abc123de"
func GerarSlug(titulo, artigoID string) string {
	if titulo == "" || artigoID == "" {
		return ""
	}

	slug := normalizeToSlug(titulo)
	shortID := truncateID(artigoID)

	if slug == "" {
		return shortID
	}

	return slug + "-" + shortID
}

// CaminhoCanonico monta o endereço canônico expresso pelo slug do artigo
func CaminhoCanonico(slug string) string {
	if slug == "" {
		return BasePathNoticias
	}
	return BasePathNoticias + "/" + slug
}

// normalizeToSlug converte texto para formato slug kebab-case
func normalizeToSlug(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, text)
	normalized = strings.ToLower(normalized)

	reg := regexp.MustCompile(`[^a-z0-9]+`)
	slug := reg.ReplaceAllString(normalized, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugBaseLength {
		slug = slug[:MaxSlugBaseLength]
		if lastHyphen := strings.LastIndex(slug, "-"); lastHyphen > 0 {
			slug = slug[:lastHyphen]
		}
	}

	return slug
}

// truncateID retorna os primeiros 8 caracteres do ID
func truncateID(id string) string {
	if len(id) > ShortIDLength {
		return id[:ShortIDLength]
	}
	return id
}
