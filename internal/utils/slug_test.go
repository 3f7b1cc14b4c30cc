package utils

import (
	"strings"
	"testing"
)

func TestGerarSlug(t *testing.T) {
	tests := []struct {
		name     string
		titulo   string
		artigoID string
		want     string
	}{
		{
			name:     "Título com acentos",
			titulo:   "Eleições no Rio",
			artigoID: "abc123def456",
			want:     "eleicoes-no-rio-abc123de",
		},
		{
			name:     "Título simples",
			titulo:   "Nova linha do metrô",
			artigoID: "f47ac10b58cc",
			want:     "nova-linha-do-metro-f47ac10b",
		},
		{
			name:     "Pontuação vira hífen",
			titulo:   "Saúde: mutirão de exames!",
			artigoID: "12345678abcd",
			want:     "saude-mutirao-de-exames-12345678",
		},
		{
			name:     "Título vazio",
			titulo:   "",
			artigoID: "abc123def456",
			want:     "",
		},
		{
			name:     "ID vazio",
			titulo:   "Eleições no Rio",
			artigoID: "",
			want:     "",
		},
		{
			name:     "Título só com símbolos usa o ID curto",
			titulo:   "!!! ???",
			artigoID: "abc123def456",
			want:     "abc123de",
		},
		{
			name:     "ID curto não é truncado",
			titulo:   "Trânsito",
			artigoID: "ab12",
			want:     "transito-ab12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GerarSlug(tt.titulo, tt.artigoID)
			if got != tt.want {
				t.Errorf("GerarSlug() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGerarSlugTituloLongo(t *testing.T) {
	titulo := strings.Repeat("prefeitura anuncia obras ", 10)
	got := GerarSlug(titulo, "abc123def456")

	base := strings.TrimSuffix(got, "-abc123de")
	if len(base) > MaxSlugBaseLength {
		t.Errorf("base do slug tem %d caracteres, want <= %d", len(base), MaxSlugBaseLength)
	}
	if strings.HasSuffix(base, "-") {
		t.Errorf("base do slug termina em hífen: %q", base)
	}
}

func TestCaminhoCanonico(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want string
	}{
		{
			name: "Slug preenchido",
			slug: "eleicoes-no-rio-abc123de",
			want: "/noticias/eleicoes-no-rio-abc123de",
		},
		{
			name: "Slug vazio",
			slug: "",
			want: "/noticias",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CaminhoCanonico(tt.slug)
			if got != tt.want {
				t.Errorf("CaminhoCanonico() = %q, want %q", got, tt.want)
			}
		})
	}
}
