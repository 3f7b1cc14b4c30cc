package utils

import (
	"reflect"
	"testing"
)

func TestNormalizarTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{
			name: "Acentos removidos",
			tag:  "Saúde",
			want: "saude",
		},
		{
			name: "Cedilha e til",
			tag:  "Educação",
			want: "educacao",
		},
		{
			name: "Espaços nas bordas",
			tag:  "  Trânsito  ",
			want: "transito",
		},
		{
			name: "Já normalizada",
			tag:  "esportes",
			want: "esportes",
		},
		{
			name: "Vazia",
			tag:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizarTag(tt.tag)
			if got != tt.want {
				t.Errorf("NormalizarTag(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestNormalizarTags(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{
			name: "Duplicadas após normalização",
			tags: []string{"Saúde", "saude", "SAÚDE"},
			want: []string{"saude"},
		},
		{
			name: "Preserva ordem da primeira ocorrência",
			tags: []string{"Política", "Economia", "política"},
			want: []string{"politica", "economia"},
		},
		{
			name: "Descarta vazias e espaços",
			tags: []string{"", "  ", "Cultura"},
			want: []string{"cultura"},
		},
		{
			name: "Lista vazia",
			tags: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizarTags(tt.tags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizarTags(%v) = %v, want %v", tt.tags, got, tt.want)
			}
		})
	}
}
