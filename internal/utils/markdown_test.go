package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Texto puro",
			input: "texto sem formatação",
			want:  "texto sem formatação",
		},
		{
			name:  "Negrito e itálico",
			input: "**negrito** e *itálico*",
			want:  "negrito e itálico",
		},
		{
			name:  "Link mantém o texto",
			input: "Veja a [matéria completa](https://example.com)",
			want:  "Veja a matéria completa",
		},
		{
			name:  "Cabeçalho",
			input: "# Título da seção\n\nCorpo do texto.",
			want:  "Título da seção\n\nCorpo do texto.",
		},
		{
			name:  "Código inline",
			input: "use o comando `git status` antes",
			want:  "use o comando git status antes",
		},
		{
			name:  "Lista com marcadores",
			input: "- primeiro\n- segundo",
			want:  "• primeiro\n\n• segundo",
		},
		{
			name:  "Vazio",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkdown(tt.input)
			if got != tt.want {
				t.Errorf("StripMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGerarResumo(t *testing.T) {
	tests := []struct {
		name     string
		conteudo string
		limite   int
		want     string
	}{
		{
			name:     "Conteúdo curto fica inteiro",
			conteudo: "## Chuvas no Rio\n\nA cidade entrou em **estágio de atenção**.",
			limite:   280,
			want:     "Chuvas no Rio A cidade entrou em estágio de atenção.",
		},
		{
			name:     "Parágrafos viram um único parágrafo",
			conteudo: "Primeiro parágrafo.\n\nSegundo parágrafo.",
			limite:   280,
			want:     "Primeiro parágrafo. Segundo parágrafo.",
		},
		{
			name:     "Sem limite retorna tudo",
			conteudo: "Texto qualquer do artigo.",
			limite:   0,
			want:     "Texto qualquer do artigo.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GerarResumo(tt.conteudo, tt.limite)
			if got != tt.want {
				t.Errorf("GerarResumo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGerarResumoTruncaSemCortarPalavra(t *testing.T) {
	conteudo := strings.Repeat("reportagem especial sobre mobilidade ", 20)
	limite := 50

	got := GerarResumo(conteudo, limite)

	if !strings.HasSuffix(got, "…") {
		t.Fatalf("resumo truncado não termina em reticências: %q", got)
	}

	corpo := strings.TrimSuffix(got, "…")
	if utf8.RuneCountInString(corpo) > limite {
		t.Errorf("resumo tem %d runas, want <= %d", utf8.RuneCountInString(corpo), limite)
	}
	if strings.HasSuffix(corpo, " ") {
		t.Errorf("resumo termina em espaço: %q", corpo)
	}

	// Corte em limite de palavra: o corpo deve terminar numa palavra inteira
	ultima := corpo[strings.LastIndex(corpo, " ")+1:]
	switch ultima {
	case "reportagem", "especial", "sobre", "mobilidade":
	default:
		t.Errorf("resumo cortou palavra no meio: %q", ultima)
	}
}
