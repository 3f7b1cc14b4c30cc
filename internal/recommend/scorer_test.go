package recommend

import (
	"testing"
	"time"

	"github.com/diario-carioca/app-feed-leitura/internal/models"
)

func artigoComTags(id, categoria string, tags []string, idadeDias int) models.Artigo {
	publicadoEm := time.Now().AddDate(0, 0, -idadeDias)
	return models.Artigo{
		ID:          id,
		Slug:        id,
		Titulo:      id,
		Categoria:   categoria,
		Tags:        tags,
		Status:      models.StatusPublicado,
		PublicadoEm: &publicadoEm,
	}
}

func TestPontuar(t *testing.T) {
	scorer := NewScorer(0)

	req := &models.RecomendacaoRequest{
		ArtigoAtualID: "atual",
		Categoria:     "Tech",
		Tags:          []string{"ai", "startup"},
		Quantidade:    4,
	}

	tests := []struct {
		name      string
		candidato models.Artigo
		want      int
	}{
		{
			name:      "Categoria igual e recente",
			candidato: artigoComTags("a", "Tech", nil, 2),
			want:      7,
		},
		{
			name:      "Apenas uma tag em comum, antigo",
			candidato: artigoComTags("b", "World", []string{"ai"}, 40),
			want:      3,
		},
		{
			name:      "Categoria e duas tags, fora da janela de recência",
			candidato: artigoComTags("c", "Tech", []string{"ai", "startup"}, 10),
			want:      11,
		},
		{
			name:      "Nenhuma afinidade, antigo",
			candidato: artigoComTags("d", "Esportes", []string{"futebol"}, 30),
			want:      0,
		},
		{
			name:      "Apenas recência",
			candidato: artigoComTags("e", "Esportes", []string{"futebol"}, 1),
			want:      2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Pontuar(&tt.candidato, req)
			if got != tt.want {
				t.Errorf("Pontuar() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPontuarCategoriaVazia(t *testing.T) {
	scorer := NewScorer(0)

	req := &models.RecomendacaoRequest{
		ArtigoAtualID: "atual",
		Categoria:     "",
		Tags:          []string{"ai"},
		Quantidade:    4,
	}

	// Categoria vazia no pedido nunca casa, nem com candidato de categoria vazia
	candidato := artigoComTags("a", "", nil, 60)
	if got := scorer.Pontuar(&candidato, req); got != 0 {
		t.Errorf("Pontuar() = %d, want 0", got)
	}
}

func TestOrdenarEstavel(t *testing.T) {
	scorer := NewScorer(0)

	req := &models.RecomendacaoRequest{
		ArtigoAtualID: "atual",
		Categoria:     "Tech",
		Tags:          nil,
		Quantidade:    4,
	}

	// Ambos pontuam 5 (categoria, sem recência); a ordem de chegada é por
	// recência e deve ser preservada no empate
	candidatos := []models.Artigo{
		artigoComTags("mais-recente", "Tech", nil, 10),
		artigoComTags("mais-antigo", "Tech", nil, 20),
	}

	scorer.Ordenar(candidatos, req)

	if candidatos[0].ID != "mais-recente" || candidatos[1].ID != "mais-antigo" {
		t.Errorf("Ordenar() quebrou o empate por recência: %s, %s", candidatos[0].ID, candidatos[1].ID)
	}
}

func TestOrdenarPorPontuacao(t *testing.T) {
	scorer := NewScorer(0)

	req := &models.RecomendacaoRequest{
		ArtigoAtualID: "atual",
		Categoria:     "Tech",
		Tags:          []string{"ai", "startup"},
		Quantidade:    4,
	}

	// Ordem de chegada: A (7), B (3), C (11); esperado: C, A, B
	candidatos := []models.Artigo{
		artigoComTags("A", "Tech", nil, 2),
		artigoComTags("B", "World", []string{"ai"}, 40),
		artigoComTags("C", "Tech", []string{"ai", "startup"}, 10),
	}

	scorer.Ordenar(candidatos, req)

	esperado := []string{"C", "A", "B"}
	for i, id := range esperado {
		if candidatos[i].ID != id {
			t.Fatalf("Ordenar()[%d] = %s, want %s", i, candidatos[i].ID, id)
		}
	}
}

func TestJanelaRecenciaConfiguravel(t *testing.T) {
	scorer := NewScorer(48 * time.Hour)

	req := &models.RecomendacaoRequest{
		ArtigoAtualID: "atual",
		Categoria:     "Outra",
		Quantidade:    4,
	}

	dentro := artigoComTags("dentro", "Tech", nil, 1)
	fora := artigoComTags("fora", "Tech", nil, 3)

	if got := scorer.Pontuar(&dentro, req); got != BonusRecencia {
		t.Errorf("Pontuar(dentro da janela) = %d, want %d", got, BonusRecencia)
	}
	if got := scorer.Pontuar(&fora, req); got != 0 {
		t.Errorf("Pontuar(fora da janela) = %d, want 0", got)
	}
}
