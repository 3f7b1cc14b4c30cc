package viewport

import "testing"

func TestRazaoVisivel(t *testing.T) {
	tests := []struct {
		name     string
		elemento Elemento
		altura   float64
		want     float64
	}{
		{
			name:     "Elemento ocupa o viewport inteiro",
			elemento: Elemento{Slug: "a", Topo: 0, Base: 800},
			altura:   800,
			want:     1.0,
		},
		{
			name:     "Metade inferior visível",
			elemento: Elemento{Slug: "a", Topo: 400, Base: 1200},
			altura:   800,
			want:     0.5,
		},
		{
			name:     "Metade superior visível (topo negativo)",
			elemento: Elemento{Slug: "a", Topo: -400, Base: 400},
			altura:   800,
			want:     0.5,
		},
		{
			name:     "Acima do viewport",
			elemento: Elemento{Slug: "a", Topo: -900, Base: -100},
			altura:   800,
			want:     0,
		},
		{
			name:     "Abaixo do viewport",
			elemento: Elemento{Slug: "a", Topo: 900, Base: 1700},
			altura:   800,
			want:     0,
		},
		{
			name:     "Altura de viewport inválida",
			elemento: Elemento{Slug: "a", Topo: 0, Base: 800},
			altura:   0,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RazaoVisivel(tt.elemento, tt.altura)
			if got != tt.want {
				t.Errorf("RazaoVisivel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelecionarAtual(t *testing.T) {
	tests := []struct {
		name     string
		amostra  Amostra
		anterior string
		want     string
	}{
		{
			name: "Maior fração visível vence",
			amostra: Amostra{
				AlturaViewport: 800,
				Elementos: []Elemento{
					{Slug: "primeiro", Topo: -700, Base: 100},
					{Slug: "segundo", Topo: 100, Base: 900},
				},
			},
			anterior: "primeiro",
			want:     "segundo",
		},
		{
			name: "Empate fica com o mais cedo na ordem do documento",
			amostra: Amostra{
				AlturaViewport: 800,
				Elementos: []Elemento{
					{Slug: "primeiro", Topo: 0, Base: 400},
					{Slug: "segundo", Topo: 400, Base: 800},
				},
			},
			anterior: "",
			want:     "primeiro",
		},
		{
			name: "Sem sobreposição positiva mantém a seleção anterior",
			amostra: Amostra{
				AlturaViewport: 800,
				Elementos: []Elemento{
					{Slug: "primeiro", Topo: -1600, Base: -800},
					{Slug: "segundo", Topo: 800, Base: 1600},
				},
			},
			anterior: "primeiro",
			want:     "primeiro",
		},
		{
			name:     "Amostra vazia mantém a seleção anterior",
			amostra:  Amostra{AlturaViewport: 800},
			anterior: "atual",
			want:     "atual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelecionarAtual(tt.amostra, tt.anterior)
			if got != tt.want {
				t.Errorf("SelecionarAtual() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelecionarAtualDeterministico(t *testing.T) {
	amostra := Amostra{
		AlturaViewport: 800,
		Elementos: []Elemento{
			{Slug: "a", Topo: -100, Base: 500},
			{Slug: "b", Topo: 500, Base: 1300},
			{Slug: "c", Topo: 1300, Base: 2100},
		},
	}

	// Função pura da geometria: invocações repetidas retornam o mesmo slug
	primeira := SelecionarAtual(amostra, "")
	for i := 0; i < 10; i++ {
		if got := SelecionarAtual(amostra, ""); got != primeira {
			t.Fatalf("SelecionarAtual() variou entre invocações: %q != %q", got, primeira)
		}
	}
	if primeira != "a" {
		t.Errorf("SelecionarAtual() = %q, want %q", primeira, "a")
	}
}
