// Package viewport determina qual artigo renderizado é o artigo "atual"
// do leitor a partir da geometria dos elementos, para sincronizar o
// endereço canônico e o título exibidos sem navegação.
package viewport

// Elemento é a caixa vertical de um artigo renderizado, em coordenadas
// do viewport (topo pode ser negativo quando o artigo já rolou para cima)
type Elemento struct {
	Slug string  `json:"slug" binding:"required"`
	Topo float64 `json:"topo"`
	Base float64 `json:"base"`
}

// Amostra é uma leitura instantânea da geometria da página
type Amostra struct {
	AlturaViewport float64    `json:"altura_viewport"`
	Elementos      []Elemento `json:"elementos"`
}

// RazaoVisivel calcula a fração da altura do viewport coberta pelo
// elemento: sobreposição vertical entre a caixa e o viewport
func RazaoVisivel(elemento Elemento, alturaViewport float64) float64 {
	if alturaViewport <= 0 {
		return 0
	}

	topo := elemento.Topo
	if topo < 0 {
		topo = 0
	}
	base := elemento.Base
	if base > alturaViewport {
		base = alturaViewport
	}

	visivel := base - topo
	if visivel < 0 {
		visivel = 0
	}

	return visivel / alturaViewport
}

// SelecionarAtual escolhe o artigo com a maior razão visível. A iteração
// segue a ordem de renderização e só troca o melhor em melhora estrita,
// então empates ficam com o candidato mais cedo no documento. Se nenhum
// elemento tem sobreposição positiva, o slug anterior é mantido: o
// endereço exibido nunca regride para nada.
func SelecionarAtual(amostra Amostra, anterior string) string {
	melhor := anterior
	melhorRazao := 0.0

	for _, elemento := range amostra.Elementos {
		razao := RazaoVisivel(elemento, amostra.AlturaViewport)
		if razao > melhorRazao {
			melhorRazao = razao
			melhor = elemento.Slug
		}
	}

	return melhor
}
