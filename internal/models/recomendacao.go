package models

// OrigemRecomendacao descreve como as primeiras entradas do resultado foram obtidas
type OrigemRecomendacao string

const (
	// OrigemSerie indica que o próximo artigo da coleção foi encontrado
	OrigemSerie OrigemRecomendacao = "series"
	// OrigemMista indica que candidatos pontuados por categoria/tags contribuíram
	OrigemMista OrigemRecomendacao = "mixed"
	// OrigemRecente indica que o resultado é puro fallback por recência
	OrigemRecente OrigemRecomendacao = "latest"
)

// IsValid verifica se a origem é válida
func (o OrigemRecomendacao) IsValid() bool {
	switch o {
	case OrigemSerie, OrigemMista, OrigemRecente:
		return true
	}
	return false
}

// RecomendacaoRequest descreve o pedido de artigos de continuação
// a partir do artigo em leitura
type RecomendacaoRequest struct {
	ArtigoAtualID string
	Categoria     string
	Tags          []string
	Quantidade    int
}

// RecomendacaoResultado é a sequência ordenada de artigos recomendados
// e a origem das primeiras entradas
type RecomendacaoResultado struct {
	Artigos []Artigo           `json:"artigos"`
	Origem  OrigemRecomendacao `json:"origem"`
}

// FiltroCandidatos representa o predicado tipado
// "categoria = X OU tags ∩ Y ≠ ∅" aplicado pelo repositório
type FiltroCandidatos struct {
	Categoria string
	Tags      []string
}

// Vazio indica que o filtro não seleciona nada
func (f FiltroCandidatos) Vazio() bool {
	return f.Categoria == "" && len(f.Tags) == 0
}
