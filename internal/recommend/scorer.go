package recommend

import (
	"sort"
	"time"

	"github.com/diario-carioca/app-feed-leitura/internal/models"
)

// Pesos da pontuação de relevância
const (
	PesoCategoria = 5 // categoria igual à do artigo em leitura
	PesoTag       = 3 // por tag em comum
	BonusRecencia = 2 // publicado dentro da janela de recência
)

// JanelaRecenciaPadrao é a janela em que um artigo ainda conta como recente
const JanelaRecenciaPadrao = 7 * 24 * time.Hour

// Scorer calcula a pontuação de relevância de candidatos
type Scorer struct {
	janelaRecencia time.Duration
	agora          func() time.Time
}

// NewScorer cria um scorer com a janela de recência informada.
// Janela não positiva usa o padrão de 7 dias.
func NewScorer(janelaRecencia time.Duration) *Scorer {
	if janelaRecencia <= 0 {
		janelaRecencia = JanelaRecenciaPadrao
	}
	return &Scorer{
		janelaRecencia: janelaRecencia,
		agora:          time.Now,
	}
}

// Pontuar calcula a pontuação de um candidato em relação ao pedido
func (s *Scorer) Pontuar(candidato *models.Artigo, req *models.RecomendacaoRequest) int {
	pontos := 0

	if req.Categoria != "" && candidato.Categoria == req.Categoria {
		pontos += PesoCategoria
	}

	for _, tag := range req.Tags {
		if candidato.Tags.Contem(tag) {
			pontos += PesoTag
		}
	}

	if candidato.PublicadoEm != nil && s.agora().Sub(*candidato.PublicadoEm) <= s.janelaRecencia {
		pontos += BonusRecencia
	}

	return pontos
}

// Ordenar ordena os candidatos por pontuação descendente. A ordenação é
// estável: empates preservam a ordem de chegada, que já é por recência.
func (s *Scorer) Ordenar(candidatos []models.Artigo, req *models.RecomendacaoRequest) {
	pontos := make(map[string]int, len(candidatos))
	for i := range candidatos {
		pontos[candidatos[i].ID] = s.Pontuar(&candidatos[i], req)
	}

	sort.SliceStable(candidatos, func(i, j int) bool {
		return pontos[candidatos[i].ID] > pontos[candidatos[j].ID]
	})
}
