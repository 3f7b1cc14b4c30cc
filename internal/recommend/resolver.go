// Package recommend implementa o motor de recomendação de artigos de
// continuação: dado o artigo em leitura, resolve a lista ordenada de
// próximos artigos em camadas de prioridade fixa (série, pontuados,
// recentes).
package recommend

import (
	"context"
	"log"
	"time"

	"github.com/diario-carioca/app-feed-leitura/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// MultiplicadorCandidatosPadrao define quantos candidatos buscar por vaga
// restante na camada pontuada
const MultiplicadorCandidatosPadrao = 3

// Repositorio é a superfície de consulta que o resolver exige do ambiente
type Repositorio interface {
	BuscarEntradaColecao(ctx context.Context, artigoID string) (*models.ColecaoArtigo, error)
	BuscarProximoNaColecao(ctx context.Context, colecaoID string, ordem int) (*models.Artigo, error)
	BuscarCandidatos(ctx context.Context, filtro models.FiltroCandidatos, excluirIDs []string, limite int) ([]models.Artigo, error)
	BuscarRecentes(ctx context.Context, excluirIDs []string, limite int) ([]models.Artigo, error)
}

// Resolver resolve pedidos de recomendação em camadas de prioridade.
// É puro em relação ao chamador: nunca retorna erro; qualquer falha
// interna degrada para uma lista menor (ou vazia).
type Resolver struct {
	repo          Repositorio
	scorer        *Scorer
	multiplicador int
}

// NewResolver cria um resolver sobre o repositório informado
func NewResolver(repo Repositorio, scorer *Scorer, multiplicador int) *Resolver {
	if multiplicador <= 0 {
		multiplicador = MultiplicadorCandidatosPadrao
	}
	if scorer == nil {
		scorer = NewScorer(0)
	}
	return &Resolver{
		repo:          repo,
		scorer:        scorer,
		multiplicador: multiplicador,
	}
}

// Resolve retorna até req.Quantidade artigos de continuação, sem duplicatas
// e sem o artigo atual, na ordem das camadas: próximo da série, candidatos
// pontuados por categoria/tags, fallback por recência.
func (r *Resolver) Resolve(ctx context.Context, req models.RecomendacaoRequest) models.RecomendacaoResultado {
	ctx, span := otel.Tracer("recommend").Start(ctx, "recommend.resolve")
	defer span.End()

	span.SetAttributes(
		attribute.String("recommend.artigo_id", req.ArtigoAtualID),
		attribute.Int("recommend.quantidade", req.Quantidade),
	)

	resultado := models.RecomendacaoResultado{
		Artigos: []models.Artigo{},
		Origem:  models.OrigemRecente,
	}

	// Pedido malformado degrada para resposta vazia
	if req.Quantidade <= 0 || req.ArtigoAtualID == "" {
		span.SetAttributes(attribute.Int("recommend.total", 0))
		return resultado
	}

	inicio := time.Now()

	// Conjunto de exclusão: o artigo atual nunca aparece no resultado
	vistos := map[string]struct{}{req.ArtigoAtualID: {}}

	// Camada 1: continuação de série
	proximo := r.proximoDaSerie(ctx, req.ArtigoAtualID)
	if proximo != nil {
		resultado.Artigos = append(resultado.Artigos, *proximo)
		resultado.Origem = models.OrigemSerie
		vistos[proximo.ID] = struct{}{}
	}

	// Camada 2: candidatos pontuados por categoria/tags
	restante := req.Quantidade - len(resultado.Artigos)
	if restante > 0 {
		pontuados := r.candidatosPontuados(ctx, &req, vistos, restante)
		if len(pontuados) > 0 && resultado.Origem != models.OrigemSerie {
			resultado.Origem = models.OrigemMista
		}
		for _, artigo := range pontuados {
			resultado.Artigos = append(resultado.Artigos, artigo)
			vistos[artigo.ID] = struct{}{}
		}
	}

	// Camada 3: fallback por recência
	restante = req.Quantidade - len(resultado.Artigos)
	if restante > 0 {
		recentes, err := r.repo.BuscarRecentes(ctx, chaves(vistos), restante)
		if err != nil {
			log.Printf("Falha ao buscar artigos recentes: %v", err)
			recentes = nil
		}
		for _, artigo := range recentes {
			if _, ok := vistos[artigo.ID]; ok {
				continue
			}
			resultado.Artigos = append(resultado.Artigos, artigo)
			vistos[artigo.ID] = struct{}{}
		}
	}

	span.SetAttributes(
		attribute.String("recommend.origem", string(resultado.Origem)),
		attribute.Int("recommend.total", len(resultado.Artigos)),
		attribute.Int64("recommend.duracao_ms", time.Since(inicio).Milliseconds()),
	)

	return resultado
}

// proximoDaSerie busca o próximo artigo publicado da coleção do artigo atual
func (r *Resolver) proximoDaSerie(ctx context.Context, artigoID string) *models.Artigo {
	entrada, err := r.repo.BuscarEntradaColecao(ctx, artigoID)
	if err != nil {
		log.Printf("Falha ao buscar entrada de coleção do artigo %s: %v", artigoID, err)
		return nil
	}
	if entrada == nil {
		return nil
	}

	proximo, err := r.repo.BuscarProximoNaColecao(ctx, entrada.ColecaoID, entrada.Ordem)
	if err != nil {
		log.Printf("Falha ao buscar próximo artigo da coleção %s: %v", entrada.ColecaoID, err)
		return nil
	}
	return proximo
}

// candidatosPontuados busca, pontua e ordena candidatos por categoria/tags,
// retornando no máximo restante artigos
func (r *Resolver) candidatosPontuados(ctx context.Context, req *models.RecomendacaoRequest, vistos map[string]struct{}, restante int) []models.Artigo {
	filtro := models.FiltroCandidatos{
		Categoria: req.Categoria,
		Tags:      req.Tags,
	}
	if filtro.Vazio() {
		return nil
	}

	candidatos, err := r.repo.BuscarCandidatos(ctx, filtro, chaves(vistos), restante*r.multiplicador)
	if err != nil {
		log.Printf("Falha ao buscar candidatos para o artigo %s: %v", req.ArtigoAtualID, err)
		return nil
	}

	// Remove ids já escolhidos em camadas anteriores
	unicos := candidatos[:0]
	for _, artigo := range candidatos {
		if _, ok := vistos[artigo.ID]; ok {
			continue
		}
		unicos = append(unicos, artigo)
	}

	r.scorer.Ordenar(unicos, req)

	if len(unicos) > restante {
		unicos = unicos[:restante]
	}
	return unicos
}

// chaves materializa o conjunto de exclusão como slice
func chaves(vistos map[string]struct{}) []string {
	ids := make([]string, 0, len(vistos))
	for id := range vistos {
		ids = append(ids, id)
	}
	return ids
}
