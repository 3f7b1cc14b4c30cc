package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/diario-carioca/app-feed-leitura/internal/models"
	"github.com/diario-carioca/app-feed-leitura/internal/recommend"
	"github.com/diario-carioca/app-feed-leitura/internal/services"
	"github.com/diario-carioca/app-feed-leitura/internal/utils"
	"github.com/gin-gonic/gin"
)

// ArtigoHandler atende a superfície de leitura de artigos
type ArtigoHandler struct {
	artigos  *services.ArtigoService
	resolver *recommend.Resolver
}

// NewArtigoHandler cria um novo handler de artigos
func NewArtigoHandler(artigos *services.ArtigoService, resolver *recommend.Resolver) *ArtigoHandler {
	return &ArtigoHandler{
		artigos:  artigos,
		resolver: resolver,
	}
}

// BuscarPorSlug godoc
// @Summary Busca artigo por slug
// @Description Retorna o artigo publicado identificado pelo slug, com endereço canônico e resumo em texto puro derivado do conteúdo.
// @Tags artigos
// @Accept json
// @Produce json
// @Param slug path string true "Slug do artigo" example("eleicoes-no-rio-abc123de")
// @Success 200 {object} services.ArtigoDetalhado "Artigo encontrado"
// @Failure 404 {object} map[string]string "Artigo não encontrado"
// @Router /api/v1/artigos/{slug} [get]
func (h *ArtigoHandler) BuscarPorSlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrSlugObrigatorio.Error()})
		return
	}

	artigo, err := h.artigos.BuscarPorSlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, models.ErrArtigoNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artigo não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao buscar artigo"})
		return
	}

	c.JSON(http.StatusOK, artigo)
}

// Recomendar godoc
// @Summary Recomendações de continuação
// @Description Resolve até `quantidade` artigos de continuação para o artigo em leitura, nas camadas de prioridade fixa: próximo da série, candidatos pontuados por categoria/tags, fallback por recência.
// @Description
// @Description A resposta inclui a origem das primeiras entradas:
// @Description - **series**: o próximo artigo da coleção foi encontrado
// @Description - **mixed**: candidatos pontuados contribuíram
// @Description - **latest**: resultado é puro fallback por recência
// @Tags recomendacoes
// @Accept json
// @Produce json
// @Param artigo_id query string true "ID do artigo em leitura" example("a1b2c3d4")
// @Param quantidade query int false "Quantidade desejada de artigos" default(4) minimum(1) maximum(20) example(4)
// @Success 200 {object} models.RecomendacaoResultado "Lista ordenada de artigos e origem"
// @Failure 400 {object} map[string]string "Parâmetros inválidos"
// @Failure 404 {object} map[string]string "Artigo não encontrado"
// @Router /api/v1/recomendacoes [get]
func (h *ArtigoHandler) Recomendar(c *gin.Context) {
	artigoID := c.Query("artigo_id")
	if artigoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artigo_id é obrigatório"})
		return
	}

	quantidade := 4
	if valor := c.Query("quantidade"); valor != "" {
		parsed, err := strconv.Atoi(valor)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantidade inválida"})
			return
		}
		if parsed > 20 {
			parsed = 20
		}
		quantidade = parsed
	}

	artigo, err := h.artigos.BuscarPorID(c.Request.Context(), artigoID)
	if err != nil {
		if errors.Is(err, models.ErrArtigoNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artigo não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao buscar artigo"})
		return
	}

	resultado := h.resolver.Resolve(c.Request.Context(), models.RecomendacaoRequest{
		ArtigoAtualID: artigo.ID,
		Categoria:     artigo.Categoria,
		Tags:          utils.NormalizarTags(artigo.Tags),
		Quantidade:    quantidade,
	})

	c.JSON(http.StatusOK, resultado)
}
