package handlers

import (
	"errors"
	"net/http"

	"github.com/diario-carioca/app-feed-leitura/internal/feed"
	middlewares "github.com/diario-carioca/app-feed-leitura/internal/middleware"
	"github.com/diario-carioca/app-feed-leitura/internal/models"
	"github.com/diario-carioca/app-feed-leitura/internal/services"
	"github.com/diario-carioca/app-feed-leitura/internal/viewport"
	"github.com/gin-gonic/gin"
)

// FeedHandler atende as sessões de leitura contínua
type FeedHandler struct {
	service *services.FeedService
}

// NewFeedHandler cria um novo handler de feed
func NewFeedHandler(service *services.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// CriarSessaoRequest é o corpo de criação de sessão
type CriarSessaoRequest struct {
	Slug string `json:"slug" binding:"required"`
}

// SessaoResponse é a visão externa de uma sessão de leitura: a lista
// ordenada de artigos a exibir e a sinalização de que mais podem chegar
type SessaoResponse struct {
	ID       string                    `json:"id"`
	Entradas []feed.Entrada            `json:"entradas"`
	Origem   models.OrigemRecomendacao `json:"origem"`
	TemMais  bool                      `json:"tem_mais"`
	Esgotada bool                      `json:"esgotada"`
}

func sessaoResponse(sessao *feed.Sessao) SessaoResponse {
	return SessaoResponse{
		ID:       sessao.ID(),
		Entradas: sessao.Entradas(),
		Origem:   sessao.Origem(),
		TemMais:  sessao.TemMais(),
		Esgotada: sessao.Esgotada(),
	}
}

// CriarSessao godoc
// @Summary Abre uma sessão de leitura contínua
// @Description Cria a sessão de feed para o artigo aberto pelo leitor e dispara, de forma assíncrona, a única busca de recomendações da sessão. Enquanto o lote está pendente, `tem_mais` é verdadeiro.
// @Tags feed
// @Accept json
// @Produce json
// @Param request body CriarSessaoRequest true "Slug do artigo aberto"
// @Success 201 {object} SessaoResponse "Sessão criada com o artigo inicial"
// @Failure 400 {object} map[string]string "Corpo inválido"
// @Failure 404 {object} map[string]string "Artigo não encontrado"
// @Router /api/v1/feed/sessoes [post]
func (h *FeedHandler) CriarSessao(c *gin.Context) {
	var req CriarSessaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Corpo inválido",
			"details": err.Error(),
		})
		return
	}

	sessao, err := h.service.CriarSessao(c.Request.Context(), req.Slug, middlewares.GetLeitorID(c))
	if err != nil {
		if errors.Is(err, models.ErrArtigoNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artigo não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao criar sessão"})
		return
	}

	c.JSON(http.StatusCreated, sessaoResponse(sessao))
}

// BuscarSessao godoc
// @Summary Consulta uma sessão de leitura
// @Description Retorna a lista ordenada de artigos da sessão e se mais podem chegar.
// @Tags feed
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 200 {object} SessaoResponse
// @Failure 404 {object} map[string]string "Sessão não encontrada"
// @Router /api/v1/feed/sessoes/{id} [get]
func (h *FeedHandler) BuscarSessao(c *gin.Context) {
	sessao, err := h.service.BuscarSessao(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sessão não encontrada"})
		return
	}

	c.JSON(http.StatusOK, sessaoResponse(sessao))
}

// AvancarResponse é o resultado de um gatilho de scroll
type AvancarResponse struct {
	Entrada  *feed.Entrada `json:"entrada,omitempty"`
	TemMais  bool          `json:"tem_mais"`
	Esgotada bool          `json:"esgotada"`
}

// Avancar godoc
// @Summary Gatilho de scroll do feed
// @Description Chamado quando a região de gatilho após o último artigo renderizado entra em vista. Anexa o próximo artigo do lote, respeitando o teto de carregamentos automáticos; se nada resta a anexar, `entrada` vem vazia.
// @Tags feed
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 200 {object} AvancarResponse
// @Failure 404 {object} map[string]string "Sessão não encontrada"
// @Router /api/v1/feed/sessoes/{id}/avancar [post]
func (h *FeedHandler) Avancar(c *gin.Context) {
	id := c.Param("id")
	entrada, err := h.service.Avancar(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sessão não encontrada"})
		return
	}

	sessao, err := h.service.BuscarSessao(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sessão não encontrada"})
		return
	}

	c.JSON(http.StatusOK, AvancarResponse{
		Entrada:  entrada,
		TemMais:  sessao.TemMais(),
		Esgotada: sessao.Esgotada(),
	})
}

// ViewportRequest é a amostra de geometria reportada pelo cliente
type ViewportRequest struct {
	AlturaViewport float64             `json:"altura_viewport" binding:"required,gt=0"`
	Elementos      []viewport.Elemento `json:"elementos" binding:"required,dive"`
	SlugAnterior   string              `json:"slug_anterior"`
}

// Viewport godoc
// @Summary Avalia o artigo atual do viewport
// @Description Recebe as caixas verticais dos artigos renderizados e a altura do viewport; seleciona o artigo com a maior fração visível (empates ficam com o mais cedo na ordem do documento) e retorna slug, título e endereço canônico para a barra de endereço. Sem sobreposição positiva, a seleção anterior é mantida.
// @Tags feed
// @Accept json
// @Produce json
// @Param id path string true "ID da sessão"
// @Param request body ViewportRequest true "Geometria dos artigos renderizados"
// @Success 200 {object} services.SelecaoViewport
// @Failure 400 {object} map[string]string "Corpo inválido"
// @Failure 404 {object} map[string]string "Sessão não encontrada"
// @Router /api/v1/feed/sessoes/{id}/viewport [post]
func (h *FeedHandler) Viewport(c *gin.Context) {
	var req ViewportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Corpo inválido",
			"details": err.Error(),
		})
		return
	}

	amostra := viewport.Amostra{
		AlturaViewport: req.AlturaViewport,
		Elementos:      req.Elementos,
	}

	selecao, err := h.service.AvaliarViewport(c.Param("id"), amostra, req.SlugAnterior)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sessão não encontrada"})
		return
	}

	c.JSON(http.StatusOK, selecao)
}

// Encerrar godoc
// @Summary Encerra uma sessão de leitura
// @Description Destrói a sessão quando o leitor navega para fora. Lotes de recomendação que chegarem depois são descartados sem efeito.
// @Tags feed
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 204 "Sessão encerrada"
// @Router /api/v1/feed/sessoes/{id} [delete]
func (h *FeedHandler) Encerrar(c *gin.Context) {
	h.service.Encerrar(c.Param("id"))
	c.Status(http.StatusNoContent)
}
