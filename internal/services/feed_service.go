// Package services orquestra o repositório de artigos, o motor de
// recomendação e o store de sessões de leitura contínua.
package services

import (
	"context"
	"log"
	"time"

	"github.com/diario-carioca/app-feed-leitura/internal/feed"
	"github.com/diario-carioca/app-feed-leitura/internal/models"
	"github.com/diario-carioca/app-feed-leitura/internal/recommend"
	"github.com/diario-carioca/app-feed-leitura/internal/utils"
	"github.com/diario-carioca/app-feed-leitura/internal/viewport"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// tempoLimiteLote limita a busca assíncrona do lote de recomendações
const tempoLimiteLote = 10 * time.Second

// ArtigoRepository é a superfície de leitura de artigos usada pelo serviço
type ArtigoRepository interface {
	recommend.Repositorio
	BuscarPorSlug(ctx context.Context, slug string) (*models.Artigo, error)
	BuscarPorID(ctx context.Context, id string) (*models.Artigo, error)
}

// FeedService gerencia sessões de leitura contínua
type FeedService struct {
	repo     ArtigoRepository
	resolver *recommend.Resolver
	store    *feed.SessaoStore

	tamanhoLote       int
	maxAutoCarregados int
}

// NewFeedService cria o serviço de feed
func NewFeedService(repo ArtigoRepository, resolver *recommend.Resolver, store *feed.SessaoStore, tamanhoLote, maxAutoCarregados int) *FeedService {
	if tamanhoLote <= 0 {
		tamanhoLote = feed.MaxAutoCarregadosPadrao
	}
	if maxAutoCarregados <= 0 {
		maxAutoCarregados = feed.MaxAutoCarregadosPadrao
	}
	return &FeedService{
		repo:              repo,
		resolver:          resolver,
		store:             store,
		tamanhoLote:       tamanhoLote,
		maxAutoCarregados: maxAutoCarregados,
	}
}

// CriarSessao abre uma sessão de leitura para o artigo do slug informado
// e dispara a busca única e assíncrona do lote de recomendações.
func (s *FeedService) CriarSessao(ctx context.Context, slug, leitorID string) (*feed.Sessao, error) {
	ctx, span := otel.Tracer("feed").Start(ctx, "feed.criar_sessao")
	defer span.End()
	span.SetAttributes(attribute.String("feed.slug", slug))

	artigo, err := s.repo.BuscarPorSlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	sessao := feed.NewSessao(uuid.NewString(), *artigo, s.maxAutoCarregados)
	if leitorID != "" {
		sessao.DefinirLeitor(leitorID)
	}
	s.store.Put(sessao)

	span.SetAttributes(attribute.String("feed.sessao_id", sessao.ID()))

	req := models.RecomendacaoRequest{
		ArtigoAtualID: artigo.ID,
		Categoria:     artigo.Categoria,
		Tags:          artigo.Tags,
		Quantidade:    s.tamanhoLote,
	}

	// A busca do lote não bloqueia a criação da sessão: o leitor pode
	// rolar e ler enquanto ela está pendente
	go s.buscarLote(sessao.ID(), req)

	return sessao, nil
}

// buscarLote executa a única chamada de recomendação da sessão e entrega
// o lote. Se a sessão já foi encerrada ou descartada quando o lote
// chega, ele é ignorado.
func (s *FeedService) buscarLote(sessaoID string, req models.RecomendacaoRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), tempoLimiteLote)
	defer cancel()

	resultado := s.resolver.Resolve(ctx, req)

	sessao := s.store.Get(sessaoID)
	if sessao == nil {
		log.Printf("Lote descartado: sessão %s não existe mais", sessaoID)
		return
	}

	if !sessao.ReceberLote(resultado.Artigos, resultado.Origem) {
		log.Printf("Lote descartado: sessão %s não aguardava lote", sessaoID)
	}
}

// BuscarSessao retorna a sessão ativa com o id informado
func (s *FeedService) BuscarSessao(id string) (*feed.Sessao, error) {
	sessao := s.store.Get(id)
	if sessao == nil {
		return nil, models.ErrSessaoNaoEncontrada
	}
	return sessao, nil
}

// Avancar anexa o próximo artigo do lote quando o gatilho de scroll da
// sessão dispara. Retorna nil quando não há nada a anexar.
func (s *FeedService) Avancar(id string) (*feed.Entrada, error) {
	sessao := s.store.Get(id)
	if sessao == nil {
		return nil, models.ErrSessaoNaoEncontrada
	}
	return sessao.Avancar(), nil
}

// Encerrar destrói a sessão (navegação para fora). Lotes pendentes que
// chegarem depois são descartados.
func (s *FeedService) Encerrar(id string) {
	s.store.Remove(id)
}

// SelecaoViewport é o artigo atual derivado da geometria reportada
type SelecaoViewport struct {
	Slug            string `json:"slug"`
	Titulo          string `json:"titulo"`
	CaminhoCanonico string `json:"caminho_canonico"`
}

// AvaliarViewport seleciona o artigo atual da sessão a partir da amostra
// de geometria. Sem sobreposição positiva, a seleção anterior é mantida.
func (s *FeedService) AvaliarViewport(id string, amostra viewport.Amostra, anterior string) (*SelecaoViewport, error) {
	sessao := s.store.Get(id)
	if sessao == nil {
		return nil, models.ErrSessaoNaoEncontrada
	}

	slug := viewport.SelecionarAtual(amostra, anterior)

	selecao := &SelecaoViewport{
		Slug:            slug,
		CaminhoCanonico: utils.CaminhoCanonico(slug),
	}

	// Título acompanha o endereço exibido
	for _, entrada := range sessao.Entradas() {
		if entrada.Artigo.Slug == slug {
			selecao.Titulo = entrada.Artigo.Titulo
			break
		}
	}

	return selecao, nil
}
