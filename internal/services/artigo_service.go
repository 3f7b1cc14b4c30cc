package services

import (
	"context"

	"github.com/diario-carioca/app-feed-leitura/internal/models"
	"github.com/diario-carioca/app-feed-leitura/internal/utils"
)

// ArtigoDetalhado é a projeção de um artigo para a superfície de leitura
type ArtigoDetalhado struct {
	models.Artigo
	CaminhoCanonico string `json:"caminho_canonico"`
}

// ArtigoService resolve artigos para a camada de renderização
type ArtigoService struct {
	repo           ArtigoRepository
	resumoMaxRunas int
}

// NewArtigoService cria o serviço de artigos
func NewArtigoService(repo ArtigoRepository, resumoMaxRunas int) *ArtigoService {
	if resumoMaxRunas <= 0 {
		resumoMaxRunas = 280
	}
	return &ArtigoService{
		repo:           repo,
		resumoMaxRunas: resumoMaxRunas,
	}
}

// BuscarPorSlug retorna o artigo publicado do slug, com endereço
// canônico e resumo derivado do conteúdo quando a redação não informou um
func (s *ArtigoService) BuscarPorSlug(ctx context.Context, slug string) (*ArtigoDetalhado, error) {
	artigo, err := s.repo.BuscarPorSlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.detalhar(artigo), nil
}

// BuscarPorID retorna o artigo publicado do id informado
func (s *ArtigoService) BuscarPorID(ctx context.Context, id string) (*ArtigoDetalhado, error) {
	artigo, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detalhar(artigo), nil
}

func (s *ArtigoService) detalhar(artigo *models.Artigo) *ArtigoDetalhado {
	detalhado := &ArtigoDetalhado{
		Artigo:          *artigo,
		CaminhoCanonico: utils.CaminhoCanonico(artigo.Slug),
	}

	if detalhado.Resumo == "" {
		detalhado.Resumo = utils.GerarResumo(artigo.Conteudo, s.resumoMaxRunas)
	}

	return detalhado
}
