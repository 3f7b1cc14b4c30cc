package services

import (
	"context"
	"errors"
	"testing"

	"github.com/diario-carioca/app-feed-leitura/internal/models"
)

func TestArtigoBuscarPorSlug(t *testing.T) {
	artigo := artigoPublicado("art-1", "chuvas-no-rio-art1", "cidade")
	artigo.Resumo = "Resumo escrito pela redação."
	repo := &repoTeste{artigos: map[string]models.Artigo{"art-1": artigo}}
	servico := NewArtigoService(repo, 280)

	detalhado, err := servico.BuscarPorSlug(context.Background(), "chuvas-no-rio-art1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if detalhado.CaminhoCanonico != "/noticias/chuvas-no-rio-art1" {
		t.Errorf("CaminhoCanonico = %q, want %q", detalhado.CaminhoCanonico, "/noticias/chuvas-no-rio-art1")
	}
	if detalhado.Resumo != "Resumo escrito pela redação." {
		t.Errorf("Resumo = %q, want o resumo informado pela redação", detalhado.Resumo)
	}

	_, err = servico.BuscarPorSlug(context.Background(), "nao-existe")
	if !errors.Is(err, models.ErrArtigoNaoEncontrado) {
		t.Errorf("err = %v, want ErrArtigoNaoEncontrado", err)
	}
}

func TestArtigoResumoDerivadoDoConteudo(t *testing.T) {
	artigo := artigoPublicado("art-1", "obras-art1", "cidade")
	artigo.Conteudo = "## Obras na zona norte\n\nA prefeitura iniciou as **obras** nesta semana."
	repo := &repoTeste{artigos: map[string]models.Artigo{"art-1": artigo}}
	servico := NewArtigoService(repo, 280)

	detalhado, err := servico.BuscarPorID(context.Background(), "art-1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	want := "Obras na zona norte A prefeitura iniciou as obras nesta semana."
	if detalhado.Resumo != want {
		t.Errorf("Resumo = %q, want %q", detalhado.Resumo, want)
	}
}
