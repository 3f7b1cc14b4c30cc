package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/diario-carioca/app-feed-leitura/internal/models"
)

func artigoTeste(id string) models.Artigo {
	publicadoEm := time.Now().AddDate(0, 0, -1)
	return models.Artigo{
		ID:          id,
		Slug:        "slug-" + id,
		Titulo:      "Título " + id,
		Status:      models.StatusPublicado,
		PublicadoEm: &publicadoEm,
	}
}

func loteTeste(quantidade int) []models.Artigo {
	lote := make([]models.Artigo, quantidade)
	for i := range lote {
		lote[i] = artigoTeste(fmt.Sprintf("rec-%d", i+1))
	}
	return lote
}

func TestNovaSessaoAguardaLote(t *testing.T) {
	sessao := NewSessao("s1", artigoTeste("inicial"), 4)

	if sessao.Estado() != EstadoAguardandoLote {
		t.Errorf("Estado = %s, want %s", sessao.Estado(), EstadoAguardandoLote)
	}
	if !sessao.TemMais() {
		t.Error("TemMais() deve ser verdadeiro enquanto o lote está pendente")
	}

	entradas := sessao.Entradas()
	if len(entradas) != 1 || !entradas[0].Inicial || entradas[0].Artigo.ID != "inicial" {
		t.Errorf("Entradas = %+v, want apenas o artigo inicial", entradas)
	}

	// Antes do lote chegar, o gatilho de scroll não anexa nada
	if entrada := sessao.Avancar(); entrada != nil {
		t.Errorf("Avancar() antes do lote = %+v, want nil", entrada)
	}
}

func TestAvancarConsomeLoteEmOrdem(t *testing.T) {
	sessao := NewSessao("s1", artigoTeste("inicial"), 4)

	if !sessao.ReceberLote(loteTeste(3), models.OrigemMista) {
		t.Fatal("ReceberLote() deveria aceitar o lote")
	}
	if sessao.Estado() != EstadoPronto {
		t.Fatalf("Estado = %s, want %s", sessao.Estado(), EstadoPronto)
	}

	esperados := []string{"rec-1", "rec-2", "rec-3"}
	for _, id := range esperados {
		entrada := sessao.Avancar()
		if entrada == nil {
			t.Fatalf("Avancar() = nil, want %s", id)
		}
		if entrada.Artigo.ID != id {
			t.Errorf("Avancar() = %s, want %s", entrada.Artigo.ID, id)
		}
		if entrada.Inicial {
			t.Error("entrada anexada não pode ser marcada como inicial")
		}
	}

	if !sessao.Esgotada() {
		t.Error("sessão deve esgotar após consumir o lote")
	}
	if sessao.TemMais() {
		t.Error("TemMais() deve ser falso após esgotar")
	}
	if entrada := sessao.Avancar(); entrada != nil {
		t.Errorf("Avancar() após esgotar = %+v, want nil", entrada)
	}

	if total := len(sessao.Entradas()); total != 4 {
		t.Errorf("len(Entradas) = %d, want 4", total)
	}
}

func TestTetoDeCarregamentosAutomaticos(t *testing.T) {
	sessao := NewSessao("s1", artigoTeste("inicial"), 2)
	sessao.ReceberLote(loteTeste(5), models.OrigemMista)

	anexadas := 0
	for sessao.Avancar() != nil {
		anexadas++
	}

	if anexadas != 2 {
		t.Errorf("anexadas = %d, want 2 (teto da sessão)", anexadas)
	}
	if !sessao.Esgotada() {
		t.Error("sessão deve esgotar ao atingir o teto")
	}
}

func TestFalhaLote(t *testing.T) {
	sessao := NewSessao("s1", artigoTeste("inicial"), 4)
	sessao.FalhaLote()

	// A falha não é visível para o leitor: apenas não há continuação
	if sessao.Estado() != EstadoPronto {
		t.Errorf("Estado = %s, want %s", sessao.Estado(), EstadoPronto)
	}
	if entrada := sessao.Avancar(); entrada != nil {
		t.Errorf("Avancar() = %+v, want nil", entrada)
	}
	if !sessao.Esgotada() {
		t.Error("sessão com lote vazio deve esgotar no primeiro gatilho")
	}
	if total := len(sessao.Entradas()); total != 1 {
		t.Errorf("len(Entradas) = %d, want 1", total)
	}
}

func TestLoteAposEncerramentoEhDescartado(t *testing.T) {
	sessao := NewSessao("s1", artigoTeste("inicial"), 4)
	sessao.Encerrar()

	if sessao.ReceberLote(loteTeste(2), models.OrigemMista) {
		t.Error("ReceberLote() após encerramento deveria ser rejeitado")
	}
	if entrada := sessao.Avancar(); entrada != nil {
		t.Errorf("Avancar() após encerramento = %+v, want nil", entrada)
	}
	if total := len(sessao.Entradas()); total != 1 {
		t.Errorf("len(Entradas) = %d, want 1", total)
	}
}

func TestLoteDuplicadoEhRejeitado(t *testing.T) {
	sessao := NewSessao("s1", artigoTeste("inicial"), 4)

	if !sessao.ReceberLote(loteTeste(2), models.OrigemSerie) {
		t.Fatal("primeiro lote deveria ser aceito")
	}
	if sessao.ReceberLote(loteTeste(4), models.OrigemMista) {
		t.Error("segundo lote deveria ser rejeitado: a busca é única por sessão")
	}
	if sessao.Origem() != models.OrigemSerie {
		t.Errorf("Origem = %s, want %s", sessao.Origem(), models.OrigemSerie)
	}
}
