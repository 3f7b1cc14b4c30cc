// Package feed implementa o controlador do feed contínuo de leitura:
// sessões por leitor que consomem incrementalmente um único lote de
// recomendações conforme o scroll se aproxima do fim da lista renderizada.
package feed

import (
	"sync"
	"time"

	"github.com/diario-carioca/app-feed-leitura/internal/models"
)

// EstadoSessao descreve o ciclo de vida de uma sessão de leitura
type EstadoSessao string

const (
	// EstadoAguardandoLote indica que a busca única de recomendações está pendente
	EstadoAguardandoLote EstadoSessao = "aguardando_lote"
	// EstadoPronto indica que o lote chegou e pode ser consumido
	EstadoPronto EstadoSessao = "pronto"
	// EstadoEsgotado é terminal: nenhum carregamento automático adicional
	EstadoEsgotado EstadoSessao = "esgotado"
)

// MaxAutoCarregadosPadrao limita quantos artigos são anexados
// automaticamente em uma sessão
const MaxAutoCarregadosPadrao = 4

// Entrada é um artigo renderizado no feed
type Entrada struct {
	Artigo  models.Artigo `json:"artigo"`
	Inicial bool          `json:"inicial"`
}

// Sessao é o estado em memória de uma visualização contínua. Os campos
// mutáveis só são alterados pelos métodos da própria sessão, sob lock,
// de modo que gatilhos de scroll duplicados nunca intercalam anexos.
type Sessao struct {
	mu sync.Mutex

	id                string
	leitorID          string
	estado            EstadoSessao
	entradas          []Entrada
	lote              []models.Artigo
	origem            models.OrigemRecomendacao
	carregados        int
	maxAutoCarregados int
	encerrada         bool
	criadaEm          time.Time
	atualizadaEm      time.Time
}

// NewSessao cria uma sessão para o artigo aberto pelo leitor,
// aguardando o lote único de recomendações
func NewSessao(id string, inicial models.Artigo, maxAutoCarregados int) *Sessao {
	if maxAutoCarregados <= 0 {
		maxAutoCarregados = MaxAutoCarregadosPadrao
	}
	agora := time.Now()
	return &Sessao{
		id:                id,
		estado:            EstadoAguardandoLote,
		entradas:          []Entrada{{Artigo: inicial, Inicial: true}},
		origem:            models.OrigemRecente,
		maxAutoCarregados: maxAutoCarregados,
		criadaEm:          agora,
		atualizadaEm:      agora,
	}
}

// ID retorna o identificador da sessão
func (s *Sessao) ID() string {
	return s.id
}

// Estado retorna o estado atual da sessão
func (s *Sessao) Estado() EstadoSessao {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estado
}

// DefinirLeitor associa a sessão a um leitor identificado
func (s *Sessao) DefinirLeitor(leitorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leitorID = leitorID
}

// LeitorID retorna o leitor associado, se houver
func (s *Sessao) LeitorID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leitorID
}

// ReceberLote entrega o lote de recomendações à sessão. Lotes que chegam
// após o encerramento da sessão são descartados sem efeito. Retorna se o
// lote foi aceito.
func (s *Sessao) ReceberLote(lote []models.Artigo, origem models.OrigemRecomendacao) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.encerrada || s.estado != EstadoAguardandoLote {
		return false
	}

	s.lote = lote
	s.origem = origem
	s.estado = EstadoPronto
	s.atualizadaEm = time.Now()
	return true
}

// FalhaLote registra a falha da busca de recomendações: a sessão fica
// pronta com lote vazio e o leitor simplesmente não recebe continuação
func (s *Sessao) FalhaLote() {
	s.ReceberLote(nil, models.OrigemRecente)
}

// Avancar anexa o próximo artigo do lote quando o gatilho de scroll
// dispara. Retorna a entrada anexada, ou nil quando não há mais nada a
// carregar (lote pendente, consumido ou teto atingido).
func (s *Sessao) Avancar() *Entrada {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.encerrada || s.estado != EstadoPronto {
		return nil
	}

	limite := len(s.lote)
	if s.maxAutoCarregados < limite {
		limite = s.maxAutoCarregados
	}

	if s.carregados >= limite {
		s.estado = EstadoEsgotado
		return nil
	}

	entrada := Entrada{Artigo: s.lote[s.carregados]}
	s.entradas = append(s.entradas, entrada)
	s.carregados++
	s.atualizadaEm = time.Now()

	if s.carregados >= limite {
		s.estado = EstadoEsgotado
	}

	return &entrada
}

// TemMais indica se ainda podem chegar artigos nesta sessão
func (s *Sessao) TemMais() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.estado {
	case EstadoAguardandoLote:
		return true
	case EstadoPronto:
		limite := len(s.lote)
		if s.maxAutoCarregados < limite {
			limite = s.maxAutoCarregados
		}
		return s.carregados < limite
	}
	return false
}

// Esgotada indica se a sessão atingiu o estado terminal
func (s *Sessao) Esgotada() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estado == EstadoEsgotado
}

// Encerrar marca a sessão como destruída (navegação para fora).
// Qualquer lote que chegue depois é descartado.
func (s *Sessao) Encerrar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.encerrada = true
	s.estado = EstadoEsgotado
}

// Encerrada indica se a sessão foi destruída
func (s *Sessao) Encerrada() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.encerrada
}

// Origem retorna a origem do lote de recomendações
func (s *Sessao) Origem() models.OrigemRecomendacao {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.origem
}

// Entradas retorna uma cópia da lista ordenada de artigos renderizados
func (s *Sessao) Entradas() []Entrada {
	s.mu.Lock()
	defer s.mu.Unlock()

	entradas := make([]Entrada, len(s.entradas))
	copy(entradas, s.entradas)
	return entradas
}

// AtualizadaEm retorna o instante da última mutação da sessão
func (s *Sessao) AtualizadaEm() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.atualizadaEm
}
