package viewport

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// IntervaloQuadroPadrao aproxima um quadro de animação a 60 fps
const IntervaloQuadroPadrao = 16 * time.Millisecond

// FonteAmostra produz a geometria atual da página
type FonteAmostra func() Amostra

// Amostrador reavalia o artigo atual no máximo uma vez por intervalo.
// Eventos de scroll apenas marcam a amostra como pendente; leituras
// intermediárias entre dois quadros são descartadas, pois só a posição
// mais recente importa.
type Amostrador struct {
	intervalo time.Duration
	fonte     FonteAmostra
	aoMudar   func(slug string)

	pendente atomic.Bool

	mu     sync.Mutex
	atual  string
	cancel context.CancelFunc
}

// NewAmostrador cria um amostrador sobre a fonte de geometria informada.
// aoMudar é chamado a cada troca de artigo atual.
func NewAmostrador(intervalo time.Duration, fonte FonteAmostra, aoMudar func(slug string)) *Amostrador {
	if intervalo <= 0 {
		intervalo = IntervaloQuadroPadrao
	}
	return &Amostrador{
		intervalo: intervalo,
		fonte:     fonte,
		aoMudar:   aoMudar,
	}
}

// Notificar registra que houve scroll desde o último quadro
func (a *Amostrador) Notificar() {
	a.pendente.Store(true)
}

// Atual retorna o slug do artigo atualmente selecionado
func (a *Amostrador) Atual() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.atual
}

// Iniciar começa o laço de amostragem até o contexto ser cancelado
func (a *Amostrador) Iniciar(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	go func() {
		ticker := time.NewTicker(a.intervalo)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.amostrar()
			}
		}
	}()
}

// Parar interrompe o laço de amostragem
func (a *Amostrador) Parar() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// amostrar reavalia a seleção se houve scroll desde o último quadro
func (a *Amostrador) amostrar() {
	if !a.pendente.Swap(false) {
		return
	}

	amostra := a.fonte()

	a.mu.Lock()
	anterior := a.atual
	selecionado := SelecionarAtual(amostra, anterior)
	a.atual = selecionado
	a.mu.Unlock()

	if selecionado != anterior && a.aoMudar != nil {
		a.aoMudar(selecionado)
	}
}
