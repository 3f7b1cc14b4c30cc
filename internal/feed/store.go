package feed

import (
	"container/list"
	"sync"
	"time"
)

// storeEntry representa uma sessão registrada no store
type storeEntry struct {
	id         string
	sessao     *Sessao
	expiration time.Time
}

// SessaoStore guarda as sessões ativas com TTL e descarte LRU,
// thread-safe. Sessões expiradas ou descartadas são encerradas, de modo
// que lotes atrasados destinados a elas sejam ignorados.
type SessaoStore struct {
	capacity int
	ttl      time.Duration
	mu       sync.Mutex
	store    map[string]*list.Element
	lruList  *list.List
}

// NewSessaoStore cria um store com a capacidade e o TTL informados
func NewSessaoStore(capacity int, ttl time.Duration) *SessaoStore {
	return &SessaoStore{
		capacity: capacity,
		ttl:      ttl,
		store:    make(map[string]*list.Element),
		lruList:  list.New(),
	}
}

// Get recupera uma sessão ativa; retorna nil se não existe ou expirou
func (st *SessaoStore) Get(id string) *Sessao {
	st.mu.Lock()
	defer st.mu.Unlock()

	element, found := st.store[id]
	if !found {
		return nil
	}

	entry := element.Value.(*storeEntry)
	if time.Now().After(entry.expiration) {
		st.removeElement(element)
		return nil
	}

	// Mover para o final da lista (mais recentemente usada)
	st.lruList.MoveToBack(element)
	return entry.sessao
}

// Put registra uma sessão. Se o store está cheio, a sessão menos
// recentemente usada é encerrada e descartada.
func (st *SessaoStore) Put(sessao *Sessao) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if element, found := st.store[sessao.ID()]; found {
		st.lruList.MoveToBack(element)
		entry := element.Value.(*storeEntry)
		entry.sessao = sessao
		entry.expiration = time.Now().Add(st.ttl)
		return
	}

	if st.lruList.Len() >= st.capacity {
		oldest := st.lruList.Front()
		if oldest != nil {
			st.removeElement(oldest)
		}
	}

	entry := &storeEntry{
		id:         sessao.ID(),
		sessao:     sessao,
		expiration: time.Now().Add(st.ttl),
	}
	st.store[sessao.ID()] = st.lruList.PushBack(entry)
}

// Remove encerra e descarta a sessão (navegação para fora)
func (st *SessaoStore) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if element, found := st.store[id]; found {
		st.removeElement(element)
	}
}

// Size retorna o número de sessões registradas
func (st *SessaoStore) Size() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.lruList.Len()
}

// removeElement remove a entrada da lista e do mapa e encerra a sessão
// (deve ser chamado com lock)
func (st *SessaoStore) removeElement(element *list.Element) {
	st.lruList.Remove(element)
	entry := element.Value.(*storeEntry)
	delete(st.store, entry.id)
	entry.sessao.Encerrar()
}

// CleanupExpired encerra e remove todas as sessões expiradas
func (st *SessaoStore) CleanupExpired() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	removed := 0

	var next *list.Element
	for element := st.lruList.Front(); element != nil; element = next {
		next = element.Next()
		entry := element.Value.(*storeEntry)

		if now.After(entry.expiration) {
			st.removeElement(element)
			removed++
		}
	}

	return removed
}

// StartCleanupRoutine inicia a rotina periódica de limpeza de sessões
func (st *SessaoStore) StartCleanupRoutine(interval time.Duration) *time.Ticker {
	ticker := time.NewTicker(interval)

	go func() {
		for range ticker.C {
			st.CleanupExpired()
		}
	}()

	return ticker
}
