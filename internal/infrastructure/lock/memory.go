package lock

import (
	"context"
	"sync"

	"github.com/jhoicas/stocktrack-api/internal/application/purchasing"
)

var _ purchasing.OrderLocker = (*MemoryLocker)(nil)

// MemoryLocker serializa operaciones por orden dentro de un solo proceso.
// Cada clave usa un canal con capacidad 1 como mutex, de modo que un caller
// encolado puede abandonar la espera si su contexto se cancela. Para
// despliegues de una instancia y para tests; con varias instancias usar
// RedisLocker.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{} // capacidad 1: quien logra enviar posee el lock
	refs int
}

// NewMemoryLocker construye el locker en memoria.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*entry)}
}

// Acquire bloquea hasta obtener el lock de la orden o hasta que ctx se
// cancele. La entrada se libera del mapa cuando nadie la espera, para no
// crecer sin límite.
func (l *MemoryLocker) Acquire(ctx context.Context, orderID string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	e, ok := l.locks[orderID]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.locks[orderID] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(orderID, e)
		return nil, ctx.Err()
	}
	return func() {
		<-e.ch
		l.unref(orderID, e)
	}, nil
}

func (l *MemoryLocker) unref(orderID string, e *entry) {
	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, orderID)
	}
	l.mu.Unlock()
}
