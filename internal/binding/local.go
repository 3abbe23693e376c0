package binding

import (
	"context"
	"fmt"
	"sync"

	"trainctl/internal/provider"
	"trainctl/pkg/logging"
)

// BindFunc produces the handle returned to a new binding.
type BindFunc func() provider.Handle

// Local binds to providers running in the current process.
type Local struct {
	mu        sync.Mutex
	providers map[provider.Identity]BindFunc
	bound     map[Connection]provider.Identity
	queue     []func()
	closed    bool

	// delivering is held while a queued callback runs.
	delivering sync.Mutex

	signal chan struct{}
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewLocal creates a Local binder and starts its delivery goroutine.
func NewLocal() *Local {
	l := &Local{
		providers: make(map[provider.Identity]BindFunc),
		bound:     make(map[Connection]provider.Identity),
		signal:    make(chan struct{}, 1),
		done:      make(chan struct{}),
	}

	l.wg.Add(1)
	go l.deliver()

	return l
}

// Register makes id bindable.
func (l *Local) Register(id provider.Identity, fn BindFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.providers[id] = fn
}

// Bind implements Binder.
func (l *Local) Bind(ctx context.Context, id provider.Identity, conn Connection) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	fn, ok := l.providers[id]
	if !ok {
		l.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownProvider, id)
	}
	if _, exists := l.bound[conn]; exists {
		l.mu.Unlock()
		return ErrAlreadyBound
	}
	l.bound[conn] = id
	l.mu.Unlock()

	logging.Info(subsystem, "Bind %s", id)
	l.enqueue(func() {
		if !l.isBound(conn, id) {
			return
		}
		conn.OnConnected(id, fn())
	})
	return nil
}

// Unbind implements Binder.
func (l *Local) Unbind(conn Connection) {
	l.mu.Lock()
	id, ok := l.bound[conn]
	delete(l.bound, conn)
	l.mu.Unlock()

	if !ok {
		return
	}
	// A callback already past its isBound check finishes before Unbind returns.
	l.delivering.Lock()
	l.delivering.Unlock()
	logging.Info(subsystem, "Unbind %s", id)
}

// Disconnect reports the loss of id to every connection bound to it. The
// bindings stay in place and Reconnect delivers a fresh handle to them.
func (l *Local) Disconnect(id provider.Identity) {
	for _, conn := range l.connectionsFor(id) {
		conn := conn
		l.enqueue(func() {
			if l.isBound(conn, id) {
				conn.OnDisconnected(id)
			}
		})
	}
}

// Reconnect delivers a new handle for id to every connection bound to it.
func (l *Local) Reconnect(id provider.Identity) {
	l.mu.Lock()
	fn, ok := l.providers[id]
	l.mu.Unlock()
	if !ok {
		return
	}

	for _, conn := range l.connectionsFor(id) {
		conn := conn
		l.enqueue(func() {
			if l.isBound(conn, id) {
				conn.OnConnected(id, fn())
			}
		})
	}
}

// Close stops the delivery goroutine. Pending callbacks are dropped.
func (l *Local) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.queue = nil
	l.mu.Unlock()

	close(l.done)
	l.wg.Wait()
}

func (l *Local) isBound(conn Connection, id provider.Identity) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	boundID, ok := l.bound[conn]
	return ok && boundID == id
}

func (l *Local) connectionsFor(id provider.Identity) []Connection {
	l.mu.Lock()
	defer l.mu.Unlock()

	var conns []Connection
	for conn, boundID := range l.bound {
		if boundID == id {
			conns = append(conns, conn)
		}
	}
	return conns
}

func (l *Local) enqueue(fn func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.signal <- struct{}{}:
	default:
	}
}

func (l *Local) deliver() {
	defer l.wg.Done()

	for {
		select {
		case <-l.done:
			return
		case <-l.signal:
		}

		for {
			l.mu.Lock()
			if l.closed || len(l.queue) == 0 {
				l.mu.Unlock()
				break
			}
			next := l.queue[0]
			l.queue = l.queue[1:]
			l.mu.Unlock()

			l.delivering.Lock()
			next()
			l.delivering.Unlock()
		}
	}
}
