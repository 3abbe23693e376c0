package binding

import (
	"context"
	"errors"

	"trainctl/internal/provider"
)

const subsystem = "Binding"

var (
	ErrUnknownProvider = errors.New("no provider registered for identity")
	ErrAlreadyBound    = errors.New("connection is already bound")
	ErrClosed          = errors.New("binder is closed")
)

// Connection receives bind events. provider.Connection implements it.
type Connection interface {
	OnConnected(id provider.Identity, h provider.Handle)
	OnDisconnected(id provider.Identity)
}

// Binder is the bind/unbind mechanism.
type Binder interface {
	// Bind starts an asynchronous connection to id. Errors only report
	// requests that could never succeed.
	Bind(ctx context.Context, id provider.Identity, conn Connection) error
	// Unbind releases conn. No callbacks reach conn afterwards: a callback
	// already running is waited for, so callbacks must not call Unbind.
	Unbind(conn Connection)
}

var (
	_ Connection = (*provider.Connection)(nil)
	_ Binder     = (*Local)(nil)
	_ Binder     = (*Process)(nil)
)
