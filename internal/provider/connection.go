package provider

import (
	"fmt"

	"trainctl/pkg/logging"
)

const connectionSubsystem = "ProviderConnection"

// Connection delivers the bound Provider to a consumer.
type Connection struct {
	consumer func(Provider)
}

// NewConnection returns a Connection that hands every connected Provider to consumer.
func NewConnection(consumer func(Provider)) *Connection {
	return &Connection{consumer: consumer}
}

// OnConnected is called by the binder once per successful bind. It panics if
// raw is not a *ServiceHandle.
func (c *Connection) OnConnected(id Identity, raw Handle) {
	logging.Info(connectionSubsystem, "Connected %s %s", id, describe(raw))

	handle, ok := raw.(*ServiceHandle)
	if !ok {
		panic(fmt.Sprintf("provider: bind to %s returned %T, want *provider.ServiceHandle", id, raw))
	}
	c.consumer(handle.Provider())
}

// OnDisconnected is called by the binder when the provider goes away.
func (c *Connection) OnDisconnected(id Identity) {
	logging.Info(connectionSubsystem, "Disconnected %s", id)
}

func describe(raw Handle) string {
	if raw == nil {
		return "<nil>"
	}
	return raw.Descriptor()
}
