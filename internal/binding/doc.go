// Package binding connects clients to the schedule provider.
//
// A Binder takes a provider identity and a Connection, and later calls the
// Connection's OnConnected with a raw provider.Handle once the provider is
// reachable. Bind never blocks on the provider itself; a bind that cannot be
// answered simply never calls OnConnected.
//
// Two binders exist:
//
//   - Local runs providers inside the current process. Providers are
//     registered with a BindFunc and callbacks are delivered, in order, on a
//     single delivery goroutine owned by the binder.
//   - Process starts "trainctl provider" as a child process and talks to it
//     over MCP on stdio. The handle it delivers wraps a RemoteProvider that
//     forwards journey queries as "request_journeys" tool calls. A failed
//     liveness ping is reported through OnDisconnected.
//
// The provider side of Process lives in NewProviderServer, which exposes any
// provider.Provider as an MCP server.
//
// Unbind stops all further callbacks for a Connection. It does not call
// OnDisconnected.
package binding
