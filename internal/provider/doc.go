// Package provider holds the schedule provider and the connection adapter used
// to reach it.
//
// A Provider answers journey queries with the raw journeys document. The HTTP
// implementation, Service, talks to the SNCF navitia API. Callers rarely hold
// a Service directly: they bind to it through a binding.Binder and receive it
// through a Connection.
//
// # Connection
//
// Connection is the receiving side of a bind. The binder calls OnConnected
// with a raw Handle once the bind completes; the Connection unwraps it into a
// Provider and passes it to the consumer given to NewConnection. A Handle of
// any type other than *ServiceHandle is a wiring bug and panics.
//
// OnDisconnected only logs. Consumers that care about provider loss must track
// it themselves.
//
// Callbacks arrive on the binder's delivery goroutine, never on the caller's.
// Anything that touches UI state has to be posted back to the UI goroutine.
package provider
