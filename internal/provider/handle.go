package provider

import "fmt"

// Identity names a bindable provider.
type Identity struct {
	Package string
	Name    string
}

func (i Identity) String() string {
	return fmt.Sprintf("%s/%s", i.Package, i.Name)
}

// ScheduleIdentity is the identity the schedule provider is registered under.
var ScheduleIdentity = Identity{Package: "trainctl", Name: "ScheduleProvider"}

// Handle is the raw result of a completed bind.
type Handle interface {
	Descriptor() string
}

// ServiceHandle is the only Handle a Connection accepts.
type ServiceHandle struct {
	provider Provider
}

// NewServiceHandle wraps p so it can cross a bind.
func NewServiceHandle(p Provider) *ServiceHandle {
	return &ServiceHandle{provider: p}
}

// Descriptor implements Handle.
func (h *ServiceHandle) Descriptor() string {
	return "ScheduleProvider"
}

// Provider returns the wrapped provider.
func (h *ServiceHandle) Provider() Provider {
	return h.provider
}
