package binding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"trainctl/internal/provider"
	"trainctl/pkg/logging"
)

const defaultPingInterval = 30 * time.Second

// Session is the MCP client surface Process drives. *client.Client satisfies it.
type Session interface {
	ToolCaller
	Initialize(ctx context.Context, request mcp.InitializeRequest) (*mcp.InitializeResult, error)
	Ping(ctx context.Context) error
	Close() error
}

// DialFunc opens a session to a freshly started provider process.
type DialFunc func(ctx context.Context) (Session, error)

// ProcessConfig configures the provider process.
type ProcessConfig struct {
	// Command starts the provider, e.g. ["/usr/local/bin/trainctl", "provider"].
	Command      []string
	Env          []string
	PingInterval time.Duration
}

// Process binds to a provider running in a child process.
type Process struct {
	dial         DialFunc
	pingInterval time.Duration

	mu       sync.Mutex
	sessions map[Connection]*processSession
}

type processSession struct {
	// delivering is held around every callback to conn.
	delivering sync.Mutex

	cancel  context.CancelFunc
	session Session
	unbound bool
}

// NewProcess returns a Process binder that starts cfg.Command over stdio.
func NewProcess(cfg ProcessConfig) (*Process, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("provider command is empty")
	}

	command := cfg.Command
	env := cfg.Env
	dial := func(ctx context.Context) (Session, error) {
		c, err := client.NewStdioMCPClient(command[0], env, command[1:]...)
		if err != nil {
			return nil, fmt.Errorf("failed to start provider process: %w", err)
		}
		return c, nil
	}
	return NewProcessWithDialer(dial, cfg.PingInterval), nil
}

// NewProcessWithDialer returns a Process binder using dial to reach the provider.
func NewProcessWithDialer(dial DialFunc, pingInterval time.Duration) *Process {
	if pingInterval <= 0 {
		pingInterval = defaultPingInterval
	}
	return &Process{
		dial:         dial,
		pingInterval: pingInterval,
		sessions:     make(map[Connection]*processSession),
	}
}

// Bind implements Binder.
func (p *Process) Bind(ctx context.Context, id provider.Identity, conn Connection) error {
	if id != provider.ScheduleIdentity {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, id)
	}

	p.mu.Lock()
	if _, exists := p.sessions[conn]; exists {
		p.mu.Unlock()
		return ErrAlreadyBound
	}
	sessionCtx, cancel := context.WithCancel(ctx)
	ps := &processSession{cancel: cancel}
	p.sessions[conn] = ps
	p.mu.Unlock()

	logging.Info(subsystem, "Bind %s (provider process)", id)
	go p.run(sessionCtx, id, conn, ps)
	return nil
}

// Unbind implements Binder. The provider process is stopped.
func (p *Process) Unbind(conn Connection) {
	p.mu.Lock()
	ps, ok := p.sessions[conn]
	delete(p.sessions, conn)
	var session Session
	if ok {
		ps.unbound = true
		session = ps.session
	}
	p.mu.Unlock()

	if !ok {
		return
	}
	// Wait out a callback that passed its unbound check before we got here.
	ps.delivering.Lock()
	ps.delivering.Unlock()

	ps.cancel()
	if session != nil {
		if err := session.Close(); err != nil {
			logging.Warn(subsystem, "Closing provider session: %v", err)
		}
	}
	logging.Info(subsystem, "Unbind %s (provider process)", provider.ScheduleIdentity)
}

func (p *Process) run(ctx context.Context, id provider.Identity, conn Connection, ps *processSession) {
	session, err := p.dial(ctx)
	if err != nil {
		logging.Error(subsystem, err, "Bind %s failed", id)
		return
	}

	if _, err := session.Initialize(ctx, initializeRequest()); err != nil {
		logging.Error(subsystem, err, "Provider handshake for %s failed", id)
		_ = session.Close()
		return
	}

	p.mu.Lock()
	if ps.unbound {
		p.mu.Unlock()
		_ = session.Close()
		return
	}
	ps.session = session
	p.mu.Unlock()

	handle := provider.NewServiceHandle(NewRemoteProvider(session))
	if !p.notify(ps, func() { conn.OnConnected(id, handle) }) {
		return
	}

	ticker := time.NewTicker(p.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := session.Ping(ctx); err != nil {
				if ctx.Err() != nil || p.isUnbound(ps) {
					return
				}
				logging.Warn(subsystem, "Provider %s stopped answering: %v", id, err)
				p.notify(ps, func() { conn.OnDisconnected(id) })
				return
			}
		}
	}
}

// notify runs fn unless the session has been unbound. Unbind blocks until a
// running fn returns, so fn must not call Unbind itself.
func (p *Process) notify(ps *processSession, fn func()) bool {
	ps.delivering.Lock()
	defer ps.delivering.Unlock()
	if p.isUnbound(ps) {
		return false
	}
	fn()
	return true
}

func (p *Process) isUnbound(ps *processSession) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ps.unbound
}

func initializeRequest() mcp.InitializeRequest {
	request := mcp.InitializeRequest{}
	request.Params.ProtocolVersion = "2024-11-05"
	request.Params.ClientInfo = mcp.Implementation{
		Name:    "trainctl-tile",
		Version: providerVersion,
	}
	request.Params.Capabilities = mcp.ClientCapabilities{}
	return request
}
