package binding

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"trainctl/internal/provider"
	"trainctl/pkg/logging"
)

const (
	providerServerName = "trainctl-provider"
	providerVersion    = "1.0.0"

	toolRequestJourneys = "request_journeys"
	argFrom             = "from"
	argTo               = "to"
	argDatetime         = "datetime"
)

type providerServer struct {
	provider provider.Provider
}

// NewProviderServer exposes p as an MCP server with a single
// "request_journeys" tool returning the raw journeys document.
func NewProviderServer(p provider.Provider) *server.MCPServer {
	ps := &providerServer{provider: p}

	s := server.NewMCPServer(
		providerServerName,
		providerVersion,
		server.WithToolCapabilities(false),
	)
	s.AddTool(
		mcp.NewTool(toolRequestJourneys,
			mcp.WithDescription("Return the raw journeys document between two places"),
			mcp.WithString(argFrom,
				mcp.Required(),
				mcp.Description("Origin place id, e.g. admin:fr:35184"),
			),
			mcp.WithString(argTo,
				mcp.Required(),
				mcp.Description("Destination place id"),
			),
			mcp.WithString(argDatetime,
				mcp.Description("Earliest departure as yyyyMMddTHHmmss, defaults to now"),
			),
		),
		ps.handleRequestJourneys,
	)

	return s
}

// ServeProvider serves p over stdio until stdin closes or the process is signalled.
func ServeProvider(p provider.Provider) error {
	logging.Info(subsystem, "Serving %s over stdio", provider.ScheduleIdentity)
	return server.ServeStdio(NewProviderServer(p))
}

func (ps *providerServer) handleRequestJourneys(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	from, err := request.RequireString(argFrom)
	if err != nil {
		return mcp.NewToolResultError("from parameter is required"), nil
	}
	to, err := request.RequireString(argTo)
	if err != nil {
		return mcp.NewToolResultError("to parameter is required"), nil
	}

	q := provider.Query{From: from, To: to}
	if raw, ok := request.GetArguments()[argDatetime].(string); ok && raw != "" {
		at, err := provider.ParseQueryTime(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid datetime: %v", err)), nil
		}
		q.At = &at
	}

	document, err := ps.provider.FetchJourneys(ctx, q)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Journey request failed: %v", err)), nil
	}
	return mcp.NewToolResultText(document), nil
}
