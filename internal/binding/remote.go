package binding

import (
	"context"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"trainctl/internal/provider"
)

// ErrRemoteProvider wraps tool errors reported by the provider process.
var ErrRemoteProvider = errors.New("provider process reported an error")

// ToolCaller is the part of an MCP client RemoteProvider needs.
type ToolCaller interface {
	CallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// RemoteProvider forwards journey queries to a provider process.
type RemoteProvider struct {
	caller ToolCaller
}

// NewRemoteProvider returns a Provider backed by caller.
func NewRemoteProvider(caller ToolCaller) *RemoteProvider {
	return &RemoteProvider{caller: caller}
}

// FetchJourneys implements provider.Provider.
func (r *RemoteProvider) FetchJourneys(ctx context.Context, q provider.Query) (string, error) {
	args := map[string]interface{}{
		argFrom: q.From,
		argTo:   q.To,
	}
	if q.At != nil {
		args[argDatetime] = provider.FormatQueryTime(*q.At)
	}

	request := mcp.CallToolRequest{}
	request.Params.Name = toolRequestJourneys
	request.Params.Arguments = args

	result, err := r.caller.CallTool(ctx, request)
	if err != nil {
		return "", err
	}

	text := resultText(result)
	if result.IsError {
		return "", &remoteError{message: text}
	}
	return text, nil
}

func resultText(result *mcp.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, textContent.Text)
		}
	}
	return strings.Join(parts, "\n")
}

type remoteError struct {
	message string
}

func (e *remoteError) Error() string {
	return ErrRemoteProvider.Error() + ": " + e.message
}

func (e *remoteError) Unwrap() error {
	return ErrRemoteProvider
}
