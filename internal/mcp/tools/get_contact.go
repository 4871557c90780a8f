package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

type ContactGetter interface {
	GetContact(ctx context.Context, id string) (json.RawMessage, error)
}

type GetContactHandler struct {
	Service ContactGetter
}

func (h *GetContactHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(req.GetArguments(), "contact_id")
	if id == "" {
		return mcp.NewToolResultError("contact_id parameter is required"), nil
	}

	raw, err := h.Service.GetContact(ctx, id)
	if err != nil {
		return adapterResult(err)
	}
	return mcp.NewToolResultText(string(raw)), nil
}
