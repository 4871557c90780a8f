package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"
)

type ContactUpdater interface {
	UpdateContact(ctx context.Context, id string, props map[string]string) (json.RawMessage, error)
}

type UpdateContactHandler struct {
	Service ContactUpdater
}

func (h *UpdateContactHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := stringArg(args, "contact_id")
	if id == "" {
		return mcp.NewToolResultError("contact_id parameter is required"), nil
	}
	rawProps, ok := args["properties"].(map[string]any)
	if !ok || len(rawProps) == 0 {
		return mcp.NewToolResultError("properties parameter is required and must be a non-empty object"), nil
	}

	props := make(map[string]string, len(rawProps))
	for key, value := range rawProps {
		props[key] = propertyString(value)
	}

	raw, err := h.Service.UpdateContact(ctx, id, props)
	if err != nil {
		return adapterResult(err)
	}

	updated := gjson.GetBytes(raw, "properties").Raw
	if updated == "" {
		updated = "{}"
	}
	response := struct {
		ID         string          `json:"id"`
		Properties json.RawMessage `json:"properties"`
	}{
		ID:         id,
		Properties: json.RawMessage(updated),
	}
	return mcp.NewToolResultText(string(mustMarshal(response))), nil
}
