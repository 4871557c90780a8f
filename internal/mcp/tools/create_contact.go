package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/roivaz/hubspot-mcp-bridge/internal/hubspot"
)

type ContactCreator interface {
	CreateContact(ctx context.Context, props hubspot.ContactProperties) (json.RawMessage, error)
}

type CreateContactHandler struct {
	Service ContactCreator
}

func (h *CreateContactHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	email := stringArg(args, "email")
	if email == "" {
		return mcp.NewToolResultError("email parameter is required"), nil
	}

	raw, err := h.Service.CreateContact(ctx, hubspot.ContactProperties{
		Email:     email,
		FirstName: stringArg(args, "firstname"),
		LastName:  stringArg(args, "lastname"),
		Phone:     stringArg(args, "phone"),
		Company:   stringArg(args, "company"),
	})
	if err != nil {
		return adapterResult(err)
	}

	response := struct {
		ID      string          `json:"id"`
		Email   string          `json:"email"`
		Contact json.RawMessage `json:"contact"`
	}{
		ID:      gjson.GetBytes(raw, "id").String(),
		Email:   email,
		Contact: raw,
	}
	return mcp.NewToolResultText(string(mustMarshal(response))), nil
}
