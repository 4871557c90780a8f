package tools

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/roivaz/hubspot-mcp-bridge/internal/hubspot"
)

type DealCreator interface {
	CreateDeal(ctx context.Context, props hubspot.DealProperties) (json.RawMessage, error)
}

type CreateDealHandler struct {
	Service DealCreator
}

func (h *CreateDealHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name := stringArg(args, "dealname")
	if name == "" {
		return mcp.NewToolResultError("dealname parameter is required"), nil
	}
	stage := stringArg(args, "dealstage")
	if stage == "" {
		return mcp.NewToolResultError("dealstage parameter is required"), nil
	}

	props := hubspot.DealProperties{
		Name:     name,
		Stage:    stage,
		Pipeline: stringArg(args, "pipeline"),
	}
	if amount, ok := args["amount"].(float64); ok {
		props.Amount = strconv.FormatFloat(amount, 'f', -1, 64)
	}

	raw, err := h.Service.CreateDeal(ctx, props)
	if err != nil {
		return adapterResult(err)
	}

	response := struct {
		ID   string          `json:"id"`
		Name string          `json:"dealname"`
		Deal json.RawMessage `json:"deal"`
	}{
		ID:   gjson.GetBytes(raw, "id").String(),
		Name: name,
		Deal: raw,
	}
	return mcp.NewToolResultText(string(mustMarshal(response))), nil
}
