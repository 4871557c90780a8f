package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/hubspot-mcp-bridge/internal/hubspot"
)

type ContactSearcher interface {
	SearchContacts(ctx context.Context, query string, limit int) ([]hubspot.Contact, error)
}

type SearchContactsHandler struct {
	Service ContactSearcher
}

type contactSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *SearchContactsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := stringArg(args, "query")
	if query == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	limit := 10
	if raw, ok := args["limit"].(float64); ok && int(raw) > 0 {
		limit = int(raw)
	}

	contacts, err := h.Service.SearchContacts(ctx, query, limit)
	if err != nil {
		return adapterResult(err)
	}

	summaries := make([]contactSummary, 0, len(contacts))
	for _, c := range contacts {
		name := strings.TrimSpace(c.Properties["firstname"] + " " + c.Properties["lastname"])
		summaries = append(summaries, contactSummary{
			ID:    c.ID,
			Email: c.Properties["email"],
			Name:  name,
		})
	}

	response := struct {
		Query   string           `json:"query"`
		Results []contactSummary `json:"results"`
		Total   int              `json:"total_found"`
	}{Query: query, Results: summaries, Total: len(summaries)}

	return mcp.NewToolResultText(string(mustMarshal(response))), nil
}
