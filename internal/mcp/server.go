package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"hubspot-crm-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using the mcp-go builder
	// pattern. Parameter names follow HubSpot property naming so agents can
	// pass CRM fields through unchanged.
	toolDefinitions := map[string]mcp.Tool{
		"create_contact": mcp.NewTool("create_contact",
			mcp.WithDescription("Create a new contact in HubSpot CRM. Email is required and used by HubSpot as the deduplication key."),
			mcp.WithString("email",
				mcp.Required(),
				mcp.Description("Contact email address (e.g., 'jane@example.com')"),
			),
			mcp.WithString("firstname",
				mcp.Description("Optional: contact first name"),
			),
			mcp.WithString("lastname",
				mcp.Description("Optional: contact last name"),
			),
			mcp.WithString("phone",
				mcp.Description("Optional: contact phone number"),
			),
			mcp.WithString("company",
				mcp.Description("Optional: company name"),
			),
		),
		"search_contacts": mcp.NewTool("search_contacts",
			mcp.WithDescription("Search HubSpot contacts whose email or name contains the query term. Returns a single page of matches with id, email and name."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search term matched against email, first name and last name"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results to return (default: 10)"),
			),
		),
		"get_contact": mcp.NewTool("get_contact",
			mcp.WithDescription("Retrieve full contact details from HubSpot by contact ID."),
			mcp.WithString("contact_id",
				mcp.Required(),
				mcp.Description("The HubSpot contact ID (server-assigned)"),
			),
		),
		"update_contact": mcp.NewTool("update_contact",
			mcp.WithDescription("Update properties on an existing HubSpot contact. Only the supplied properties are changed; all others are left untouched."),
			mcp.WithString("contact_id",
				mcp.Required(),
				mcp.Description("The HubSpot contact ID (server-assigned)"),
			),
			mcp.WithObject("properties",
				mcp.Required(),
				mcp.Description("Map of property names to new values (e.g., {\"phone\": \"555-1234\"})"),
			),
		),
		"create_deal": mcp.NewTool("create_deal",
			mcp.WithDescription("Create a new deal in HubSpot CRM. The stage value must belong to the target pipeline's stage enumeration."),
			mcp.WithString("dealname",
				mcp.Required(),
				mcp.Description("Deal name"),
			),
			mcp.WithNumber("amount",
				mcp.Description("Optional: deal amount"),
			),
			mcp.WithString("dealstage",
				mcp.Required(),
				mcp.Description("Pipeline stage identifier (e.g., 'appointmentscheduled')"),
			),
			mcp.WithString("pipeline",
				mcp.Description("Optional: pipeline identifier (defaults to the account's default pipeline)"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}
