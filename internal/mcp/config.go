package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/hubspot-mcp-bridge/internal/config"
	"github.com/roivaz/hubspot-mcp-bridge/internal/hubspot"
	"github.com/roivaz/hubspot-mcp-bridge/internal/logging"
	"github.com/roivaz/hubspot-mcp-bridge/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.ForLevel(config.LogLevel())
	log := logging.New(baseLogger.WithName("mcp"))

	client := hubspot.NewClient(hubspot.Config{
		BaseURL:     config.BaseURL(),
		AccessToken: config.AccessToken(),
		Timeout:     config.HTTPTimeout(),
		Logger:      logging.New(baseLogger.WithName("hubspot")),
	})

	if config.AccessToken() == "" {
		log.Info("HUBSPOT_ACCESS_TOKEN is not set, tool calls will fail until it is configured")
	}
	log.Info("hubspot client configured",
		"base_url", config.BaseURL(),
		"timeout", config.HTTPTimeout().String(),
		"max_requests_per_second", config.MaxRPS(),
	)

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"create_contact":  &tools.CreateContactHandler{Service: client},
			"search_contacts": &tools.SearchContactsHandler{Service: client},
			"get_contact":     &tools.GetContactHandler{Service: client},
			"update_contact":  &tools.UpdateContactHandler{Service: client},
			"create_deal":     &tools.CreateDealHandler{Service: client},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
