package tools

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/hubspot-mcp-bridge/internal/hubspot"
)

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return strings.TrimSpace(v)
}

// propertyString renders an arbitrary JSON argument value the way HubSpot
// expects property values: always as a string.
func propertyString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return string(mustMarshal(v))
	}
}

// adapterResult translates adapter failures into tool results the agent host
// can relay verbatim. Anything that is not a *hubspot.Error propagates as a
// protocol-level error.
func adapterResult(err error) (*mcp.CallToolResult, error) {
	var apiErr *hubspot.Error
	if errors.As(err, &apiErr) {
		return mcp.NewToolResultError(apiErr.Error()), nil
	}
	return nil, err
}
