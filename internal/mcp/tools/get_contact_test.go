package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/roivaz/hubspot-mcp-bridge/internal/hubspot"
)

type fakeContactGetter struct {
	calls int
	id    string
	raw   json.RawMessage
	err   error
}

func (f *fakeContactGetter) GetContact(_ context.Context, id string) (json.RawMessage, error) {
	f.calls++
	f.id = id
	return f.raw, f.err
}

func TestGetContactMissingID(t *testing.T) {
	fake := &fakeContactGetter{}
	h := &GetContactHandler{Service: fake}

	res, err := h.ToolAdapter(context.Background(), callReq(map[string]any{}))
	mustBeToolError(t, res, err)
	if fake.calls != 0 {
		t.Fatalf("expected no service call, got %d", fake.calls)
	}
}

func TestGetContactReturnsRawRecord(t *testing.T) {
	raw := `{"id":"42","properties":{"email":"a@example.com","phone":"555-1234"}}`
	fake := &fakeContactGetter{raw: json.RawMessage(raw)}
	h := &GetContactHandler{Service: fake}

	res, err := h.ToolAdapter(context.Background(), callReq(map[string]any{"contact_id": "42"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.id != "42" {
		t.Fatalf("unexpected id forwarded: %q", fake.id)
	}
	if resultText(t, res) != raw {
		t.Fatalf("expected raw record passthrough, got %s", resultText(t, res))
	}
}

func TestGetContactNotFoundBecomesToolError(t *testing.T) {
	fake := &fakeContactGetter{err: &hubspot.Error{Kind: hubspot.KindNotFound, Status: 404, Message: "record not found"}}
	h := &GetContactHandler{Service: fake}

	res, err := h.ToolAdapter(context.Background(), callReq(map[string]any{"contact_id": "999"}))
	msg := mustBeToolError(t, res, err)
	if !strings.Contains(msg, "not_found") {
		t.Fatalf("expected not_found kind in message, got %q", msg)
	}
}
