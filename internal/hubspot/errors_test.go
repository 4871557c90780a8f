package hubspot

import (
	"fmt"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		status int
		want   Kind
	}{
		{401, KindAuth},
		{404, KindNotFound},
		{429, KindRateLimit},
		{400, KindValidation},
		{409, KindValidation},
		{500, KindUpstream},
		{503, KindUpstream},
	}
	for _, tc := range cases {
		got := classifyStatus(tc.status, "body")
		if got.Kind != tc.want {
			t.Fatalf("status %d classified as %s, want %s", tc.status, got.Kind, tc.want)
		}
		if got.Status != tc.status {
			t.Fatalf("status %d not preserved, got %d", tc.status, got.Status)
		}
	}
}

func TestClassifyStatusKeepsBodyVerbatim(t *testing.T) {
	body := `{"message":"Property values were not valid","category":"VALIDATION_ERROR"}`
	err := classifyStatus(400, body)
	if err.Body != body {
		t.Fatalf("body not preserved verbatim: %q", err.Body)
	}
	if err.Message != body {
		t.Fatalf("4xx message should surface remote body, got %q", err.Message)
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	base := &Error{Kind: KindRateLimit, Status: 429, Message: "rate limited"}
	wrapped := fmt.Errorf("call hubspot: %w", base)
	if !IsKind(wrapped, KindRateLimit) {
		t.Fatalf("expected wrapped error to match KindRateLimit")
	}
	if IsKind(wrapped, KindAuth) {
		t.Fatalf("unexpected match for KindAuth")
	}
	if IsKind(fmt.Errorf("plain"), KindRateLimit) {
		t.Fatalf("plain error should not match any kind")
	}
}

func TestErrorStringIncludesStatus(t *testing.T) {
	err := &Error{Kind: KindUpstream, Status: 502, Message: "hubspot API error"}
	want := "hubspot upstream (HTTP 502): hubspot API error"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
