package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/roivaz/hubspot-mcp-bridge/internal/logging"
)

const (
	DefaultBaseURL = "https://api.hubapi.com"

	contactsPath       = "/crm/v3/objects/contacts"
	contactsSearchPath = "/crm/v3/objects/contacts/search"
	dealsPath          = "/crm/v3/objects/deals"

	defaultSearchLimit = 10
)

// searchProperties are the contact fields requested back from the search
// endpoint.
var searchProperties = []string{"email", "firstname", "lastname", "phone", "company"}

type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	Logger      logging.Logger
}

// Client wraps the HubSpot CRM REST API v3. Every operation performs exactly
// one outbound HTTP call; there is no retry, caching, or local record state.
type Client struct {
	baseURL  string
	http     *http.Client
	log      logging.Logger
	hasToken bool
}

// NewClient builds a Client with a bearer-token transport. A missing token
// does not fail construction; the first call will come back as an auth error
// from HubSpot.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	if cfg.AccessToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = timeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:  baseURL,
		http:     httpClient,
		log:      cfg.Logger,
		hasToken: cfg.AccessToken != "",
	}
}

// CreateContact creates a contact. Email is required; HubSpot uses it as the
// dedup key and rejects duplicates with a 409 surfaced as a validation error.
func (c *Client) CreateContact(ctx context.Context, props ContactProperties) (json.RawMessage, error) {
	if strings.TrimSpace(props.Email) == "" {
		return nil, validationError("email is required")
	}
	return c.do(ctx, http.MethodPost, contactsPath, propertiesEnvelope[ContactProperties]{Properties: props})
}

// SearchContacts runs a single-page search matching query as a token of the
// contact's email, first name or last name. An empty result set is a valid
// response, not an error.
func (c *Client) SearchContacts(ctx context.Context, query string, limit int) ([]Contact, error) {
	if strings.TrimSpace(query) == "" {
		return nil, validationError("query is required")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	// HubSpot ORs filter groups together, so one group per property gives
	// email-or-name matching.
	groups := make([]searchFilterGroup, 0, 3)
	for _, property := range []string{"email", "firstname", "lastname"} {
		groups = append(groups, searchFilterGroup{Filters: []searchFilter{{
			PropertyName: property,
			Operator:     "CONTAINS_TOKEN",
			Value:        query,
		}}})
	}

	body, err := c.do(ctx, http.MethodPost, contactsSearchPath, searchRequest{
		FilterGroups: groups,
		Properties:   searchProperties,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{Kind: KindUpstream, Message: fmt.Sprintf("decode search response: %v", err)}
	}
	if parsed.Results == nil {
		parsed.Results = []Contact{}
	}
	return parsed.Results, nil
}

// GetContact fetches one contact by its server-assigned identifier.
func (c *Client) GetContact(ctx context.Context, id string) (json.RawMessage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, validationError("contact_id is required")
	}
	return c.do(ctx, http.MethodGet, contactsPath+"/"+url.PathEscape(id), nil)
}

// UpdateContact patches the supplied properties onto an existing contact.
// Fields not present in props are left untouched by HubSpot.
func (c *Client) UpdateContact(ctx context.Context, id string, props map[string]string) (json.RawMessage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, validationError("contact_id is required")
	}
	if len(props) == 0 {
		return nil, validationError("properties is required")
	}
	return c.do(ctx, http.MethodPatch, contactsPath+"/"+url.PathEscape(id), propertiesEnvelope[map[string]string]{Properties: props})
}

// CreateDeal creates a deal. Name and stage are required; the stage value
// must belong to the target pipeline's stage enumeration or HubSpot rejects
// the call with a 400.
func (c *Client) CreateDeal(ctx context.Context, props DealProperties) (json.RawMessage, error) {
	if strings.TrimSpace(props.Name) == "" {
		return nil, validationError("dealname is required")
	}
	if strings.TrimSpace(props.Stage) == "" {
		return nil, validationError("dealstage is required")
	}
	return c.do(ctx, http.MethodPost, dealsPath, propertiesEnvelope[DealProperties]{Properties: props})
}

// do performs the single HTTP round trip behind every operation and maps the
// outcome onto the adapter error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	if !c.hasToken {
		return nil, &Error{Kind: KindAuth, Message: "HUBSPOT_ACCESS_TOKEN is not configured"}
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, validationError("encode request body: %v", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		annotated := c.annotateTransportError(err)
		c.log.Error(annotated, "hubspot request failed", "method", method, "path", path, "elapsed", time.Since(start).String())
		return nil, annotated
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("read response body: %v", err)}
	}

	if resp.StatusCode >= 400 {
		apiErr := classifyStatus(resp.StatusCode, strings.TrimSpace(string(body)))
		c.log.Error(apiErr, "hubspot API error", "method", method, "path", path, "status", resp.StatusCode)
		return nil, apiErr
	}

	c.log.Debug("hubspot request ok", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start).String())
	return body, nil
}

func (c *Client) annotateTransportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("request timed out after %s: %v", c.http.Timeout, err)}
	}
	return &Error{Kind: KindTransport, Message: err.Error()}
}
