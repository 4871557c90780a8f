package hubspot

// ContactProperties holds the writable CRM contact fields for a create call.
// Empty optional fields are omitted from the request body so the remote
// record is created without them.
type ContactProperties struct {
	Email     string `json:"email"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
}

// DealProperties holds the writable fields for a deal create call. Amount is
// a string because the HubSpot properties API expects numeric properties
// serialized as strings.
type DealProperties struct {
	Name     string `json:"dealname"`
	Amount   string `json:"amount,omitempty"`
	Stage    string `json:"dealstage"`
	Pipeline string `json:"pipeline,omitempty"`
}

// Contact is the record shape HubSpot returns for contact reads and search
// hits. Property values are always strings on the wire.
type Contact struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

type propertiesEnvelope[T any] struct {
	Properties T `json:"properties"`
}

type searchFilter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchFilterGroup struct {
	Filters []searchFilter `json:"filters"`
}

type searchRequest struct {
	FilterGroups []searchFilterGroup `json:"filterGroups"`
	Properties   []string            `json:"properties"`
	Limit        int                 `json:"limit"`
}

type searchResponse struct {
	Total   int       `json:"total"`
	Results []Contact `json:"results"`
}
