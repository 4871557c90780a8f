package config

const (
	KeyAccessToken = "hubspot_access_token"
	KeyBaseURL     = "hubspot_base_url"
	KeyLogLevel    = "log_level"
	KeyHost        = "host"
	KeyPort        = "port"
	KeyMaxRPS      = "max_requests_per_second"
	KeyHTTPTimeout = "http_timeout"
)
