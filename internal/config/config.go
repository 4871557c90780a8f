package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyBaseURL, "https://api.hubapi.com")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyMaxRPS, 10)
	viper.SetDefault(KeyHTTPTimeout, "30s")
}

func AccessToken() string { return viper.GetString(KeyAccessToken) }
func BaseURL() string     { return viper.GetString(KeyBaseURL) }
func LogLevel() string    { return viper.GetString(KeyLogLevel) }
func Host() string        { return viper.GetString(KeyHost) }
func Port() int           { return viper.GetInt(KeyPort) }
func MaxRPS() int         { return viper.GetInt(KeyMaxRPS) }

// HTTPTimeout returns the per-request timeout for outbound HubSpot calls.
// An unparsable value falls back to 30s rather than failing startup.
func HTTPTimeout() time.Duration {
	d, err := time.ParseDuration(viper.GetString(KeyHTTPTimeout))
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
