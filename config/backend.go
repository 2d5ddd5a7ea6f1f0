package config

// BackendConfig locates the ToolRent backend REST API.
type BackendConfig struct {
	// BaseURL is the backend root. The default matches a local
	// development deployment.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8090"`
}
