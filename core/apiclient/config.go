package apiclient

import "time"

// Config holds the backend connection settings, loadable from the
// environment via core/config.
type Config struct {
	BaseURL string        `env:"CREDITDOST_API_URL" envDefault:"https://api.creditdost.com"`
	Timeout time.Duration `env:"CREDITDOST_API_TIMEOUT" envDefault:"30s"`
}
