package coclient

import (
	"strings"

	"github.com/AllenNeuralDynamics/codeocean-go/internal/client"
	"github.com/AllenNeuralDynamics/codeocean-go/pkg/codeocean"
	"github.com/AllenNeuralDynamics/codeocean-go/pkg/credentials"
)

// New creates a new Code Ocean API client from the given configuration.
func New(config *codeocean.Config) (codeocean.Client, error) {
	if config == nil {
		return nil, codeocean.ErrConfigRequired
	}

	if config.Domain == "" {
		return nil, codeocean.ErrDomainRequired
	}

	config.Domain = normalizeDomain(config.Domain)

	return client.New(config)
}

// NewWithToken creates a new client with a domain and API token.
func NewWithToken(domain, token string) (codeocean.Client, error) {
	return New(&codeocean.Config{
		Domain: domain,
		Token:  token,
	})
}

// NewFromCredentials creates a new client from a credentials object, typically
// loaded via the credentials package from the environment, a credentials
// file, or AWS Secrets Manager.
func NewFromCredentials(creds *credentials.Credentials) (codeocean.Client, error) {
	if creds == nil {
		return nil, codeocean.ErrConfigRequired
	}

	return New(&codeocean.Config{
		Domain: creds.Domain,
		Token:  creds.Token,
	})
}

// normalizeDomain trims a trailing slash and defaults the scheme to https.
func normalizeDomain(domain string) string {
	domain = strings.TrimSuffix(domain, "/")
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}

	return domain
}
