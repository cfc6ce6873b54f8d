package client

import (
	"fmt"

	"github.com/AllenNeuralDynamics/codeocean-go/internal/constants"
	"github.com/AllenNeuralDynamics/codeocean-go/internal/http"
	"github.com/AllenNeuralDynamics/codeocean-go/pkg/codeocean"
)

// Client implements the codeocean.Client interface.
type Client struct {
	httpClient *http.Client
	domain     string
	apiPath    string

	// Resource clients
	dataAssets   codeocean.DataAssetsClient
	capsules     codeocean.CapsulesClient
	computations codeocean.ComputationsClient
}

// New creates a new Code Ocean API client.
func New(config *codeocean.Config) (*Client, error) {
	if config.Domain == "" {
		return nil, codeocean.ErrDomainRequired
	}

	if config.Token == "" {
		return nil, codeocean.ErrTokenRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.Domain, config.Token, httpOpts...)

	apiVersion := config.APIVersion
	if apiVersion == 0 {
		apiVersion = constants.DefaultAPIVersion
	}

	client := &Client{
		httpClient: httpClient,
		domain:     config.Domain,
		apiPath:    fmt.Sprintf("/api/v%d", apiVersion),
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *codeocean.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// DataAssets implements codeocean.Client.DataAssets.
func (c *Client) DataAssets() codeocean.DataAssetsClient {
	return c.dataAssets
}

// Capsules implements codeocean.Client.Capsules.
func (c *Client) Capsules() codeocean.CapsulesClient {
	return c.capsules
}

// Computations implements codeocean.Client.Computations.
func (c *Client) Computations() codeocean.ComputationsClient {
	return c.computations
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.dataAssets = NewDataAssetsClient(c.httpClient, c.apiPath)
	c.capsules = NewCapsulesClient(c.httpClient, c.apiPath)
	c.computations = NewComputationsClient(c.httpClient, c.apiPath)
}

// loggerAdapter adapts codeocean.Logger to http.Logger.
type loggerAdapter struct {
	logger codeocean.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
