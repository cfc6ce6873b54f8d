package codeocean

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrDomainRequired = errors.New("domain is required")
	ErrTokenRequired  = errors.New("API token is required")
)

// DataAssetsClient provides access to data asset operations.
type DataAssetsClient interface {
	Get(ctx context.Context, dataAssetID string) (*Response, error)
	Create(ctx context.Context, request *CreateDataAssetRequest) (*Response, error)
	Update(ctx context.Context, dataAssetID string, request *UpdateDataAssetRequest) (*Response, error)
	Delete(ctx context.Context, dataAssetID string) (*Response, error)
	Archive(ctx context.Context, dataAssetID string, archive bool) (*Response, error)
	UpdatePermissions(ctx context.Context, dataAssetID string, request *UpdatePermissionsRequest) (*Response, error)
	List(ctx context.Context, params *SearchParams) (*Response, error)
	Search(ctx context.Context, request *SearchDataAssetsRequest) (*Response, error)
}

// CapsulesClient provides access to capsule operations.
type CapsulesClient interface {
	Get(ctx context.Context, capsuleID string) (*Response, error)
	ListComputations(ctx context.Context, capsuleID string) (*Response, error)
}

// ComputationsClient provides access to capsule and pipeline run operations.
type ComputationsClient interface {
	Run(ctx context.Context, request *RunCapsuleRequest) (*Response, error)
	Get(ctx context.Context, computationID string) (*Response, error)
	List(ctx context.Context, params *ListComputationsParams) (*Response, error)
	ListResultItems(ctx context.Context, computationID string) (*Response, error)
	GetResultFileDownloadURL(ctx context.Context, computationID, resultPath string) (*Response, error)
}

type Client interface {
	DataAssets() DataAssetsClient
	Capsules() CapsulesClient
	Computations() ComputationsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a codeocean.Client.
//
// Domain and Token are required; everything else is optional. The client
// holds the configuration immutably after construction. Requests are
// dispatched exactly once unless RetryMax is set to a positive value, in
// which case transient failures (>=500, 429, connection errors) are retried
// with backoff.
type Config struct {
	// Domain: base URL of the Code Ocean deployment
	// (e.g., "https://acmecorp.codeocean.com"). coclient.New normalizes this
	// value by trimming a trailing slash and adding "https://" if no scheme
	// is present.
	Domain string

	// Token: API token presented as a Bearer credential on every request.
	Token string

	// APIVersion selects the API path prefix ("/api/v<version>"). Defaults to 1.
	APIVersion int

	// HTTPClient optionally overrides the underlying HTTP client, including
	// its timeout behavior.
	HTTPClient *http.Client

	// RetryMax: maximum number of retries for transient failures. The default
	// of 0 means every operation issues exactly one request.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
