package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network defaults.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent is the User-Agent header sent when none is configured.
	DefaultUserAgent = "codeocean-go"
)

// Retry defaults, applied only when retries are explicitly enabled.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// API defaults.
const (
	// DefaultAPIVersion is the Code Ocean API version used when none is configured.
	DefaultAPIVersion = 1
)

// Credential defaults.
const (
	// EnvPrefix is the prefix of credential environment variables
	// (CODEOCEAN_DOMAIN, CODEOCEAN_TOKEN).
	EnvPrefix = "codeocean"

	// CredentialsDirName is the directory under the user home that holds the
	// default credentials file.
	CredentialsDirName = ".codeocean"

	// CredentialsFileName is the default credentials file name.
	CredentialsFileName = "credentials.json"

	// DefaultSecretName is the default AWS Secrets Manager secret name.
	DefaultSecretName = "codeocean-service-account"
)
