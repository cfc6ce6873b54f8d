// Package credentials loads Code Ocean credentials from explicit values,
// environment variables, a local credentials file, or AWS Secrets Manager.
//
// Sources are tried in this order by Load: CODEOCEAN_DOMAIN/CODEOCEAN_TOKEN
// environment variables, then the default credentials file
// (~/.codeocean/credentials.json). The client itself never reads credentials
// implicitly; callers load them here and pass them to coclient.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/AllenNeuralDynamics/codeocean-go/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrDomainNotSet = errors.New("code ocean domain is not set")
	ErrTokenNotSet  = errors.New("code ocean token is not set")
)

// Credentials holds the domain and API token of a Code Ocean deployment.
type Credentials struct {
	Domain string `json:"domain" mapstructure:"domain"`
	Token  string `json:"token"  mapstructure:"token"`
}

// DefaultFilePath returns the default credentials file location,
// ~/.codeocean/credentials.json.
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, constants.CredentialsDirName, constants.CredentialsFileName), nil
}

// Load resolves credentials from the environment and the default credentials
// file, with environment variables taking precedence.
func Load() (*Credentials, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	_ = v.BindEnv("domain")
	_ = v.BindEnv("token")

	defaultPath, err := DefaultFilePath()
	if err == nil {
		if _, statErr := os.Stat(defaultPath); statErr == nil {
			v.SetConfigFile(defaultPath)
			v.SetConfigType("json")

			err = v.ReadInConfig()
			if err != nil {
				return nil, fmt.Errorf("reading credentials file: %w", err)
			}
		}
	}

	return fromViper(v)
}

// LoadFile resolves credentials from an explicit credentials file. The file
// must exist; environment variables still take precedence over its contents.
func LoadFile(path string) (*Credentials, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	_ = v.BindEnv("domain")
	_ = v.BindEnv("token")

	v.SetConfigFile(path)
	v.SetConfigType("json")

	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("reading credentials file %s: %w", path, err)
	}

	return fromViper(v)
}

// Save writes the credentials to the given path as JSON, creating parent
// directories as needed. The file is created with owner-only permissions.
func (c *Credentials) Save(path string) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}

	contents := fmt.Sprintf("{\n    \"domain\": %q,\n    \"token\": %q\n}\n", c.Domain, c.Token)

	err = os.WriteFile(path, []byte(contents), constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}

	return nil
}

// Validate checks that both domain and token are present.
func (c *Credentials) Validate() error {
	if c.Domain == "" {
		return ErrDomainNotSet
	}

	if c.Token == "" {
		return ErrTokenNotSet
	}

	return nil
}

func fromViper(v *viper.Viper) (*Credentials, error) {
	creds := &Credentials{
		Domain: strings.TrimSuffix(v.GetString("domain"), "/"),
		Token:  v.GetString("token"),
	}

	err := creds.Validate()
	if err != nil {
		return nil, err
	}

	return creds, nil
}
