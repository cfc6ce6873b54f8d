package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/AllenNeuralDynamics/codeocean-go/internal/constants"
)

// DefaultSecretName is the conventional Secrets Manager secret holding the
// Code Ocean service account credentials.
const DefaultSecretName = constants.DefaultSecretName

// secretsManagerAPI is the subset of the Secrets Manager client used here.
type secretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// secretPayload accepts both field-name conventions found in deployed
// secrets: {"domain","token"} and {"api_domain","access_token"}.
type secretPayload struct {
	Domain      string `json:"domain"`
	Token       string `json:"token"`
	APIDomain   string `json:"api_domain"`
	AccessToken string `json:"access_token"`
}

// LoadFromSecretsManager retrieves credentials from AWS Secrets Manager using
// the default AWS configuration (environment, shared config, instance role).
func LoadFromSecretsManager(ctx context.Context, secretName string) (*Credentials, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return loadFromSecretsAPI(ctx, secretsmanager.NewFromConfig(cfg), secretName)
}

func loadFromSecretsAPI(ctx context.Context, api secretsManagerAPI, secretName string) (*Credentials, error) {
	if secretName == "" {
		secretName = DefaultSecretName
	}

	out, err := api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("retrieving secret %s: %w", secretName, err)
	}

	var payload secretPayload

	err = json.Unmarshal([]byte(aws.ToString(out.SecretString)), &payload)
	if err != nil {
		return nil, fmt.Errorf("parsing secret %s: %w", secretName, err)
	}

	creds := &Credentials{
		Domain: payload.Domain,
		Token:  payload.Token,
	}

	if creds.Domain == "" {
		creds.Domain = payload.APIDomain
	}

	if creds.Token == "" {
		creds.Token = payload.AccessToken
	}

	creds.Domain = strings.TrimSuffix(creds.Domain, "/")

	err = creds.Validate()
	if err != nil {
		return nil, fmt.Errorf("secret %s: %w", secretName, err)
	}

	return creds, nil
}
