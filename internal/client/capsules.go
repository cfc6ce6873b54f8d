package client

import (
	"context"
	"fmt"

	"github.com/AllenNeuralDynamics/codeocean-go/internal/http"
	"github.com/AllenNeuralDynamics/codeocean-go/pkg/codeocean"
)

// CapsulesClient implements codeocean.CapsulesClient.
type CapsulesClient struct {
	httpClient *http.Client
	basePath   string
}

// NewCapsulesClient creates a new capsules client.
func NewCapsulesClient(httpClient *http.Client, apiPath string) *CapsulesClient {
	return &CapsulesClient{
		httpClient: httpClient,
		basePath:   apiPath + "/capsules",
	}
}

// Get implements codeocean.CapsulesClient.Get.
func (c *CapsulesClient) Get(ctx context.Context, capsuleID string) (*codeocean.Response, error) {
	path := c.basePath + "/" + capsuleID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting capsule: %w", err)
	}

	return resp, nil
}

// ListComputations implements codeocean.CapsulesClient.ListComputations. It
// lists the runs of a single capsule.
func (c *CapsulesClient) ListComputations(ctx context.Context, capsuleID string) (*codeocean.Response, error) {
	path := c.basePath + "/" + capsuleID + "/computations"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing capsule computations: %w", err)
	}

	return resp, nil
}
