package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AllenNeuralDynamics/codeocean-go/internal/http"
	"github.com/AllenNeuralDynamics/codeocean-go/pkg/codeocean"
)

// ComputationsClient implements codeocean.ComputationsClient.
type ComputationsClient struct {
	httpClient *http.Client
	basePath   string
}

// NewComputationsClient creates a new computations client.
func NewComputationsClient(httpClient *http.Client, apiPath string) *ComputationsClient {
	return &ComputationsClient{
		httpClient: httpClient,
		basePath:   apiPath + "/computations",
	}
}

// Run implements codeocean.ComputationsClient.Run. It starts a capsule or
// pipeline run.
func (c *ComputationsClient) Run(ctx context.Context, request *codeocean.RunCapsuleRequest) (*codeocean.Response, error) {
	resp, err := c.httpClient.Post(ctx, c.basePath, request)
	if err != nil {
		return nil, fmt.Errorf("running capsule: %w", err)
	}

	return resp, nil
}

// Get implements codeocean.ComputationsClient.Get.
func (c *ComputationsClient) Get(ctx context.Context, computationID string) (*codeocean.Response, error) {
	path := c.basePath + "/" + computationID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting computation: %w", err)
	}

	return resp, nil
}

// List implements codeocean.ComputationsClient.List.
func (c *ComputationsClient) List(ctx context.Context, params *codeocean.ListComputationsParams) (*codeocean.Response, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, c.basePath, query)
	if err != nil {
		return nil, fmt.Errorf("listing computations: %w", err)
	}

	return resp, nil
}

// ListResultItems implements codeocean.ComputationsClient.ListResultItems.
func (c *ComputationsClient) ListResultItems(ctx context.Context, computationID string) (*codeocean.Response, error) {
	path := c.basePath + "/" + computationID + "/results"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing result items: %w", err)
	}

	return resp, nil
}

// GetResultFileDownloadURL implements
// codeocean.ComputationsClient.GetResultFileDownloadURL. resultPath is the
// path of the file under the results folder of the computation.
func (c *ComputationsClient) GetResultFileDownloadURL(ctx context.Context, computationID, resultPath string) (*codeocean.Response, error) {
	path := c.basePath + "/" + computationID + "/results/download_url"
	query := url.Values{"path": []string{resultPath}}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting result download url: %w", err)
	}

	return resp, nil
}
