package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/AllenNeuralDynamics/codeocean-go/internal/http"
	"github.com/AllenNeuralDynamics/codeocean-go/pkg/codeocean"
)

// DataAssetsClient implements codeocean.DataAssetsClient.
type DataAssetsClient struct {
	httpClient *http.Client
	basePath   string
}

// NewDataAssetsClient creates a new data assets client.
func NewDataAssetsClient(httpClient *http.Client, apiPath string) *DataAssetsClient {
	return &DataAssetsClient{
		httpClient: httpClient,
		basePath:   apiPath + "/data_assets",
	}
}

// Get implements codeocean.DataAssetsClient.Get.
func (c *DataAssetsClient) Get(ctx context.Context, dataAssetID string) (*codeocean.Response, error) {
	path := c.basePath + "/" + dataAssetID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting data asset: %w", err)
	}

	return resp, nil
}

// Create implements codeocean.DataAssetsClient.Create. It registers a data
// asset from an aws bucket/prefix, a gcp bucket/prefix, or a computation.
func (c *DataAssetsClient) Create(ctx context.Context, request *codeocean.CreateDataAssetRequest) (*codeocean.Response, error) {
	resp, err := c.httpClient.Post(ctx, c.basePath, request)
	if err != nil {
		return nil, fmt.Errorf("creating data asset: %w", err)
	}

	return resp, nil
}

// Update implements codeocean.DataAssetsClient.Update. Only the fields set in
// the request are sent.
func (c *DataAssetsClient) Update(ctx context.Context, dataAssetID string, request *codeocean.UpdateDataAssetRequest) (*codeocean.Response, error) {
	path := c.basePath + "/" + dataAssetID

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating data asset: %w", err)
	}

	return resp, nil
}

// Delete implements codeocean.DataAssetsClient.Delete.
func (c *DataAssetsClient) Delete(ctx context.Context, dataAssetID string) (*codeocean.Response, error) {
	path := c.basePath + "/" + dataAssetID

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting data asset: %w", err)
	}

	return resp, nil
}

// Archive implements codeocean.DataAssetsClient.Archive. Passing false
// unarchives the data asset.
func (c *DataAssetsClient) Archive(ctx context.Context, dataAssetID string, archive bool) (*codeocean.Response, error) {
	path := c.basePath + "/" + dataAssetID + "/archive"
	query := url.Values{"archive": []string{strconv.FormatBool(archive)}}

	resp, err := c.httpClient.Patch(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("archiving data asset: %w", err)
	}

	return resp, nil
}

// UpdatePermissions implements codeocean.DataAssetsClient.UpdatePermissions.
// Nil user or group lists are sent as empty lists; the platform treats the
// body as the full permission set.
func (c *DataAssetsClient) UpdatePermissions(ctx context.Context, dataAssetID string, request *codeocean.UpdatePermissionsRequest) (*codeocean.Response, error) {
	path := c.basePath + "/" + dataAssetID + "/permissions"

	body := codeocean.UpdatePermissionsRequest{
		Users:    request.Users,
		Groups:   request.Groups,
		Everyone: request.Everyone,
	}

	if body.Users == nil {
		body.Users = []codeocean.UserPermission{}
	}

	if body.Groups == nil {
		body.Groups = []codeocean.GroupPermission{}
	}

	resp, err := c.httpClient.Post(ctx, path, &body)
	if err != nil {
		return nil, fmt.Errorf("updating data asset permissions: %w", err)
	}

	return resp, nil
}

// List implements codeocean.DataAssetsClient.List.
func (c *DataAssetsClient) List(ctx context.Context, params *codeocean.SearchParams) (*codeocean.Response, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, c.basePath, query)
	if err != nil {
		return nil, fmt.Errorf("listing data assets: %w", err)
	}

	return resp, nil
}

// Search implements codeocean.DataAssetsClient.Search.
func (c *DataAssetsClient) Search(ctx context.Context, request *codeocean.SearchDataAssetsRequest) (*codeocean.Response, error) {
	path := c.basePath + "/search"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("searching data assets: %w", err)
	}

	return resp, nil
}
