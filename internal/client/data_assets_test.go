package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/AllenNeuralDynamics/codeocean-go/internal/http"
	"github.com/AllenNeuralDynamics/codeocean-go/pkg/codeocean"
)

func TestDataAssetsClient_Get(t *testing.T) {
	t.Parallel()

	dataAssetID := uuid.NewString()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/data_assets/"+dataAssetID, r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		asset := codeocean.DataAsset{
			ID:    dataAssetID,
			Name:  "ecephys_625463_2022-10-06",
			Type:  codeocean.DataAssetTypeDataset,
			State: codeocean.DataAssetStateReady,
			Tags:  []string{"ecephys", "raw"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(asset)
	}))
	defer server.Close()

	dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

	resp, err := dataAssets.Get(context.Background(), dataAssetID)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())

	var asset codeocean.DataAsset

	require.NoError(t, resp.JSON(&asset))
	assert.Equal(t, dataAssetID, asset.ID)
	assert.Equal(t, "ecephys_625463_2022-10-06", asset.Name)
	assert.Equal(t, codeocean.DataAssetStateReady, asset.State)
}

func TestDataAssetsClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "data asset not found"})
	}))
	defer server.Close()

	dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

	// A 404 is an ordinary response, not an error.
	resp, err := dataAssets.Get(context.Background(), "37a93748-ce90-4980-913b-2de0908d5212")
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
}

func TestDataAssetsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/data_assets", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ecephys_625463_2022-10-06", body["name"])
		assert.Equal(t, "ecephys", body["mount"])

		source, ok := body["source"].(map[string]interface{})
		require.True(t, ok)
		aws, ok := source["aws"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "aind-test-bucket", aws["bucket"])
		assert.Equal(t, "ecephys_625463_2022-10-06", aws["prefix"])
		assert.Equal(t, true, aws["keep_on_external_storage"])

		// Unset optional fields stay out of the body entirely.
		assert.NotContains(t, body, "custom_metadata")
		assert.NotContains(t, body, "description")
		assert.NotContains(t, body, "target")
		assert.NotContains(t, body, "viewable_by_everyone")

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(codeocean.DataAsset{
			ID:    uuid.NewString(),
			Name:  "ecephys_625463_2022-10-06",
			State: codeocean.DataAssetStateDraft,
		})
	}))
	defer server.Close()

	dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

	resp, err := dataAssets.Create(context.Background(), &codeocean.CreateDataAssetRequest{
		Name:  "ecephys_625463_2022-10-06",
		Tags:  []string{"ecephys", "raw"},
		Mount: "ecephys",
		Source: &codeocean.Source{
			AWS: &codeocean.AWSSource{
				Bucket:                "aind-test-bucket",
				Prefix:                "ecephys_625463_2022-10-06",
				KeepOnExternalStorage: codeocean.Bool(true),
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestDataAssetsClient_Create_FromComputation(t *testing.T) {
	t.Parallel()

	computationID := uuid.NewString()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		source, ok := body["source"].(map[string]interface{})
		require.True(t, ok)
		computation, ok := source["computation"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, computationID, computation["id"])
		assert.NotContains(t, source, "aws")
		assert.NotContains(t, source, "gcp")

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

	resp, err := dataAssets.Create(context.Background(), &codeocean.CreateDataAssetRequest{
		Name:  "sorted-results",
		Tags:  []string{"derived"},
		Mount: "sorted",
		Source: &codeocean.Source{
			Computation: &codeocean.ComputationSource{ID: computationID},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestDataAssetsClient_Update(t *testing.T) {
	t.Parallel()

	dataAssetID := uuid.NewString()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/data_assets/"+dataAssetID, r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "renamed-asset", body["name"])
		assert.NotContains(t, body, "tags")
		assert.NotContains(t, body, "mount")

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

	resp, err := dataAssets.Update(context.Background(), dataAssetID, &codeocean.UpdateDataAssetRequest{
		Name: "renamed-asset",
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestDataAssetsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/data_assets/id123", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

	resp, err := dataAssets.Delete(context.Background(), "id123")
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestDataAssetsClient_Archive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		archive bool
		want    string
	}{
		{name: "archive", archive: true, want: "true"},
		{name: "unarchive", archive: false, want: "false"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			dataAssetID := uuid.NewString()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/data_assets/"+dataAssetID+"/archive", r.URL.Path)
				assert.Equal(t, "PATCH", r.Method)
				assert.Equal(t, testCase.want, r.URL.Query().Get("archive"))
				w.WriteHeader(http.StatusNoContent)
			}))
			defer server.Close()

			dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

			resp, err := dataAssets.Archive(context.Background(), dataAssetID, testCase.archive)
			require.NoError(t, err)
			assert.Equal(t, 204, resp.StatusCode)
		})
	}
}

func TestDataAssetsClient_UpdatePermissions(t *testing.T) {
	t.Parallel()

	dataAssetID := uuid.NewString()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/data_assets/"+dataAssetID+"/permissions", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		users, ok := body["users"].([]interface{})
		require.True(t, ok)
		require.Len(t, users, 1)
		user, ok := users[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "researcher@alleninstitute.org", user["email"])
		assert.Equal(t, "viewer", user["role"])

		// Nil groups are normalized to an empty list, never null.
		groups, ok := body["groups"].([]interface{})
		require.True(t, ok)
		assert.Empty(t, groups)

		assert.Equal(t, "viewer", body["everyone"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

	resp, err := dataAssets.UpdatePermissions(context.Background(), dataAssetID, &codeocean.UpdatePermissionsRequest{
		Users: []codeocean.UserPermission{
			{Email: "researcher@alleninstitute.org", Role: codeocean.RoleViewer},
		},
		Everyone: codeocean.EveryoneViewer,
	})
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestDataAssetsClient_UpdatePermissions_RevokeAll(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		users, ok := body["users"].([]interface{})
		require.True(t, ok)
		assert.Empty(t, users)

		groups, ok := body["groups"].([]interface{})
		require.True(t, ok)
		assert.Empty(t, groups)

		assert.NotContains(t, body, "everyone")

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

	resp, err := dataAssets.UpdatePermissions(context.Background(), uuid.NewString(), &codeocean.UpdatePermissionsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestDataAssetsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/data_assets", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "tag:raw", r.URL.Query().Get("query"))
		assert.Equal(t, "dataset", r.URL.Query().Get("type"))
		assert.Equal(t, "false", r.URL.Query().Get("archived"))

		_ = json.NewEncoder(w).Encode(codeocean.SearchResults{
			HasMore: false,
			Results: []codeocean.DataAsset{{ID: uuid.NewString(), Name: "asset-1"}},
		})
	}))
	defer server.Close()

	dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

	params := codeocean.NewSearchParams().WithQuery("tag:raw").WithLimit(25)
	params.Type = codeocean.DataAssetTypeDataset
	params.Archived = codeocean.Bool(false)

	resp, err := dataAssets.List(context.Background(), params)
	require.NoError(t, err)

	var results codeocean.SearchResults

	require.NoError(t, resp.JSON(&results))
	assert.False(t, results.HasMore)
	assert.Len(t, results.Results, 1)
}

func TestDataAssetsClient_List_NoParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_ = json.NewEncoder(w).Encode(codeocean.SearchResults{})
	}))
	defer server.Close()

	dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

	resp, err := dataAssets.List(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
}

func TestDataAssetsClient_Search(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/data_assets/search", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ecephys", body["query"])
		assert.Equal(t, float64(10), body["limit"])
		assert.Equal(t, "result", body["type"])
		assert.NotContains(t, body, "start")
		assert.NotContains(t, body, "favorite")

		_ = json.NewEncoder(w).Encode(codeocean.SearchResults{
			HasMore: true,
			Results: []codeocean.DataAsset{{ID: uuid.NewString()}},
		})
	}))
	defer server.Close()

	dataAssets := NewDataAssetsClient(internalhttp.NewClient(server.URL, "test-token"), "/api/v1")

	resp, err := dataAssets.Search(context.Background(), &codeocean.SearchDataAssetsRequest{
		Query: "ecephys",
		Limit: 10,
		Type:  codeocean.DataAssetTypeResult,
	})
	require.NoError(t, err)

	var results codeocean.SearchResults

	require.NoError(t, resp.JSON(&results))
	assert.True(t, results.HasMore)
}
