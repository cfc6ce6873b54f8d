package codeocean

// Data asset types.
const (
	DataAssetTypeDataset = "dataset"
	DataAssetTypeResult  = "result"
)

// Data asset states.
const (
	DataAssetStateDraft  = "draft"
	DataAssetStateReady  = "ready"
	DataAssetStateFailed = "failed"
)

// Computation states.
const (
	ComputationStateInitializing = "initializing"
	ComputationStateRunning      = "running"
	ComputationStateFinalizing   = "finalizing"
	ComputationStateCompleted    = "completed"
	ComputationStateFailed       = "failed"
)

// Permission roles.
const (
	RoleOwner  = "owner"
	RoleViewer = "viewer"
)

// Everyone permission values.
const (
	EveryoneNone   = "none"
	EveryoneViewer = "viewer"
)

// CreateDataAssetRequest represents a request to register a data asset from
// an external source or a capsule computation. Source must name exactly one
// of aws, gcp, or computation.
type CreateDataAssetRequest struct {
	// Name is the display name of the data asset.
	Name string `json:"name"`
	// Tags are attached to the data asset for search and grouping.
	Tags []string `json:"tags"`
	// Mount is the folder name the asset is mounted under in a capsule.
	Mount string `json:"mount"`
	// Description optionally describes the data asset; omitted when empty.
	Description string `json:"description,omitempty"`
	// Source describes where the data comes from; nil leaves it to the platform.
	Source *Source `json:"source,omitempty"`
	// Target optionally directs result data to external storage.
	Target *Target `json:"target,omitempty"`
	// CustomMetadata sets key/value metadata on the asset.
	CustomMetadata map[string]interface{} `json:"custom_metadata,omitempty"`
	// ViewableByEveryone optionally grants global viewer access on creation.
	ViewableByEveryone *bool `json:"viewable_by_everyone,omitempty"`
}

// Source needs to be one of aws, gcp, or computation.
type Source struct {
	AWS         *AWSSource         `json:"aws,omitempty"`
	GCP         *GCPSource         `json:"gcp,omitempty"`
	Computation *ComputationSource `json:"computation,omitempty"`
}

// AWSSource holds the fields required to create a data asset from an AWS bucket.
type AWSSource struct {
	Bucket                string `json:"bucket"`
	Prefix                string `json:"prefix,omitempty"`
	KeepOnExternalStorage *bool  `json:"keep_on_external_storage,omitempty"`
	IndexData             *bool  `json:"index_data,omitempty"`
	Public                *bool  `json:"public,omitempty"`
	AccessKeyID           string `json:"access_key_id,omitempty"`
	SecretAccessKey       string `json:"secret_access_key,omitempty"`
}

// GCPSource holds the fields required to create a data asset from a GCP bucket.
type GCPSource struct {
	Bucket       string `json:"bucket"`
	Prefix       string `json:"prefix,omitempty"`
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// ComputationSource holds the fields required to create a data asset from a
// capsule computation.
type ComputationSource struct {
	ID   string `json:"id"`
	Path string `json:"path,omitempty"`
}

// Target directs created data to external storage. Only aws is supported.
type Target struct {
	AWS *AWSTarget `json:"aws,omitempty"`
}

// AWSTarget is an AWS bucket and prefix.
type AWSTarget struct {
	Bucket string `json:"bucket"`
	Prefix string `json:"prefix,omitempty"`
}

// UpdateDataAssetRequest represents a request to update data asset metadata.
// Only the supplied fields are sent; unset fields are left unchanged by the
// platform.
type UpdateDataAssetRequest struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description,omitempty"`
	Tags           []string               `json:"tags,omitempty"`
	Mount          string                 `json:"mount,omitempty"`
	CustomMetadata map[string]interface{} `json:"custom_metadata,omitempty"`
}

// UserPermission grants a role to a user by email.
type UserPermission struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GroupPermission grants a role to a group.
type GroupPermission struct {
	Group string `json:"group"`
	Role  string `json:"role"`
}

// UpdatePermissionsRequest represents a request to replace the permissions of
// a data asset. Nil Users or Groups are sent as empty lists; Everyone is
// omitted when empty ("none" revokes global access, "viewer" grants it).
type UpdatePermissionsRequest struct {
	Users    []UserPermission  `json:"users"`
	Groups   []GroupPermission `json:"groups"`
	Everyone string            `json:"everyone,omitempty"`
}

// ComputationDataAsset attaches a data asset to a capsule run under a mount
// folder.
type ComputationDataAsset struct {
	ID    string `json:"id"`
	Mount string `json:"mount"`
}

// NamedRunParameter is a named capsule parameter.
type NamedRunParameter struct {
	ParamName string `json:"param_name"`
	Value     string `json:"value"`
}

// PipelineProcess overrides parameters of a single process in a pipeline run.
type PipelineProcess struct {
	Name            string              `json:"name"`
	Parameters      []string            `json:"parameters,omitempty"`
	NamedParameters []NamedRunParameter `json:"named_parameters,omitempty"`
}

// RunCapsuleRequest represents a request to run a capsule or a pipeline.
// Exactly one of CapsuleID or PipelineID should be set. Positional Parameters
// match the order the capsule declares them in.
type RunCapsuleRequest struct {
	CapsuleID       string                 `json:"capsule_id,omitempty"`
	PipelineID      string                 `json:"pipeline_id,omitempty"`
	Version         int                    `json:"version,omitempty"`
	ResumeRunID     string                 `json:"resume_run_id,omitempty"`
	DataAssets      []ComputationDataAsset `json:"data_assets,omitempty"`
	Parameters      []string               `json:"parameters,omitempty"`
	NamedParameters []NamedRunParameter    `json:"named_parameters,omitempty"`
	Processes       []PipelineProcess      `json:"processes,omitempty"`
}

// SearchDataAssetsRequest is the filter body for the data asset search
// endpoint. Unset fields are omitted from the serialized body.
type SearchDataAssetsRequest struct {
	Start     int    `json:"start,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`
	SortField string `json:"sort_field,omitempty"`
	// Type filters by data asset type (dataset or result); both when empty.
	Type string `json:"type,omitempty"`
	// Ownership filters by ownership (owner or shared).
	Ownership string `json:"ownership,omitempty"`
	Favorite  *bool  `json:"favorite,omitempty"`
	Archived  *bool  `json:"archived,omitempty"`
	Query     string `json:"query,omitempty"`
}

// DataAsset represents a data asset resource. Provided as a decode target for
// callers; the client itself never parses response bodies.
type DataAsset struct {
	ID             string                 `json:"id"`
	Created        int64                  `json:"created"`
	Name           string                 `json:"name"`
	Mount          string                 `json:"mount"`
	Description    string                 `json:"description,omitempty"`
	Tags           []string               `json:"tags,omitempty"`
	Type           string                 `json:"type"`
	State          string                 `json:"state"`
	LastUsed       int64                  `json:"last_used,omitempty"`
	Files          int                    `json:"files,omitempty"`
	Size           int64                  `json:"size,omitempty"`
	CustomMetadata map[string]interface{} `json:"custom_metadata,omitempty"`
	SourceBucket   *SourceBucket          `json:"sourceBucket,omitempty"`
}

// SourceBucket describes the external origin of a data asset.
type SourceBucket struct {
	Origin string `json:"origin"`
	Bucket string `json:"bucket"`
	Prefix string `json:"prefix,omitempty"`
}

// Computation represents a single execution of a capsule or pipeline.
type Computation struct {
	ID         string `json:"id"`
	Created    int64  `json:"created"`
	Name       string `json:"name"`
	RunTime    int64  `json:"run_time"`
	State      string `json:"state"`
	EndStatus  string `json:"end_status,omitempty"`
	HasResults bool   `json:"has_results,omitempty"`
}

// Capsule represents a capsule resource.
type Capsule struct {
	ID          string   `json:"id"`
	Created     int64    `json:"created"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	OwnerID     string   `json:"owner"`
	Slug        string   `json:"slug,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// ResultItem is a single file or folder produced by a computation.
type ResultItem struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	Type string `json:"type"`
	Size int64  `json:"size,omitempty"`
}

// ResultItemsList is the response of the computation results endpoint.
type ResultItemsList struct {
	Items []ResultItem `json:"items"`
}

// DownloadURL is the response of the result file download URL endpoint.
type DownloadURL struct {
	URL string `json:"url"`
}

// SearchResults is the paged response of the data asset list and search
// endpoints.
type SearchResults struct {
	HasMore bool        `json:"has_more"`
	Results []DataAsset `json:"results"`
}
