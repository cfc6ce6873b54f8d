// Package codeocean provides types, interfaces, and helpers for working with
// the Code Ocean platform API (v1).
//
// # Overview
//
// The codeocean package defines the request and response model types (e.g.,
// CreateDataAssetRequest, RunCapsuleRequest, DataAsset, Computation) and the
// interfaces for resource-oriented clients (DataAssetsClient, CapsulesClient,
// ComputationsClient). A concrete implementation is provided by the coclient
// package, which wires configuration and transport. Most consumers should
// import coclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/AllenNeuralDynamics/codeocean-go/pkg/codeocean"
//	  "github.com/AllenNeuralDynamics/codeocean-go/pkg/coclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := coclient.NewWithToken("https://acmecorp.codeocean.com", "cop_token")
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.DataAssets().Get(ctx, "37a93748-ce90-4980-913b-2de0908d5212")
//	  if err != nil { log.Fatal(err) }
//	  _ = resp
//	}
//
// # Response contract
//
// Every operation returns the raw *Response (status code, headers, body
// bytes). The client performs no status-code branching and no body parsing;
// a non-nil error indicates a transport-level failure only. Response.JSON
// decodes the body into a model type, and Response.AsError converts a non-2xx
// response into an *APIError for callers that prefer error-style handling.
//
// # Request bodies
//
// Optional request fields left unset are omitted from the serialized JSON
// body entirely rather than sent as null, matching the platform's partial
// update semantics.
package codeocean
