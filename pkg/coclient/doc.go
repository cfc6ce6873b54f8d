// Package coclient constructs Code Ocean API clients.
//
// The package normalizes the configured domain (trailing slash, https scheme)
// and wires the transport and resource clients defined in the codeocean
// package:
//
//	cli, err := coclient.NewWithToken("acmecorp.codeocean.com", os.Getenv("CODEOCEAN_TOKEN"))
//	if err != nil { ... }
//
//	resp, err := cli.Computations().Run(ctx, &codeocean.RunCapsuleRequest{
//	  CapsuleID:  "...",
//	  DataAssets: []codeocean.ComputationDataAsset{{ID: "...", Mount: "data"}},
//	})
//
// Credentials can also come from the credentials package:
//
//	creds, err := credentials.Load()
//	if err != nil { ... }
//	cli, err := coclient.NewFromCredentials(creds)
package coclient
