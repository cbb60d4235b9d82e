// Package common contains shared constants and sentinel errors used across
// the diary feed server.
package common

// AccessTokenHeaderName is the gRPC metadata key carrying the viewer's
// access token. Requests without it are served as anonymous.
const AccessTokenHeaderName = "access_token"

// Feed page bounds accepted at the transport boundary.
const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
)
