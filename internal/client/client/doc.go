// Package client contains the collaborator contracts of the directory
// application (auth, search, profile update) and their gRPC implementation.
// Controllers depend on the narrow interfaces only; the concrete GRPCClient
// carries the opaque access token on every outbound call and maps transport
// errors onto the package sentinels.
package client
