// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper for the daemon control API
// that converts between domain types and the protobuf messages on the wire.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
