// Package pb describes the adhan.v1.AdhanService control API.
//
// Requests and responses are protobuf well-known types (Struct, ListValue,
// StringValue, Empty), so the service needs no generated message code; the
// client, server interfaces and service descriptor follow protoc-gen-go-grpc.
//
//nolint:revive,stylecheck // Method names follow protoc-gen-go-grpc conventions.
package pb
