// Package adhan implements the gRPC transport for the Adhan daemon.
//
// It converts protobuf well-known types to domain types and exposes a server
// that calls into a provided business-service interface.
package adhan
