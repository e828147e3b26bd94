// Package v1 contains the wire contract of the Lesedi telescope control
// service and the Mookodi camera service: message types, enums, error codes
// and the gRPC service descriptors.
//
// Messages travel as JSON using the "json" gRPC content subtype registered by
// this package. Calls without arguments or results use emptypb.Empty.
package v1
