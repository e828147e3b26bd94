package client

import (
	"context"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/pkg/options"
)

// Camera is a client of the Mookodi camera service.
type Camera struct {
	*Connection
	v1.CameraServiceClient
}

// NewCamera connects to the service at opts. Nil opts mean 127.0.0.1:9020.
func NewCamera(ctx context.Context, opts *options.ClientOptions, fns ...Option) (*Camera, error) {
	if opts == nil {
		opts = options.NewClientOptions(DefaultCameraPort)
	}
	conn, err := Dial(ctx, opts.Address(), append([]Option{WithTimeout(opts.Timeout)}, fns...)...)
	if err != nil {
		return nil, err
	}
	return &Camera{Connection: conn, CameraServiceClient: v1.NewCameraServiceClient(conn)}, nil
}
