package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/pkg/options"
)

const (
	DefaultLesediPort = 9090
	DefaultCameraPort = 9020
)

// Lesedi is a client of the telescope control service.
type Lesedi struct {
	*Connection
	v1.LesediServiceClient
}

// NewLesedi connects to the service at opts. Nil opts mean 127.0.0.1:9090.
func NewLesedi(ctx context.Context, opts *options.ClientOptions, fns ...Option) (*Lesedi, error) {
	if opts == nil {
		opts = options.NewClientOptions(DefaultLesediPort)
	}
	conn, err := Dial(ctx, opts.Address(), append([]Option{WithTimeout(opts.Timeout)}, fns...)...)
	if err != nil {
		return nil, err
	}
	return &Lesedi{Connection: conn, LesediServiceClient: v1.NewLesediServiceClient(conn)}, nil
}

// GetState is GetStatus without a request message.
func (l *Lesedi) GetState(ctx context.Context) (*v1.Status, error) {
	return l.GetStatus(ctx, &emptypb.Empty{})
}

// GotoAltAz checks the coordinates before sending them.
func (l *Lesedi) GotoAltAz(ctx context.Context, in *v1.GotoAltAzRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return l.LesediServiceClient.GotoAltAz(ctx, in, opts...)
}

// GatherFITSInfo returns the telescope header cards written into frames.
func (l *Lesedi) GatherFITSInfo(ctx context.Context) ([]v1.FitsHeaderCard, error) {
	s, err := l.GetState(ctx)
	if err != nil {
		return nil, err
	}
	return FITSCards(s), nil
}

// FITSCards derives the telescope header cards from a status snapshot.
func FITSCards(s *v1.Status) []v1.FitsHeaderCard {
	return []v1.FitsHeaderCard{
		v1.FloatCard("TELRA", s.TelescopeRA, "The telescope right ascension"),
		v1.FloatCard("TELDEC", s.TelescopeDec, "The telescope declination"),
		v1.FloatCard("AIRMASS", s.Airmass, "The airmass (sec(z))"),
		v1.FloatCard("ZD", 90-s.TelescopeAlt, "The telescope zenith distance"),
		v1.FloatCard("TELFOCUS", s.Focus, "The telescope focus"),
		v1.FloatCard("DOMEPOS", s.DomeAngle, "The dome position"),
	}
}
