package lesedi

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/lesedi/coordinator"
)

var _ v1.LesediServiceServer = (*Service)(nil)

// Service serves lesedi.v1.LesediService. Every call is forwarded to the
// coordinator; errors are mapped to status codes by the server interceptors.
type Service struct {
	c *coordinator.Coordinator
}

func NewService(c *coordinator.Coordinator) *Service {
	return &Service{c: c}
}

func empty(err error) (*emptypb.Empty, error) {
	if err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *Service) GetStatus(ctx context.Context, _ *emptypb.Empty) (*v1.Status, error) {
	return s.c.Status(ctx)
}

func (s *Service) Startup(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.Startup(ctx))
}

func (s *Service) Shutdown(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.Shutdown(ctx))
}

func (s *Service) Stop(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.Stop(ctx))
}

func (s *Service) Reset(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.Reset(ctx))
}

func (s *Service) OpenCovers(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.OpenCovers(ctx))
}

func (s *Service) CloseCovers(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.CloseCovers(ctx))
}

func (s *Service) DomeRemoteEnable(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.DomeRemoteEnable(ctx))
}

func (s *Service) ParkDome(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.ParkDome(ctx))
}

func (s *Service) OpenDome(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.OpenDome(ctx))
}

func (s *Service) CloseDome(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.CloseDome(ctx))
}

func (s *Service) StopDome(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.StopDome(ctx))
}

func (s *Service) DomeFollowTelescopeStart(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.DomeFollowTelescopeStart(ctx))
}

func (s *Service) DomeFollowTelescopeStop(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.DomeFollowTelescopeStop(ctx))
}

func (s *Service) DomeLightsOn(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.DomeLightsOn(ctx))
}

func (s *Service) DomeLightsOff(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.DomeLightsOff(ctx))
}

func (s *Service) SlewLightsOn(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.SlewLightsOn(ctx))
}

func (s *Service) SlewLightsOff(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.SlewLightsOff(ctx))
}

func (s *Service) RotatorTrackingOn(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.RotatorTrackingOn(ctx))
}

func (s *Service) RotatorTrackingOff(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.RotatorTrackingOff(ctx))
}

func (s *Service) RotatorAutoOn(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.RotatorAutoOn(ctx))
}

func (s *Service) RotatorAutoOff(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.RotatorAutoOff(ctx))
}

func (s *Service) SecondaryMirrorStop(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.SecondaryMirrorStop(ctx))
}

func (s *Service) SecondaryMirrorAutoOn(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.SecondaryMirrorAutoOn(ctx))
}

func (s *Service) SecondaryMirrorAutoOff(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.SecondaryMirrorAutoOff(ctx))
}

func (s *Service) TertiaryMirrorAutoOn(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.TertiaryMirrorAutoOn(ctx))
}

func (s *Service) TertiaryMirrorAutoOff(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.TertiaryMirrorAutoOff(ctx))
}

func (s *Service) AutoOn(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.AutoOn(ctx))
}

func (s *Service) AutoOff(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.AutoOff(ctx))
}

func (s *Service) Park(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.Park(ctx))
}

func (s *Service) Unpark(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.Unpark(ctx))
}

func (s *Service) Abort(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.c.Abort(ctx))
}

func (s *Service) RotateDome(ctx context.Context, in *v1.RotateDomeRequest) (*emptypb.Empty, error) {
	return empty(s.c.RotateDome(ctx, in.Azimuth))
}

func (s *Service) SetFocus(ctx context.Context, in *v1.SetFocusRequest) (*emptypb.Empty, error) {
	return empty(s.c.SetFocus(ctx, in.Inches))
}

func (s *Service) SelectInstrument(ctx context.Context, in *v1.SelectInstrumentRequest) (*emptypb.Empty, error) {
	return empty(s.c.SelectInstrument(ctx, in.Instrument))
}

func (s *Service) GotoAltAz(ctx context.Context, in *v1.GotoAltAzRequest) (*emptypb.Empty, error) {
	return empty(s.c.GotoAltAz(ctx, in.Alt, in.Az))
}

func (s *Service) GotoRaDec(ctx context.Context, in *v1.GotoRaDecRequest) (*emptypb.Empty, error) {
	return empty(s.c.GotoRaDec(ctx, in.RA, in.Dec))
}

func (s *Service) SetTrackingMode(ctx context.Context, in *v1.SetTrackingModeRequest) (*emptypb.Empty, error) {
	return empty(s.c.SetTrackingMode(ctx, *in))
}

func (s *Service) Move(ctx context.Context, in *v1.MoveRequest) (*emptypb.Empty, error) {
	return empty(s.c.Move(ctx, in.Direction, in.Arcsec))
}
