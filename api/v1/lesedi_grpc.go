package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// LesediServiceName is the fully qualified gRPC service name.
const LesediServiceName = "lesedi.v1.LesediService"

// LesediServiceClient is the client API of lesedi.v1.LesediService.
type LesediServiceClient interface {
	// GetStatus returns the coordinator and subsystem status. Not gated.
	GetStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*Status, error)
	// Startup starts the startup sequence in the background.
	Startup(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// Shutdown starts the shutdown sequence in the background.
	Shutdown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// Stop triggers the emergency stop.
	Stop(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// Reset clears the emergency stop.
	Reset(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	OpenCovers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	CloseCovers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DomeRemoteEnable(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ParkDome(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	OpenDome(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	CloseDome(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// StopDome halts all dome motion. Not gated.
	StopDome(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DomeFollowTelescopeStart(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DomeFollowTelescopeStop(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	RotateDome(ctx context.Context, in *RotateDomeRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DomeLightsOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DomeLightsOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SlewLightsOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SlewLightsOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	RotatorTrackingOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	RotatorTrackingOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	RotatorAutoOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	RotatorAutoOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SecondaryMirrorStop(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SecondaryMirrorAutoOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SecondaryMirrorAutoOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	TertiaryMirrorAutoOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	TertiaryMirrorAutoOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SetFocus(ctx context.Context, in *SetFocusRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SelectInstrument(ctx context.Context, in *SelectInstrumentRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	AutoOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	AutoOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Park(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Unpark(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GotoAltAz(ctx context.Context, in *GotoAltAzRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GotoRaDec(ctx context.Context, in *GotoRaDecRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SetTrackingMode(ctx context.Context, in *SetTrackingModeRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Abort(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Move(ctx context.Context, in *MoveRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type lesediServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLesediServiceClient returns a client sending every call through cc.
func NewLesediServiceClient(cc grpc.ClientConnInterface) LesediServiceClient {
	return &lesediServiceClient{cc: cc}
}

func (c *lesediServiceClient) GetStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*Status, error) {
	return invoke[Status](ctx, c.cc, "/"+LesediServiceName+"/GetStatus", in, opts)
}

func (c *lesediServiceClient) Startup(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/Startup", in, opts)
}

func (c *lesediServiceClient) Shutdown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/Shutdown", in, opts)
}

func (c *lesediServiceClient) Stop(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/Stop", in, opts)
}

func (c *lesediServiceClient) Reset(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/Reset", in, opts)
}

func (c *lesediServiceClient) OpenCovers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/OpenCovers", in, opts)
}

func (c *lesediServiceClient) CloseCovers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/CloseCovers", in, opts)
}

func (c *lesediServiceClient) DomeRemoteEnable(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/DomeRemoteEnable", in, opts)
}

func (c *lesediServiceClient) ParkDome(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/ParkDome", in, opts)
}

func (c *lesediServiceClient) OpenDome(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/OpenDome", in, opts)
}

func (c *lesediServiceClient) CloseDome(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/CloseDome", in, opts)
}

func (c *lesediServiceClient) StopDome(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/StopDome", in, opts)
}

func (c *lesediServiceClient) DomeFollowTelescopeStart(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/DomeFollowTelescopeStart", in, opts)
}

func (c *lesediServiceClient) DomeFollowTelescopeStop(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/DomeFollowTelescopeStop", in, opts)
}

func (c *lesediServiceClient) RotateDome(ctx context.Context, in *RotateDomeRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/RotateDome", in, opts)
}

func (c *lesediServiceClient) DomeLightsOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/DomeLightsOn", in, opts)
}

func (c *lesediServiceClient) DomeLightsOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/DomeLightsOff", in, opts)
}

func (c *lesediServiceClient) SlewLightsOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/SlewLightsOn", in, opts)
}

func (c *lesediServiceClient) SlewLightsOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/SlewLightsOff", in, opts)
}

func (c *lesediServiceClient) RotatorTrackingOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/RotatorTrackingOn", in, opts)
}

func (c *lesediServiceClient) RotatorTrackingOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/RotatorTrackingOff", in, opts)
}

func (c *lesediServiceClient) RotatorAutoOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/RotatorAutoOn", in, opts)
}

func (c *lesediServiceClient) RotatorAutoOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/RotatorAutoOff", in, opts)
}

func (c *lesediServiceClient) SecondaryMirrorStop(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/SecondaryMirrorStop", in, opts)
}

func (c *lesediServiceClient) SecondaryMirrorAutoOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/SecondaryMirrorAutoOn", in, opts)
}

func (c *lesediServiceClient) SecondaryMirrorAutoOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/SecondaryMirrorAutoOff", in, opts)
}

func (c *lesediServiceClient) TertiaryMirrorAutoOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/TertiaryMirrorAutoOn", in, opts)
}

func (c *lesediServiceClient) TertiaryMirrorAutoOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/TertiaryMirrorAutoOff", in, opts)
}

func (c *lesediServiceClient) SetFocus(ctx context.Context, in *SetFocusRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/SetFocus", in, opts)
}

func (c *lesediServiceClient) SelectInstrument(ctx context.Context, in *SelectInstrumentRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/SelectInstrument", in, opts)
}

func (c *lesediServiceClient) AutoOn(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/AutoOn", in, opts)
}

func (c *lesediServiceClient) AutoOff(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/AutoOff", in, opts)
}

func (c *lesediServiceClient) Park(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/Park", in, opts)
}

func (c *lesediServiceClient) Unpark(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/Unpark", in, opts)
}

func (c *lesediServiceClient) GotoAltAz(ctx context.Context, in *GotoAltAzRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/GotoAltAz", in, opts)
}

func (c *lesediServiceClient) GotoRaDec(ctx context.Context, in *GotoRaDecRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/GotoRaDec", in, opts)
}

func (c *lesediServiceClient) SetTrackingMode(ctx context.Context, in *SetTrackingModeRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/SetTrackingMode", in, opts)
}

func (c *lesediServiceClient) Abort(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/Abort", in, opts)
}

func (c *lesediServiceClient) Move(ctx context.Context, in *MoveRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+LesediServiceName+"/Move", in, opts)
}

// LesediServiceServer is the server API of lesedi.v1.LesediService.
type LesediServiceServer interface {
	GetStatus(context.Context, *emptypb.Empty) (*Status, error)
	Startup(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Shutdown(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Stop(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Reset(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	OpenCovers(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	CloseCovers(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	DomeRemoteEnable(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	ParkDome(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	OpenDome(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	CloseDome(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	StopDome(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	DomeFollowTelescopeStart(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	DomeFollowTelescopeStop(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	RotateDome(context.Context, *RotateDomeRequest) (*emptypb.Empty, error)
	DomeLightsOn(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	DomeLightsOff(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	SlewLightsOn(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	SlewLightsOff(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	RotatorTrackingOn(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	RotatorTrackingOff(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	RotatorAutoOn(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	RotatorAutoOff(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	SecondaryMirrorStop(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	SecondaryMirrorAutoOn(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	SecondaryMirrorAutoOff(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	TertiaryMirrorAutoOn(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	TertiaryMirrorAutoOff(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	SetFocus(context.Context, *SetFocusRequest) (*emptypb.Empty, error)
	SelectInstrument(context.Context, *SelectInstrumentRequest) (*emptypb.Empty, error)
	AutoOn(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	AutoOff(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Park(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Unpark(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	GotoAltAz(context.Context, *GotoAltAzRequest) (*emptypb.Empty, error)
	GotoRaDec(context.Context, *GotoRaDecRequest) (*emptypb.Empty, error)
	SetTrackingMode(context.Context, *SetTrackingModeRequest) (*emptypb.Empty, error)
	Abort(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Move(context.Context, *MoveRequest) (*emptypb.Empty, error)
}

// RegisterLesediServiceServer registers srv on s.
func RegisterLesediServiceServer(s grpc.ServiceRegistrar, srv LesediServiceServer) {
	s.RegisterService(&LesediService_ServiceDesc, srv)
}

// LesediService_ServiceDesc describes lesedi.v1.LesediService for grpc.Server.
var LesediService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: LesediServiceName,
	HandlerType: (*LesediServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(LesediServiceName, "GetStatus", LesediServiceServer.GetStatus),
		unary(LesediServiceName, "Startup", LesediServiceServer.Startup),
		unary(LesediServiceName, "Shutdown", LesediServiceServer.Shutdown),
		unary(LesediServiceName, "Stop", LesediServiceServer.Stop),
		unary(LesediServiceName, "Reset", LesediServiceServer.Reset),
		unary(LesediServiceName, "OpenCovers", LesediServiceServer.OpenCovers),
		unary(LesediServiceName, "CloseCovers", LesediServiceServer.CloseCovers),
		unary(LesediServiceName, "DomeRemoteEnable", LesediServiceServer.DomeRemoteEnable),
		unary(LesediServiceName, "ParkDome", LesediServiceServer.ParkDome),
		unary(LesediServiceName, "OpenDome", LesediServiceServer.OpenDome),
		unary(LesediServiceName, "CloseDome", LesediServiceServer.CloseDome),
		unary(LesediServiceName, "StopDome", LesediServiceServer.StopDome),
		unary(LesediServiceName, "DomeFollowTelescopeStart", LesediServiceServer.DomeFollowTelescopeStart),
		unary(LesediServiceName, "DomeFollowTelescopeStop", LesediServiceServer.DomeFollowTelescopeStop),
		unary(LesediServiceName, "RotateDome", LesediServiceServer.RotateDome),
		unary(LesediServiceName, "DomeLightsOn", LesediServiceServer.DomeLightsOn),
		unary(LesediServiceName, "DomeLightsOff", LesediServiceServer.DomeLightsOff),
		unary(LesediServiceName, "SlewLightsOn", LesediServiceServer.SlewLightsOn),
		unary(LesediServiceName, "SlewLightsOff", LesediServiceServer.SlewLightsOff),
		unary(LesediServiceName, "RotatorTrackingOn", LesediServiceServer.RotatorTrackingOn),
		unary(LesediServiceName, "RotatorTrackingOff", LesediServiceServer.RotatorTrackingOff),
		unary(LesediServiceName, "RotatorAutoOn", LesediServiceServer.RotatorAutoOn),
		unary(LesediServiceName, "RotatorAutoOff", LesediServiceServer.RotatorAutoOff),
		unary(LesediServiceName, "SecondaryMirrorStop", LesediServiceServer.SecondaryMirrorStop),
		unary(LesediServiceName, "SecondaryMirrorAutoOn", LesediServiceServer.SecondaryMirrorAutoOn),
		unary(LesediServiceName, "SecondaryMirrorAutoOff", LesediServiceServer.SecondaryMirrorAutoOff),
		unary(LesediServiceName, "TertiaryMirrorAutoOn", LesediServiceServer.TertiaryMirrorAutoOn),
		unary(LesediServiceName, "TertiaryMirrorAutoOff", LesediServiceServer.TertiaryMirrorAutoOff),
		unary(LesediServiceName, "SetFocus", LesediServiceServer.SetFocus),
		unary(LesediServiceName, "SelectInstrument", LesediServiceServer.SelectInstrument),
		unary(LesediServiceName, "AutoOn", LesediServiceServer.AutoOn),
		unary(LesediServiceName, "AutoOff", LesediServiceServer.AutoOff),
		unary(LesediServiceName, "Park", LesediServiceServer.Park),
		unary(LesediServiceName, "Unpark", LesediServiceServer.Unpark),
		unary(LesediServiceName, "GotoAltAz", LesediServiceServer.GotoAltAz),
		unary(LesediServiceName, "GotoRaDec", LesediServiceServer.GotoRaDec),
		unary(LesediServiceName, "SetTrackingMode", LesediServiceServer.SetTrackingMode),
		unary(LesediServiceName, "Abort", LesediServiceServer.Abort),
		unary(LesediServiceName, "Move", LesediServiceServer.Move),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lesedi/v1/lesedi.proto",
}
