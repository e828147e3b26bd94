package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// CameraServiceName is the fully qualified gRPC service name.
const CameraServiceName = "mookodi.v1.CameraService"

// CameraServiceClient is the client API of mookodi.v1.CameraService.
type CameraServiceClient interface {
	SetBinning(ctx context.Context, in *SetBinningRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SetWindow(ctx context.Context, in *SetWindowRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ClearWindow(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SetReadoutSpeed(ctx context.Context, in *SetReadoutSpeedRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SetGain(ctx context.Context, in *SetGainRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// SetFitsHeaders replaces the header list written into saved frames.
	SetFitsHeaders(ctx context.Context, in *SetFitsHeadersRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	AddFitsHeader(ctx context.Context, in *AddFitsHeaderRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ClearFitsHeaders(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	StartExpose(ctx context.Context, in *StartExposeRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	StartMultbias(ctx context.Context, in *StartMultbiasRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	StartMultdark(ctx context.Context, in *StartMultrunRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	StartMultrun(ctx context.Context, in *StartMultrunRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	AbortExposure(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetState(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*CameraState, error)
	GetImageData(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ImageData, error)
	GetLastImageFilename(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*FilenameResponse, error)
	// GetImageFilenames lists the frames of the current or last multi-frame run.
	GetImageFilenames(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*FilenamesResponse, error)
	CoolDown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	WarmUp(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type cameraServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCameraServiceClient returns a client sending every call through cc.
func NewCameraServiceClient(cc grpc.ClientConnInterface) CameraServiceClient {
	return &cameraServiceClient{cc: cc}
}

func (c *cameraServiceClient) SetBinning(ctx context.Context, in *SetBinningRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/SetBinning", in, opts)
}

func (c *cameraServiceClient) SetWindow(ctx context.Context, in *SetWindowRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/SetWindow", in, opts)
}

func (c *cameraServiceClient) ClearWindow(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/ClearWindow", in, opts)
}

func (c *cameraServiceClient) SetReadoutSpeed(ctx context.Context, in *SetReadoutSpeedRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/SetReadoutSpeed", in, opts)
}

func (c *cameraServiceClient) SetGain(ctx context.Context, in *SetGainRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/SetGain", in, opts)
}

func (c *cameraServiceClient) SetFitsHeaders(ctx context.Context, in *SetFitsHeadersRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/SetFitsHeaders", in, opts)
}

func (c *cameraServiceClient) AddFitsHeader(ctx context.Context, in *AddFitsHeaderRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/AddFitsHeader", in, opts)
}

func (c *cameraServiceClient) ClearFitsHeaders(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/ClearFitsHeaders", in, opts)
}

func (c *cameraServiceClient) StartExpose(ctx context.Context, in *StartExposeRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/StartExpose", in, opts)
}

func (c *cameraServiceClient) StartMultbias(ctx context.Context, in *StartMultbiasRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/StartMultbias", in, opts)
}

func (c *cameraServiceClient) StartMultdark(ctx context.Context, in *StartMultrunRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/StartMultdark", in, opts)
}

func (c *cameraServiceClient) StartMultrun(ctx context.Context, in *StartMultrunRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/StartMultrun", in, opts)
}

func (c *cameraServiceClient) AbortExposure(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/AbortExposure", in, opts)
}

func (c *cameraServiceClient) GetState(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*CameraState, error) {
	return invoke[CameraState](ctx, c.cc, "/"+CameraServiceName+"/GetState", in, opts)
}

func (c *cameraServiceClient) GetImageData(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ImageData, error) {
	return invoke[ImageData](ctx, c.cc, "/"+CameraServiceName+"/GetImageData", in, opts)
}

func (c *cameraServiceClient) GetLastImageFilename(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*FilenameResponse, error) {
	return invoke[FilenameResponse](ctx, c.cc, "/"+CameraServiceName+"/GetLastImageFilename", in, opts)
}

func (c *cameraServiceClient) GetImageFilenames(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*FilenamesResponse, error) {
	return invoke[FilenamesResponse](ctx, c.cc, "/"+CameraServiceName+"/GetImageFilenames", in, opts)
}

func (c *cameraServiceClient) CoolDown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/CoolDown", in, opts)
}

func (c *cameraServiceClient) WarmUp(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "/"+CameraServiceName+"/WarmUp", in, opts)
}

// CameraServiceServer is the server API of mookodi.v1.CameraService.
type CameraServiceServer interface {
	SetBinning(context.Context, *SetBinningRequest) (*emptypb.Empty, error)
	SetWindow(context.Context, *SetWindowRequest) (*emptypb.Empty, error)
	ClearWindow(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	SetReadoutSpeed(context.Context, *SetReadoutSpeedRequest) (*emptypb.Empty, error)
	SetGain(context.Context, *SetGainRequest) (*emptypb.Empty, error)
	SetFitsHeaders(context.Context, *SetFitsHeadersRequest) (*emptypb.Empty, error)
	AddFitsHeader(context.Context, *AddFitsHeaderRequest) (*emptypb.Empty, error)
	ClearFitsHeaders(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	StartExpose(context.Context, *StartExposeRequest) (*emptypb.Empty, error)
	StartMultbias(context.Context, *StartMultbiasRequest) (*emptypb.Empty, error)
	StartMultdark(context.Context, *StartMultrunRequest) (*emptypb.Empty, error)
	StartMultrun(context.Context, *StartMultrunRequest) (*emptypb.Empty, error)
	AbortExposure(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	GetState(context.Context, *emptypb.Empty) (*CameraState, error)
	GetImageData(context.Context, *emptypb.Empty) (*ImageData, error)
	GetLastImageFilename(context.Context, *emptypb.Empty) (*FilenameResponse, error)
	GetImageFilenames(context.Context, *emptypb.Empty) (*FilenamesResponse, error)
	CoolDown(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	WarmUp(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// RegisterCameraServiceServer registers srv on s.
func RegisterCameraServiceServer(s grpc.ServiceRegistrar, srv CameraServiceServer) {
	s.RegisterService(&CameraService_ServiceDesc, srv)
}

// CameraService_ServiceDesc describes mookodi.v1.CameraService for grpc.Server.
var CameraService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CameraServiceName,
	HandlerType: (*CameraServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CameraServiceName, "SetBinning", CameraServiceServer.SetBinning),
		unary(CameraServiceName, "SetWindow", CameraServiceServer.SetWindow),
		unary(CameraServiceName, "ClearWindow", CameraServiceServer.ClearWindow),
		unary(CameraServiceName, "SetReadoutSpeed", CameraServiceServer.SetReadoutSpeed),
		unary(CameraServiceName, "SetGain", CameraServiceServer.SetGain),
		unary(CameraServiceName, "SetFitsHeaders", CameraServiceServer.SetFitsHeaders),
		unary(CameraServiceName, "AddFitsHeader", CameraServiceServer.AddFitsHeader),
		unary(CameraServiceName, "ClearFitsHeaders", CameraServiceServer.ClearFitsHeaders),
		unary(CameraServiceName, "StartExpose", CameraServiceServer.StartExpose),
		unary(CameraServiceName, "StartMultbias", CameraServiceServer.StartMultbias),
		unary(CameraServiceName, "StartMultdark", CameraServiceServer.StartMultdark),
		unary(CameraServiceName, "StartMultrun", CameraServiceServer.StartMultrun),
		unary(CameraServiceName, "AbortExposure", CameraServiceServer.AbortExposure),
		unary(CameraServiceName, "GetState", CameraServiceServer.GetState),
		unary(CameraServiceName, "GetImageData", CameraServiceServer.GetImageData),
		unary(CameraServiceName, "GetLastImageFilename", CameraServiceServer.GetLastImageFilename),
		unary(CameraServiceName, "GetImageFilenames", CameraServiceServer.GetImageFilenames),
		unary(CameraServiceName, "CoolDown", CameraServiceServer.CoolDown),
		unary(CameraServiceName, "WarmUp", CameraServiceServer.WarmUp),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mookodi/v1/camera.proto",
}
