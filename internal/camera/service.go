package camera

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	v1 "github.com/lesedi-io/lesedi/api/v1"
)

var _ v1.CameraServiceServer = (*Service)(nil)

// Service serves mookodi.v1.CameraService on top of a Camera.
type Service struct {
	cam *Camera
}

func NewService(cam *Camera) *Service {
	return &Service{cam: cam}
}

func empty(err error) (*emptypb.Empty, error) {
	if err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *Service) SetBinning(_ context.Context, in *v1.SetBinningRequest) (*emptypb.Empty, error) {
	return empty(s.cam.SetBinning(in.XBin, in.YBin))
}

func (s *Service) SetWindow(_ context.Context, in *v1.SetWindowRequest) (*emptypb.Empty, error) {
	return empty(s.cam.SetWindow(in.Window))
}

func (s *Service) ClearWindow(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	s.cam.ClearWindow()
	return &emptypb.Empty{}, nil
}

func (s *Service) SetReadoutSpeed(_ context.Context, in *v1.SetReadoutSpeedRequest) (*emptypb.Empty, error) {
	return empty(s.cam.SetReadoutSpeed(in.Speed))
}

func (s *Service) SetGain(_ context.Context, in *v1.SetGainRequest) (*emptypb.Empty, error) {
	return empty(s.cam.SetGain(in.Gain))
}

func (s *Service) SetFitsHeaders(_ context.Context, in *v1.SetFitsHeadersRequest) (*emptypb.Empty, error) {
	return empty(s.cam.SetFitsHeaders(in.Cards))
}

func (s *Service) AddFitsHeader(_ context.Context, in *v1.AddFitsHeaderRequest) (*emptypb.Empty, error) {
	return empty(s.cam.AddFitsHeader(in.Card))
}

func (s *Service) ClearFitsHeaders(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	s.cam.ClearFitsHeaders()
	return &emptypb.Empty{}, nil
}

func (s *Service) StartExpose(_ context.Context, in *v1.StartExposeRequest) (*emptypb.Empty, error) {
	return empty(s.cam.StartExpose(in.ExposureLength, in.SaveImage))
}

func (s *Service) StartMultbias(_ context.Context, in *v1.StartMultbiasRequest) (*emptypb.Empty, error) {
	return empty(s.cam.StartMultbias(in.ExposureCount))
}

func (s *Service) StartMultdark(_ context.Context, in *v1.StartMultrunRequest) (*emptypb.Empty, error) {
	return empty(s.cam.StartMultdark(in.ExposureCount, in.ExposureLength))
}

func (s *Service) StartMultrun(_ context.Context, in *v1.StartMultrunRequest) (*emptypb.Empty, error) {
	return empty(s.cam.StartMultrun(in.ExposureCount, in.ExposureLength))
}

func (s *Service) AbortExposure(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	s.cam.AbortExposure()
	return &emptypb.Empty{}, nil
}

func (s *Service) GetState(context.Context, *emptypb.Empty) (*v1.CameraState, error) {
	st := s.cam.State()
	return &st, nil
}

func (s *Service) GetImageData(context.Context, *emptypb.Empty) (*v1.ImageData, error) {
	img := s.cam.ImageData()
	return &img, nil
}

func (s *Service) GetLastImageFilename(context.Context, *emptypb.Empty) (*v1.FilenameResponse, error) {
	return &v1.FilenameResponse{Filename: s.cam.LastImageFilename()}, nil
}

func (s *Service) GetImageFilenames(context.Context, *emptypb.Empty) (*v1.FilenamesResponse, error) {
	return &v1.FilenamesResponse{Filenames: s.cam.ImageFilenames()}, nil
}

func (s *Service) CoolDown(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	s.cam.CoolDown()
	return &emptypb.Empty{}, nil
}

func (s *Service) WarmUp(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	s.cam.WarmUp()
	return &emptypb.Empty{}, nil
}
