package options

import (
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/lesedi-io/lesedi/internal/mookodi"
	"github.com/lesedi-io/lesedi/pkg/app"
	"github.com/lesedi-io/lesedi/pkg/log"
	"github.com/lesedi-io/lesedi/pkg/options"
)

type CameraServerOptions struct {
	CameraOptions   *mookodi.CameraOptions   `json:"ccd" mapstructure:"ccd"`
	PipelineOptions *mookodi.PipelineOptions `json:"pipeline" mapstructure:"pipeline"`
	StoreOptions    *options.StoreOptions    `json:"store" mapstructure:"store"`
	GrpcOptions     *options.GrpcOptions     `json:"grpc" mapstructure:"grpc"`
	HttpOptions     *options.HttpOptions     `json:"http" mapstructure:"http"`
	Log             *log.Options             `json:"log" mapstructure:"log"`
}

var _ app.NamedFlagSetOptions = (*CameraServerOptions)(nil)

func NewCameraServerOptions() *CameraServerOptions {
	return &CameraServerOptions{
		CameraOptions:   mookodi.NewCameraOptions(),
		PipelineOptions: mookodi.NewPipelineOptions(),
		StoreOptions:    options.NewStoreOptions("/data/mookodi"),
		GrpcOptions:     options.NewGrpcOptions(":9020"),
		HttpOptions:     options.NewHttpOptions(":9021"),
		Log:             log.NewOptions(),
	}
}

func (o *CameraServerOptions) Flags() cliflag.NamedFlagSets {
	fss := cliflag.NamedFlagSets{}
	o.CameraOptions.AddFlags(fss.FlagSet("camera"))
	o.PipelineOptions.AddFlags(fss.FlagSet("pipeline"))
	o.StoreOptions.AddFlags(fss.FlagSet("store"))
	o.GrpcOptions.AddFlags(fss.FlagSet("grpc"))
	o.HttpOptions.AddFlags(fss.FlagSet("http"))
	o.Log.AddFlags(fss.FlagSet("log"))
	return fss
}

func (o *CameraServerOptions) Complete() error {
	return nil
}

func (o *CameraServerOptions) Validate() error {
	errs := []error{}
	errs = append(errs, o.CameraOptions.Validate()...)
	errs = append(errs, o.PipelineOptions.Validate()...)
	errs = append(errs, o.StoreOptions.Validate()...)
	errs = append(errs, o.GrpcOptions.Validate()...)
	errs = append(errs, o.HttpOptions.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	return utilerrors.NewAggregate(errs)
}

func (o *CameraServerOptions) LogOptions() *log.Options { return o.Log }

func (o *CameraServerOptions) Config() (*mookodi.Config, error) {
	return &mookodi.Config{
		CameraOptions:   o.CameraOptions,
		PipelineOptions: o.PipelineOptions,
		StoreOptions:    o.StoreOptions,
		GrpcOptions:     o.GrpcOptions,
		HttpOptions:     o.HttpOptions,
	}, nil
}
