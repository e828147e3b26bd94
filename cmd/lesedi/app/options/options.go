package options

import (
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/lesedi-io/lesedi/internal/lesedi"
	"github.com/lesedi-io/lesedi/pkg/app"
	"github.com/lesedi-io/lesedi/pkg/log"
	"github.com/lesedi-io/lesedi/pkg/options"
)

type ServerOptions struct {
	HardwareOptions *lesedi.HardwareOptions `json:"hardware" mapstructure:"hardware"`
	SequenceOptions *lesedi.SequenceOptions `json:"sequence" mapstructure:"sequence"`
	GrpcOptions     *options.GrpcOptions    `json:"grpc" mapstructure:"grpc"`
	HttpOptions     *options.HttpOptions    `json:"http" mapstructure:"http"`
	MqttOptions     *options.MqttOptions    `json:"mqtt" mapstructure:"mqtt"`
	Log             *log.Options            `json:"log" mapstructure:"log"`
}

var _ app.NamedFlagSetOptions = (*ServerOptions)(nil)

func NewServerOptions() *ServerOptions {
	return &ServerOptions{
		HardwareOptions: lesedi.NewHardwareOptions(),
		SequenceOptions: lesedi.NewSequenceOptions(),
		GrpcOptions:     options.NewGrpcOptions(":9090"),
		HttpOptions:     options.NewHttpOptions(":9091"),
		MqttOptions:     options.NewMqttOptions(),
		Log:             log.NewOptions(),
	}
}

func (o *ServerOptions) Flags() cliflag.NamedFlagSets {
	fss := cliflag.NamedFlagSets{}
	o.HardwareOptions.AddFlags(fss.FlagSet("hardware"))
	o.SequenceOptions.AddFlags(fss.FlagSet("sequence"))
	o.GrpcOptions.AddFlags(fss.FlagSet("grpc"))
	o.HttpOptions.AddFlags(fss.FlagSet("http"))
	o.MqttOptions.AddFlags(fss.FlagSet("mqtt"))
	o.Log.AddFlags(fss.FlagSet("log"))
	return fss
}

func (o *ServerOptions) Complete() error {
	if o.MqttOptions.ClientID == "" {
		o.MqttOptions.ClientID = "lesedi"
	}
	return nil
}

func (o *ServerOptions) Validate() error {
	errs := []error{}
	errs = append(errs, o.HardwareOptions.Validate()...)
	errs = append(errs, o.SequenceOptions.Validate()...)
	errs = append(errs, o.GrpcOptions.Validate()...)
	errs = append(errs, o.HttpOptions.Validate()...)
	errs = append(errs, o.MqttOptions.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	return utilerrors.NewAggregate(errs)
}

func (o *ServerOptions) LogOptions() *log.Options { return o.Log }

func (o *ServerOptions) Config() (*lesedi.Config, error) {
	return &lesedi.Config{
		HardwareOptions: o.HardwareOptions,
		SequenceOptions: o.SequenceOptions,
		GrpcOptions:     o.GrpcOptions,
		HttpOptions:     o.HttpOptions,
		MqttOptions:     o.MqttOptions,
	}, nil
}
