package options

import (
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/lesedi-io/lesedi/internal/pipeline"
	"github.com/lesedi-io/lesedi/pkg/app"
	"github.com/lesedi-io/lesedi/pkg/log"
	"github.com/lesedi-io/lesedi/pkg/options"
)

type PipelineOptions struct {
	StoreOptions *options.StoreOptions `json:"store" mapstructure:"store"`
	Reduction    *pipeline.Options     `json:"reduction" mapstructure:"reduction"`
	Log          *log.Options          `json:"log" mapstructure:"log"`
}

var _ app.NamedFlagSetOptions = (*PipelineOptions)(nil)

func NewPipelineOptions() *PipelineOptions {
	return &PipelineOptions{
		StoreOptions: options.NewStoreOptions("/data/mookodi"),
		Reduction:    pipeline.NewOptions(),
		Log:          log.NewOptions(),
	}
}

func (o *PipelineOptions) Flags() cliflag.NamedFlagSets {
	fss := cliflag.NamedFlagSets{}
	o.Reduction.AddFlags(fss.FlagSet("reduction"))
	o.StoreOptions.AddFlags(fss.FlagSet("store"))
	o.Log.AddFlags(fss.FlagSet("log"))
	return fss
}

func (o *PipelineOptions) Complete() error {
	return nil
}

func (o *PipelineOptions) Validate() error {
	errs := []error{}
	errs = append(errs, o.Reduction.Validate()...)
	errs = append(errs, o.StoreOptions.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	return utilerrors.NewAggregate(errs)
}

func (o *PipelineOptions) LogOptions() *log.Options { return o.Log }
