package mookodi

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/lesedi-io/lesedi/internal/camera"
	"github.com/lesedi-io/lesedi/internal/pipeline"
	"github.com/lesedi-io/lesedi/pkg/options"
)

var (
	_ options.IOptions = (*CameraOptions)(nil)
	_ options.IOptions = (*PipelineOptions)(nil)
)

// CameraOptions describe the emulated detector.
type CameraOptions struct {
	NCols             int32   `json:"ncols" mapstructure:"ncols"`
	NRows             int32   `json:"nrows" mapstructure:"nrows"`
	TargetTemperature float64 `json:"target-temperature" mapstructure:"target-temperature"`
	Instrument        string  `json:"instrument" mapstructure:"instrument"`
}

func NewCameraOptions() *CameraOptions {
	d := camera.DefaultConfig()
	return &CameraOptions{
		NCols:             d.NCols,
		NRows:             d.NRows,
		TargetTemperature: d.TargetTemperature,
		Instrument:        d.Instrument,
	}
}

func (o *CameraOptions) Validate() []error {
	var errs []error
	if o.NCols < 2 || o.NRows < 2 {
		errs = append(errs, fmt.Errorf("--ccd.ncols and --ccd.nrows must be at least 2, got %dx%d", o.NCols, o.NRows))
	}
	if o.Instrument == "" {
		errs = append(errs, fmt.Errorf("--instrument must not be empty"))
	}
	return errs
}

func (o *CameraOptions) AddFlags(fs *pflag.FlagSet, _ ...string) {
	fs.Int32Var(&o.NCols, "ccd.ncols", o.NCols, "Detector columns.")
	fs.Int32Var(&o.NRows, "ccd.nrows", o.NRows, "Detector rows.")
	fs.Float64Var(&o.TargetTemperature, "ccd.target_temperature", o.TargetTemperature, "CCD temperature reached by cool down, in degrees Celsius.")
	fs.StringVar(&o.Instrument, "instrument", o.Instrument, "Instrument code used as the filename prefix.")
}

func (o *CameraOptions) Config() camera.Config {
	return camera.Config{
		NCols:             o.NCols,
		NRows:             o.NRows,
		TargetTemperature: o.TargetTemperature,
		Instrument:        o.Instrument,
	}
}

// PipelineOptions turn on reduction of every saved exposure.
type PipelineOptions struct {
	Enabled   bool              `json:"enabled" mapstructure:"enabled"`
	Mode      string            `json:"mode" mapstructure:"mode"`
	Reduction *pipeline.Options `json:"reduction" mapstructure:"reduction"`
}

func NewPipelineOptions() *PipelineOptions {
	return &PipelineOptions{
		Mode:      string(pipeline.ModeImage),
		Reduction: pipeline.NewOptions(),
	}
}

func (o *PipelineOptions) Validate() []error {
	errs := o.Reduction.Validate()
	if !o.Enabled {
		return errs
	}
	mode, err := pipeline.ParseMode(o.Mode)
	if err != nil {
		return append(errs, err)
	}
	c := o.Reduction.Image
	if mode == pipeline.ModeSpectrum {
		c = o.Reduction.Spectrum
	}
	if c.Bias == "" {
		errs = append(errs, fmt.Errorf("--pipeline.enabled needs --pipeline.reduction.%s.{bias,dark,flat}", mode))
	}
	return errs
}

func (o *PipelineOptions) AddFlags(fs *pflag.FlagSet, _ ...string) {
	fs.BoolVar(&o.Enabled, "pipeline.enabled", o.Enabled, "Reduce every saved exposure.")
	fs.StringVar(&o.Mode, "pipeline.mode", o.Mode, "Calibration set used for reductions (image or spectrum).")
	o.Reduction.AddFlags(fs, "pipeline")
}
