package pipeline

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Mode selects a calibration set.
type Mode string

const (
	ModeImage    Mode = "image"
	ModeSpectrum Mode = "spectrum"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeImage, ModeSpectrum:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown reduction mode %q, want %q or %q", s, ModeImage, ModeSpectrum)
}

// CalibrationOptions name the reference frames of one mode in the frame
// store.
type CalibrationOptions struct {
	Bias string `json:"bias" mapstructure:"bias"`
	Dark string `json:"dark" mapstructure:"dark"`
	Flat string `json:"flat" mapstructure:"flat"`
}

func (o *CalibrationOptions) configured() bool {
	return o.Bias != "" || o.Dark != "" || o.Flat != ""
}

// Options configure the reduction pipeline.
type Options struct {
	Image    *CalibrationOptions `json:"image" mapstructure:"image"`
	Spectrum *CalibrationOptions `json:"spectrum" mapstructure:"spectrum"`
}

func NewOptions() *Options {
	return &Options{
		Image:    &CalibrationOptions{},
		Spectrum: &CalibrationOptions{},
	}
}

func (o *Options) modes() map[Mode]*CalibrationOptions {
	return map[Mode]*CalibrationOptions{ModeImage: o.Image, ModeSpectrum: o.Spectrum}
}

// Validate requires every configured mode to name all three frames.
func (o *Options) Validate() []error {
	var errs []error
	for mode, c := range o.modes() {
		if !c.configured() {
			continue
		}
		if c.Bias == "" || c.Dark == "" || c.Flat == "" {
			errs = append(errs, fmt.Errorf("--reduction.%s.{bias,dark,flat} must all be set", mode))
		}
	}
	return errs
}

func (o *Options) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	for mode, c := range o.modes() {
		p := fmt.Sprintf("reduction.%s.", mode)
		fs.StringVar(&c.Bias, flagName(p+"bias", prefixes...), c.Bias, fmt.Sprintf("Bias frame for %s reductions.", mode))
		fs.StringVar(&c.Dark, flagName(p+"dark", prefixes...), c.Dark, fmt.Sprintf("Bias-subtracted dark frame for %s reductions, with EXPOSURE set.", mode))
		fs.StringVar(&c.Flat, flagName(p+"flat", prefixes...), c.Flat, fmt.Sprintf("Normalised flat frame for %s reductions.", mode))
	}
}

func flagName(name string, prefixes ...string) string {
	for i := len(prefixes) - 1; i >= 0; i-- {
		name = prefixes[i] + "." + name
	}
	return name
}
