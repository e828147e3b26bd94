package options

import (
	"fmt"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/lesedi-io/lesedi/internal/sim"
	"github.com/lesedi-io/lesedi/pkg/app"
	"github.com/lesedi-io/lesedi/pkg/log"
)

// SimOptions locate the simulated controllers and the scenario they start in.
type SimOptions struct {
	Scenario string    `json:"scenario" mapstructure:"scenario"`
	Host     string    `json:"host" mapstructure:"host"`
	Ports    sim.Ports `json:"ports" mapstructure:"ports"`
	Log      *log.Options
}

var _ app.NamedFlagSetOptions = (*SimOptions)(nil)

func NewSimOptions() *SimOptions {
	return &SimOptions{
		Host: "127.0.0.1",
		Ports: sim.Ports{
			Telescope:    1956,
			RotatorLeft:  1958,
			RotatorRight: 1959,
			Focuser:      1961,
			Dome:         1963,
			Covers:       502,
		},
		Log: log.NewOptions(),
	}
}

func (o *SimOptions) Flags() cliflag.NamedFlagSets {
	fss := cliflag.NamedFlagSets{}
	fs := fss.FlagSet("simulator")
	fs.StringVar(&o.Scenario, "scenario", o.Scenario, "TOML file describing the initial device states.")
	fs.StringVar(&o.Host, "host", o.Host, "Address the simulators listen on.")
	for name, p := range o.ports() {
		fs.IntVar(p, name+".port", *p, fmt.Sprintf("TCP port of the %s simulator. 0 picks a free port.", name))
	}
	o.Log.AddFlags(fss.FlagSet("log"))
	return fss
}

func (o *SimOptions) ports() map[string]*int {
	return map[string]*int{
		"telescope":     &o.Ports.Telescope,
		"rotator-left":  &o.Ports.RotatorLeft,
		"rotator-right": &o.Ports.RotatorRight,
		"focuser":       &o.Ports.Focuser,
		"dome":          &o.Ports.Dome,
		"covers":        &o.Ports.Covers,
	}
}

func (o *SimOptions) Complete() error {
	return nil
}

func (o *SimOptions) Validate() error {
	errs := []error{}
	for name, p := range o.ports() {
		if *p < 0 || *p > 65535 {
			errs = append(errs, fmt.Errorf("--%s.port %d out of range", name, *p))
		}
	}
	errs = append(errs, o.Log.Validate()...)
	return utilerrors.NewAggregate(errs)
}

func (o *SimOptions) LogOptions() *log.Options { return o.Log }
