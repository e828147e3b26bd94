package lesedi

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/lesedi/coordinator"
	"github.com/lesedi-io/lesedi/pkg/options"
)

var (
	_ options.IOptions = (*HardwareOptions)(nil)
	_ options.IOptions = (*SequenceOptions)(nil)
)

// Endpoint is the address of one subsystem controller.
type Endpoint struct {
	Host string `json:"host" mapstructure:"host"`
	Port int    `json:"port" mapstructure:"port"`
}

// HardwareOptions locate the subsystem controllers.
type HardwareOptions struct {
	Telescope    Endpoint `json:"telescope" mapstructure:"telescope"`
	RotatorLeft  Endpoint `json:"rotator-left" mapstructure:"rotator-left"`
	RotatorRight Endpoint `json:"rotator-right" mapstructure:"rotator-right"`
	Focuser      Endpoint `json:"focuser" mapstructure:"focuser"`
	Dome         Endpoint `json:"dome" mapstructure:"dome"`
	Covers       Endpoint `json:"covers" mapstructure:"covers"`

	// Timeout bounds each driver command.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`

	// Rotator limit files written by the servo communicator.
	RotatorLeftLimits  string `json:"rotator-left-limits" mapstructure:"rotator-left-limits"`
	RotatorRightLimits string `json:"rotator-right-limits" mapstructure:"rotator-right-limits"`
}

func NewHardwareOptions() *HardwareOptions {
	local := func(port int) Endpoint { return Endpoint{Host: "127.0.0.1", Port: port} }
	return &HardwareOptions{
		Telescope:          local(1956),
		RotatorLeft:        local(1958),
		RotatorRight:       local(1959),
		Focuser:            local(1961),
		Dome:               local(1963),
		Covers:             local(502),
		Timeout:            time.Second,
		RotatorLeftLimits:  "/usr/share/SiTech/ServoSCommunicator/RotatorCfgFileLeft.txt",
		RotatorRightLimits: "/usr/share/SiTech/ServoSCommunicator/RotatorCfgFileRight.txt",
	}
}

func (o *HardwareOptions) endpoints() map[string]*Endpoint {
	return map[string]*Endpoint{
		"telescope":     &o.Telescope,
		"rotator-left":  &o.RotatorLeft,
		"rotator-right": &o.RotatorRight,
		"focuser":       &o.Focuser,
		"dome":          &o.Dome,
		"covers":        &o.Covers,
	}
}

func (o *HardwareOptions) Validate() []error {
	var errs []error

	for name, e := range o.endpoints() {
		if e.Host == "" {
			errs = append(errs, fmt.Errorf("--%s.host must not be empty", name))
		}
		if e.Port <= 0 || e.Port > 65535 {
			errs = append(errs, fmt.Errorf("--%s.port %d out of range", name, e.Port))
		}
	}
	if o.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("--hardware.timeout must be positive"))
	}

	return errs
}

func (o *HardwareOptions) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	for name, e := range o.endpoints() {
		fs.StringVar(&e.Host, flagName(name+".host", prefixes...), e.Host, fmt.Sprintf("Host of the %s controller.", name))
		fs.IntVar(&e.Port, flagName(name+".port", prefixes...), e.Port, fmt.Sprintf("TCP port of the %s controller.", name))
	}
	fs.DurationVar(&o.Timeout, flagName("hardware.timeout", prefixes...), o.Timeout, "I/O timeout for each driver command.")
	fs.StringVar(&o.RotatorLeftLimits, flagName("rotator-left.limits", prefixes...), o.RotatorLeftLimits, "Limits file of the left rotator.")
	fs.StringVar(&o.RotatorRightLimits, flagName("rotator-right.limits", prefixes...), o.RotatorRightLimits, "Limits file of the right rotator.")
}

// SequenceOptions tune the startup and shutdown sequences.
type SequenceOptions struct {
	DomeOpenWait      time.Duration `json:"dome-open-wait" mapstructure:"dome-open-wait"`
	CoversCloseWait   time.Duration `json:"covers-close-wait" mapstructure:"covers-close-wait"`
	DomeCloseWait     time.Duration `json:"dome-close-wait" mapstructure:"dome-close-wait"`
	DefaultInstrument string        `json:"default-instrument" mapstructure:"default-instrument"`
}

func NewSequenceOptions() *SequenceOptions {
	d := coordinator.DefaultConfig()
	return &SequenceOptions{
		DomeOpenWait:      d.DomeOpenWait,
		CoversCloseWait:   d.CoversCloseWait,
		DomeCloseWait:     d.DomeCloseWait,
		DefaultInstrument: d.DefaultInstrument.String(),
	}
}

func (o *SequenceOptions) Validate() []error {
	var errs []error

	if o.DomeOpenWait < 0 || o.CoversCloseWait < 0 || o.DomeCloseWait < 0 {
		errs = append(errs, fmt.Errorf("sequence waits must not be negative"))
	}
	if _, err := o.instrument(); err != nil {
		errs = append(errs, err)
	}

	return errs
}

func (o *SequenceOptions) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.DurationVar(&o.DomeOpenWait, flagName("sequence.dome-open-wait", prefixes...), o.DomeOpenWait, "Pause after opening the dome shutters.")
	fs.DurationVar(&o.CoversCloseWait, flagName("sequence.covers-close-wait", prefixes...), o.CoversCloseWait, "Pause after closing the mirror covers.")
	fs.DurationVar(&o.DomeCloseWait, flagName("sequence.dome-close-wait", prefixes...), o.DomeCloseWait, "Pause after closing the dome shutters.")
	fs.StringVar(&o.DefaultInstrument, flagName("sequence.default-instrument", prefixes...), o.DefaultInstrument, "Instrument selected at the end of startup (WINCAM or SHOC).")
}

func (o *SequenceOptions) instrument() (v1.Instrument, error) {
	inst, err := v1.ParseInstrument(o.DefaultInstrument)
	if err != nil {
		return 0, err
	}
	if inst != v1.InstrumentWINCAM && inst != v1.InstrumentSHOC {
		return 0, fmt.Errorf("--sequence.default-instrument must be WINCAM or SHOC, got %q", o.DefaultInstrument)
	}
	return inst, nil
}

// Config converts the options to a coordinator config.
func (o *SequenceOptions) Config() (coordinator.Config, error) {
	inst, err := o.instrument()
	if err != nil {
		return coordinator.Config{}, err
	}
	return coordinator.Config{
		DomeOpenWait:      o.DomeOpenWait,
		CoversCloseWait:   o.CoversCloseWait,
		DomeCloseWait:     o.DomeCloseWait,
		DefaultInstrument: inst,
	}, nil
}

func flagName(name string, prefixes ...string) string {
	if len(prefixes) == 0 {
		return name
	}
	return strings.Join(append(prefixes, name), ".")
}
