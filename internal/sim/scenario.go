package sim

import (
	"fmt"

	"github.com/BurntSushi/toml"

	v1 "github.com/lesedi-io/lesedi/api/v1"
)

// Scenario is the initial state of every simulated device.
//
//	[dome]
//	remote = true
//	tcs_locked_out = false
//
//	[focuser]
//	instrument = "SHOC"
type Scenario struct {
	Dome      DomeScenario      `toml:"dome"`
	Telescope TelescopeScenario `toml:"telescope"`
	Focuser   FocuserScenario   `toml:"focuser"`
	Rotators  RotatorsScenario  `toml:"rotators"`
	Covers    CoversScenario    `toml:"covers"`
}

type DomeScenario struct {
	Azimuth      float64 `toml:"azimuth"`
	Remote       bool    `toml:"remote"`
	ShutterOpen  bool    `toml:"shutter_open"`
	TCSLockedOut bool    `toml:"tcs_locked_out"`
	Raining      bool    `toml:"raining"`
	// Fail lists commands on which the controller drops the connection.
	Fail []string `toml:"fail"`
}

type TelescopeScenario struct {
	Parked    bool     `toml:"parked"`
	Manual    bool     `toml:"manual"`
	Alt       float64  `toml:"alt"`
	Az        float64  `toml:"az"`
	Latitude  float64  `toml:"latitude"`
	Longitude float64  `toml:"longitude"`
	Elevation float64  `toml:"elevation"`
	Fail      []string `toml:"fail"`
}

type FocuserScenario struct {
	Position      float64 `toml:"position"`
	SecondaryAuto bool    `toml:"secondary_auto"`
	TertiaryAuto  bool    `toml:"tertiary_auto"`
	Instrument    string  `toml:"instrument"`
	// Reject lists commands answered without their acknowledgement.
	Reject []string `toml:"reject"`
}

type RotatorsScenario struct {
	Left  RotatorScenario `toml:"left"`
	Right RotatorScenario `toml:"right"`
}

type RotatorScenario struct {
	Angle    float64 `toml:"angle"`
	Auto     bool    `toml:"auto"`
	Tracking bool    `toml:"tracking"`
}

type CoversScenario struct {
	Open bool `toml:"open"`
}

// DefaultScenario is an observatory at rest: dome closed under remote
// control, telescope parked, covers closed.
func DefaultScenario() *Scenario {
	return &Scenario{
		Dome: DomeScenario{Azimuth: 270, Remote: true},
		Telescope: TelescopeScenario{
			Parked:    true,
			Alt:       50,
			Az:        90,
			Latitude:  -32.3798,
			Longitude: 20.8107,
			Elevation: 1822,
		},
		Focuser: FocuserScenario{SecondaryAuto: true, TertiaryAuto: false},
		Rotators: RotatorsScenario{
			Left:  RotatorScenario{Angle: 90},
			Right: RotatorScenario{Angle: 90},
		},
	}
}

// LoadScenario reads a TOML scenario file over the defaults.
func LoadScenario(path string) (*Scenario, error) {
	s := DefaultScenario()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("scenario %s: unknown keys %v", path, undecoded)
	}
	if s.Focuser.Instrument != "" {
		if _, err := v1.ParseInstrument(s.Focuser.Instrument); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", path, err)
		}
	}
	return s, nil
}
