// Copyright 2026 The Lesedi Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package v1

import (
	"time"
)

// Location is the observatory site as reported by the telescope.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
}

// RotatorStatus is a point-in-time snapshot of one instrument rotator.
type RotatorStatus struct {
	LimitMin float64 `json:"limit_min"`
	LimitMax float64 `json:"limit_max"`

	Moving                      bool `json:"moving"`
	Tracking                    bool `json:"tracking"`
	Auto                        bool `json:"auto"`
	AtLimit                     bool `json:"at_limit"`
	CommsFaultServocommunicator bool `json:"comms_fault_servocommunicator"`
	CommsFaultServocontroller   bool `json:"comms_fault_servocontroller"`
	MovingByButtons             bool `json:"moving_by_buttons"`

	Angle            float64 `json:"angle"`
	ParallacticAngle float64 `json:"parallactic_angle"`
	ParallacticRate  float64 `json:"parallactic_rate"`
}

// SequenceError records why the last startup or shutdown sequence failed.
type SequenceError struct {
	Sequence string    `json:"sequence"`
	Step     string    `json:"step,omitempty"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
}

// Status aggregates the coordinator and every subsystem.
type Status struct {
	Stopped   bool           `json:"stopped"`
	State     State          `json:"state"`
	LastError *SequenceError `json:"last_error,omitempty"`

	Airmass    float64 `json:"airmass"`
	JulianDate float64 `json:"julian_date"`
	Focus      float64 `json:"focus"`

	CoversMoving bool `json:"covers_moving"`
	CoversOpen   bool `json:"covers_open"`

	DomeAngle         float64 `json:"dome_angle"`
	DomeRemote        bool    `json:"dome_remote"`
	DomeTracking      bool    `json:"dome_tracking"`
	DomeShutterMoving bool    `json:"dome_shutter_moving"`
	DomeShutterOpen   bool    `json:"dome_shutter_open"`
	DomeMoving        bool    `json:"dome_moving"`
	DomeTCSLockout    bool    `json:"dome_tcs_lockout"`
	DomeLightsOn      bool    `json:"dome_lights_on"`
	SlewLightsOn      bool    `json:"slew_lights_on"`

	SecondaryMirrorAuto   bool `json:"secondary_mirror_auto"`
	SecondaryMirrorMoving bool `json:"secondary_mirror_moving"`
	TertiaryMirrorAuto    bool `json:"tertiary_mirror_auto"`
	TertiaryMirrorMoving  bool `json:"tertiary_mirror_moving"`

	Rotators   map[Instrument]RotatorStatus `json:"rotators"`
	Instrument Instrument                   `json:"instrument"`

	TelescopeAuto         bool      `json:"telescope_auto"`
	TelescopeParked       bool      `json:"telescope_parked"`
	TelescopeAlt          float64   `json:"telescope_alt"`
	TelescopeAz           float64   `json:"telescope_az"`
	TelescopeRA           float64   `json:"telescope_ra"`
	TelescopeDec          float64   `json:"telescope_dec"`
	TelescopeSlewing      bool      `json:"telescope_slewing"`
	TelescopeTracking     bool      `json:"telescope_tracking"`
	TelescopeTrackingType TrackType `json:"telescope_tracking_type"`

	Location Location `json:"location"`
}

// RotateDomeRequest moves the dome to an azimuth in degrees.
type RotateDomeRequest struct {
	Azimuth float64 `json:"azimuth"`
}

func (r *RotateDomeRequest) Validate() error {
	return checkRange("azimuth", r.Azimuth, 0, 360)
}

// SetFocusRequest moves the secondary mirror, in inches.
type SetFocusRequest struct {
	Inches float64 `json:"inches"`
}

func (r *SetFocusRequest) Validate() error { return nil }

// SelectInstrumentRequest moves the tertiary mirror to an instrument port.
type SelectInstrumentRequest struct {
	Instrument Instrument `json:"instrument"`
}

func (r *SelectInstrumentRequest) Validate() error {
	if r.Instrument != InstrumentWINCAM && r.Instrument != InstrumentSHOC {
		return InvalidArgumentf("Unknown instrument: %s", r.Instrument)
	}
	return nil
}

// GotoAltAzRequest slews to horizontal coordinates in degrees.
type GotoAltAzRequest struct {
	Alt float64 `json:"alt"`
	Az  float64 `json:"az"`
}

func (r *GotoAltAzRequest) Validate() error {
	if err := checkRange("altitude", r.Alt, 0, 90); err != nil {
		return err
	}
	return checkRange("azimuth", r.Az, 0, 360)
}

// GotoRaDecRequest slews to J2000 equatorial coordinates. RA is in hours and
// Dec in degrees.
type GotoRaDecRequest struct {
	RA  float64 `json:"ra"`
	Dec float64 `json:"dec"`
}

func (r *GotoRaDecRequest) Validate() error {
	if err := checkRange("right ascension", r.RA, 0, 24); err != nil {
		return err
	}
	return checkRange("declination", r.Dec, -90, 90)
}

// SetTrackingModeRequest configures telescope tracking. Rates apply to
// non-sidereal tracking only.
type SetTrackingModeRequest struct {
	Tracking  bool      `json:"tracking"`
	TrackType TrackType `json:"track_type"`
	RARate    float64   `json:"ra_rate"`
	DecRate   float64   `json:"dec_rate"`
}

func (r *SetTrackingModeRequest) Validate() error {
	if r.TrackType != TrackSidereal && r.TrackType != TrackNonSidereal {
		return InvalidArgumentf("Unknown track type: %d", int32(r.TrackType))
	}
	return nil
}

// MoveRequest jogs the telescope by arcsec in a direction.
type MoveRequest struct {
	Direction Direction `json:"direction"`
	Arcsec    float64   `json:"arcsec"`
}

func (r *MoveRequest) Validate() error {
	if _, err := r.Direction.Letter(); err != nil {
		return err
	}
	if r.Arcsec <= 0 {
		return InvalidArgumentf("arcsec must be positive, got %g", r.Arcsec)
	}
	return nil
}

func checkRange(name string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return InvalidArgumentf("%s %g out of range %g .. %g", name, v, lo, hi)
	}
	return nil
}
