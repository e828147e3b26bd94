package sim

import (
	"fmt"
	"strconv"

	"github.com/lesedi-io/lesedi/internal/driver/dome"
)

// Dome simulates the dome controller. Motion completes instantly.
type Dome struct {
	base
	status dome.Status
}

var _ Device = (*Dome)(nil)

func NewDome(sc DomeScenario) *Dome {
	d := &Dome{}
	d.status.Position = sc.Azimuth
	d.status.Remote = sc.Remote
	d.status.ShutterOpened = sc.ShutterOpen
	d.status.ShutterClosed = !sc.ShutterOpen
	d.status.TCSLockedOut = sc.TCSLockedOut
	d.status.IsRaining = sc.Raining
	d.status.Power = true
	d.fail = sc.Fail
	return d
}

// Status returns a copy of the simulated state.
func (d *Dome) Status() dome.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// SetLockout sets or clears the TCS lockout, as the dome operator panel does.
func (d *Dome) SetLockout(locked bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status.TCSLockedOut = locked
}

func (d *Dome) Handle(command string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	verb, args := d.record(command)
	if d.failing(verb) {
		return "", false
	}

	s := &d.status
	switch verb {
	case "ToRemoteControl":
		s.Remote = true
	case "MoveDomeTo":
		if len(args) == 1 {
			if az, err := strconv.ParseFloat(args[0], 64); err == nil {
				s.Position = az
			}
		}
	case "FollowTelescopeStart":
		s.Following = true
	case "FollowTelescopeStop":
		s.Following = false
	case "OpenShutters":
		s.ShutterClosed, s.ShutterOpened = false, true
	case "CloseShutters":
		s.ShutterClosed, s.ShutterOpened = true, false
	case "DomeLightsOn":
		s.DomeLightsOn = true
	case "DomeLightsOff":
		s.DomeLightsOn = false
	case "SlewLightsOn":
		s.SlewLightsOn = true
	case "SlewLightsOff":
		s.SlewLightsOn = false
	case "PowerMotorsOn":
		s.Power = true
	case "PowerMotorsOff":
		s.Power = false
	case "GoParkAndClose":
		s.ShutterClosed, s.ShutterOpened = true, false
		s.Position = 270
	case "EmergencyStop":
		s.Following = false
		s.Moving = false
		s.ShutterMoving = false
	}

	status0, status1, drive := s.Split()
	return fmt.Sprintf("%v %d %d %d;_", s.Position*10, status0, status1, drive), true
}
