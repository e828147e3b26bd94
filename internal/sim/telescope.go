package sim

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"k8s.io/utils/clock"

	"github.com/lesedi-io/lesedi/internal/driver/telescope"
)

const (
	unixEpochJD = 2440587.5
	j2000JD     = 2451545.0
)

type coords struct {
	ra, dec, alt, az float64
}

// Telescope simulates the SiTech mount. Slews complete instantly.
type Telescope struct {
	base
	clock clock.PassiveClock

	status      telescope.Status
	destination coords
	raRate      float64
	decRate     float64
}

var _ Device = (*Telescope)(nil)

func NewTelescope(sc TelescopeScenario, clk clock.PassiveClock) *Telescope {
	if clk == nil {
		clk = clock.RealClock{}
	}
	t := &Telescope{clock: clk}
	t.status.Initialized = true
	t.status.Parked = sc.Parked
	t.status.Manual = sc.Manual
	t.status.Alt = sc.Alt
	t.status.Az = sc.Az
	t.status.Location.Latitude = sc.Latitude
	t.status.Location.Longitude = sc.Longitude
	t.status.Location.Elevation = sc.Elevation
	t.fail = sc.Fail
	return t
}

func (t *Telescope) Status() telescope.Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *Telescope) Handle(command string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	verb, args := t.record(command)
	if t.failing(verb) {
		return "", false
	}

	s := &t.status
	f := floats(args)
	switch verb {
	case "Abort":
		s.Slewing = false
		s.Tracking = false
	case "Park":
		s.Alt, s.Az = 50, 90
		s.Parked = true
		s.Tracking = false
	case "UnPark":
		s.Parked = false
	case "GoToAltAz":
		if s.Parked || s.Manual {
			return t.reply("Error, " + t.refusal()), true
		}
		if len(f) == 2 {
			s.Az, s.Alt = f[0], f[1]
			t.destination = coords{alt: s.Alt, az: s.Az}
		}
	case "GoTo":
		if s.Parked || s.Manual {
			return t.reply("Error, " + t.refusal()), true
		}
		if len(f) >= 2 {
			s.RA, s.Dec = f[0], f[1]
			t.destination = coords{ra: s.RA, dec: s.Dec, alt: s.Alt, az: s.Az}
			s.Tracking = true
		}
	case "SetTrackMode":
		if len(f) == 4 {
			s.Tracking = f[0] == 1
			s.NonSiderealTracking = f[1] == 1
			t.raRate, t.decRate = f[2], f[3]
		}
	case "SyncToAltAz":
		if len(f) == 2 {
			s.Az, s.Alt = f[0], f[1]
		}
	case "Sync":
		if len(f) >= 2 {
			s.RA, s.Dec = f[0], f[1]
		}
	case "MotorsToBlinky":
		s.Manual = true
	case "MotorsToAuto":
		s.Manual = false
	case "JogArcSeconds":
		if len(args) == 2 {
			arcsec, _ := strconv.ParseFloat(args[1], 64)
			switch args[0] {
			case "N":
				s.Dec += arcsec / 3600
			case "S":
				s.Dec -= arcsec / 3600
			case "E":
				s.RA += arcsec / 3600 / 15
			case "W":
				s.RA -= arcsec / 3600 / 15
			}
		}
	case "SiteLocations":
		l := s.Location
		return fmt.Sprintf("%v;%v;%v;_SiteLocations", l.Latitude, l.Longitude, l.Elevation), true
	case "ReadScopeDestination":
		return t.format(t.destination, ""), true
	}
	return t.reply(""), true
}

func (t *Telescope) refusal() string {
	if t.status.Parked {
		return "scope is parked"
	}
	return "scope is in blinky mode"
}

func (t *Telescope) reply(message string) string {
	s := t.status
	return t.format(coords{ra: s.RA, dec: s.Dec, alt: s.Alt, az: s.Az}, message)
}

func (t *Telescope) format(c coords, message string) string {
	now := t.clock.Now().UTC()
	jd := float64(now.UnixNano())/float64(24*time.Hour) + unixEpochJD
	lst := math.Mod(18.697374558+24.06570982441908*(jd-j2000JD)+t.status.Location.Longitude/15, 24)
	if lst < 0 {
		lst += 24
	}
	hours := float64(now.Hour()) + float64(now.Minute())/60 + float64(now.Second())/3600
	airmass := 0.0
	if c.alt > 0 {
		airmass = 1 / math.Sin(c.alt*math.Pi/180)
	}
	return fmt.Sprintf("%d;%v;%v;%v;%v;%v;%v;%v;%v;%v;%v;_%s",
		t.status.Word(), c.ra, c.dec, c.alt, c.az,
		t.status.SecondaryAxisAngle, t.status.PrimaryAxisAngle,
		lst, jd, hours, airmass, message)
}

// floats parses every argument that is a number and skips the rest.
func floats(args []string) []float64 {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		if v, err := strconv.ParseFloat(a, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}
