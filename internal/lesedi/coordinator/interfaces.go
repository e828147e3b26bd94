package coordinator

//go:generate mockgen -destination=mock_hardware_test.go -package=coordinator -source=interfaces.go

import (
	"context"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/driver/covers"
	"github.com/lesedi-io/lesedi/internal/driver/dome"
	"github.com/lesedi-io/lesedi/internal/driver/focuser"
	"github.com/lesedi-io/lesedi/internal/driver/rotator"
	"github.com/lesedi-io/lesedi/internal/driver/telescope"
)

// Dome is the subset of the dome driver the coordinator uses.
type Dome interface {
	Status(ctx context.Context) (*dome.Status, error)
	EmergencyStop(ctx context.Context) error
	RemoteControlOn(ctx context.Context) error
	FollowTelescopeStart(ctx context.Context) error
	FollowTelescopeStop(ctx context.Context) error
	Park(ctx context.Context) error
	Open(ctx context.Context) error
	Close(ctx context.Context) error
	Rotate(ctx context.Context, azimuth float64) error
	LightsOn(ctx context.Context) error
	LightsOff(ctx context.Context) error
	SlewLightsOn(ctx context.Context) error
	SlewLightsOff(ctx context.Context) error
}

type Telescope interface {
	Status(ctx context.Context) (*telescope.Status, error)
	Park(ctx context.Context) error
	Unpark(ctx context.Context) error
	Abort(ctx context.Context) error
	MotorsToAuto(ctx context.Context) error
	MotorsToManual(ctx context.Context) error
	GotoAltAz(ctx context.Context, alt, az float64) error
	GotoRaDec(ctx context.Context, ra, dec float64) error
	SetTrackMode(ctx context.Context, tracking, customRates bool, raRate, decRate float64) error
	Jog(ctx context.Context, direction string, arcsec float64) error
}

type Focuser interface {
	Status(ctx context.Context) (*focuser.Status, error)
	SelectInstrument(ctx context.Context, instrument v1.Instrument) error
	SecondaryMoveTo(ctx context.Context, inches float64) error
	SecondaryStop(ctx context.Context) error
	SecondaryToAuto(ctx context.Context) error
	SecondaryToManual(ctx context.Context) error
	TertiaryToAuto(ctx context.Context) error
	TertiaryToManual(ctx context.Context) error
}

type Rotator interface {
	Status(ctx context.Context) (*rotator.Status, error)
	ToAuto(ctx context.Context) error
	ToManual(ctx context.Context) error
	TrackingOn(ctx context.Context) error
	TrackingOff(ctx context.Context) error
	Park(ctx context.Context) error
}

type Covers interface {
	Status(ctx context.Context) (*covers.Status, error)
	OpenCovers(ctx context.Context) error
	CloseCovers(ctx context.Context) error
}

// EventSink receives coordinator events. Implementations must not block.
type EventSink interface {
	PublishEvent(e v1.Event)
}
