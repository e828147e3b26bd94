package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestErrorStatusRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		is   error
	}{
		{"safety", Safetyf("Lockout engaged. Command not allowed."), codes.PermissionDenied, ErrSafety},
		{"domain", Domainf("Dome cannot be opened while not in remote mode."), codes.FailedPrecondition, ErrDomain},
		{"invalid", InvalidArgumentf("altitude 95 out of range 0 .. 90"), codes.InvalidArgument, ErrInvalidArgument},
		{"busy", Busyf("startup already in progress"), codes.Aborted, ErrBusy},
		{"wrapped domain", fmt.Errorf("focuser: %w", Domainf("Cannot set focus.")), codes.FailedPrecondition, ErrDomain},
		{"unclassified", errors.New("connection reset"), codes.Internal, ErrHardware},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ToStatus(tt.err)
			assert.Equal(t, tt.code, status.Code(st))

			back := FromStatus(st)
			assert.ErrorIs(t, back, tt.is)
			assert.Equal(t, tt.err.Error(), back.Error())
		})
	}
}

func TestFromStatusKeepsTransportCodes(t *testing.T) {
	err := status.Error(codes.Unavailable, "connection refused")
	assert.Equal(t, err, FromStatus(err))
	assert.Nil(t, FromStatus(nil))
	assert.Nil(t, ToStatus(nil))
}

func TestEnumText(t *testing.T) {
	i, err := ParseInstrument("shoc")
	require.NoError(t, err)
	assert.Equal(t, InstrumentSHOC, i)

	_, err = ParseInstrument("spup")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	d, err := ParseDirection("West")
	require.NoError(t, err)
	letter, err := d.Letter()
	require.NoError(t, err)
	assert.Equal(t, "W", letter)

	assert.Equal(t, "UNKNOWN(9)", State(9).String())
}

func TestStatusJSONUsesEnumNames(t *testing.T) {
	s := Status{
		State: StateReady,
		Rotators: map[Instrument]RotatorStatus{
			InstrumentWINCAM: {Angle: 90},
		},
		Instrument: InstrumentWINCAM,
	}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"state":"READY"`)
	assert.Contains(t, string(b), `"WINCAM":{`)

	var back Status
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, 90.0, back.Rotators[InstrumentWINCAM].Angle)
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name string
		req  interface{ Validate() error }
		ok   bool
	}{
		{"altaz ok", &GotoAltAzRequest{Alt: 45, Az: 180}, true},
		{"altitude high", &GotoAltAzRequest{Alt: 91, Az: 180}, false},
		{"azimuth negative", &GotoAltAzRequest{Alt: 45, Az: -1}, false},
		{"radec ok", &GotoRaDecRequest{RA: 12.5, Dec: -32}, true},
		{"dec low", &GotoRaDecRequest{RA: 1, Dec: -91}, false},
		{"dome azimuth", &RotateDomeRequest{Azimuth: 361}, false},
		{"no instrument", &SelectInstrumentRequest{}, false},
		{"shoc", &SelectInstrumentRequest{Instrument: InstrumentSHOC}, true},
		{"move", &MoveRequest{Direction: DirectionEast, Arcsec: 30}, true},
		{"move zero", &MoveRequest{Direction: DirectionEast}, false},
		{"move bad direction", &MoveRequest{Direction: Direction(7), Arcsec: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			}
		})
	}
}

func TestCodec(t *testing.T) {
	c := jsonCodec{}

	b, err := c.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
	require.NoError(t, c.Unmarshal([]byte(`{"unknown":1}`), &emptypb.Empty{}))

	b, err = c.Marshal(&MoveRequest{Direction: DirectionSouth, Arcsec: 5})
	require.NoError(t, err)

	var m MoveRequest
	require.NoError(t, c.Unmarshal(b, &m))
	assert.Equal(t, DirectionSouth, m.Direction)
}

func TestFitsCardValidate(t *testing.T) {
	assert.NoError(t, FloatCard("AIRMASS", 1.2, "The airmass (sec(z))").Validate())
	assert.Error(t, FitsHeaderCard{Keyword: "EXPOSURE", ValueType: FitsInteger, Value: "1.5"}.Validate())
	assert.Error(t, StringCard("TOOLONGKEY", "x", "").Validate())
}
