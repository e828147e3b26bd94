package sim

import (
	"fmt"
	"strconv"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/driver/focuser"
)

// Focuser simulates the secondary and tertiary mirror controller.
type Focuser struct {
	base
	status focuser.Status
}

var _ Device = (*Focuser)(nil)

func NewFocuser(sc FocuserScenario) *Focuser {
	f := &Focuser{}
	f.status.SecondaryMirrorPosition = sc.Position
	f.status.SecondaryMirrorAuto = sc.SecondaryAuto
	f.status.TertiaryMirrorAuto = sc.TertiaryAuto
	if inst, err := v1.ParseInstrument(sc.Instrument); err == nil {
		f.setFork(inst)
	}
	f.reject = sc.Reject
	return f
}

func (f *Focuser) Status() focuser.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *Focuser) setFork(inst v1.Instrument) {
	f.status.TertiaryMirrorLeftForkPosition = inst == v1.InstrumentWINCAM
	f.status.TertiaryMirrorRightForkPosition = inst == v1.InstrumentSHOC
}

var focuserAcks = map[string]string{
	"GoLeftTertiary":           "GoLeftTertiaryAccepted",
	"GoRightTertiary":          "GoRightTertiaryAccepted",
	"MoveFocuserTo":            "MoveFocuserAccepted",
	"DoAutoFocus":              "FocuserToAutoAccepted",
	"CancelAutoFocus":          "CancelAutoFocusAccepted",
	"ToAutoFocuser":            "ToAutoFocuserAccepted",
	"ToBlinkyFocuser":          "ToBlinkyFocuserAccepted",
	"ToAutoTertiary":           "ToAutoTertiaryAccepted",
	"ToBlinkyTertiary":         "ToBlinkyTertiaryAccepted",
	"RestartCommunicatorComms": "RestartCommunicatorCommsAccepted",
	"StopFocuser":              "StopFocuserAccepted",
	"MirrorCoverOpen":          "MirrorCoverOpenAccepted",
	"MirrorCoverClose":         "MirrorCoverCloseAccepted",
	"BaffleOpen":               "BaffleOpenAccepted",
	"BaffleClose":              "CloseBaffleAccepted",
	"MoveTertiaryTo":           "MoveTertiaryAccepted",
}

func (f *Focuser) Handle(command string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	verb, args := f.record(command)
	if f.failing(verb) {
		return "", false
	}

	message := focuserAcks[verb]
	if f.rejected(verb) {
		message = verb + "Rejected"
	} else {
		f.apply(verb, args)
	}

	s := f.status
	return fmt.Sprintf("%d;%v;%v;_%s", s.Word(), s.SecondaryMirrorPosition, s.TertiaryMirrorAngle, message), true
}

func (f *Focuser) apply(verb string, args []string) {
	s := &f.status
	switch verb {
	case "GoLeftTertiary":
		f.setFork(v1.InstrumentWINCAM)
	case "GoRightTertiary":
		f.setFork(v1.InstrumentSHOC)
	case "MoveFocuserTo":
		if len(args) == 1 {
			if v, err := strconv.ParseFloat(args[0], 64); err == nil {
				s.SecondaryMirrorPosition = v
			}
		}
	case "MoveTertiaryTo", "JogTertiary":
		if len(args) == 1 {
			if v, err := strconv.ParseFloat(args[0], 64); err == nil {
				if verb == "JogTertiary" {
					v += s.TertiaryMirrorAngle
				}
				s.TertiaryMirrorAngle = v
			}
		}
	case "DoAutoFocus":
		s.Autofocus = true
	case "CancelAutoFocus":
		s.Autofocus = false
	case "ToAutoFocuser":
		s.SecondaryMirrorAuto = true
	case "ToBlinkyFocuser":
		s.SecondaryMirrorAuto = false
	case "ToAutoTertiary":
		s.TertiaryMirrorAuto = true
	case "ToBlinkyTertiary":
		s.TertiaryMirrorAuto = false
	case "StopFocuser":
		s.SecondaryMirrorMoving = false
	}
}
