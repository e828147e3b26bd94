package sim

import (
	"fmt"
	"strconv"

	"github.com/lesedi-io/lesedi/internal/driver/rotator"
)

// Rotator simulates one instrument rotator.
type Rotator struct {
	base
	status rotator.Status
}

var _ Device = (*Rotator)(nil)

func NewRotator(sc RotatorScenario) *Rotator {
	r := &Rotator{}
	r.status.Angle = sc.Angle
	r.status.Auto = sc.Auto
	r.status.Tracking = sc.Tracking
	return r
}

func (r *Rotator) Status() rotator.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

var rotatorAcks = map[string]string{
	"RotatorTrackingOn":  "TrackingOnAccepted",
	"RotatorTrackingOff": "TrackingOffAccepted",
	"RotatorToAuto":      "RotatorToAutoAccepted",
	"RotatorToBlinky":    "RotatorToBlinkyAccepted",
	"ParkRotator":        "ParkRotatorAccepted",
	"UnParkRotator":      "UnParkRotatorAccepted",
	"JogRotatorDegs":     "JogRotatorDegs",
	"MoveRotatorToAngle": "MoveRotatorToAngleAccepted",
	"SpinRotator":        "SpinRotatorAccepted",
}

func (r *Rotator) Handle(command string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	verb, args := r.record(command)
	if r.failing(verb) {
		return "", false
	}

	message := rotatorAcks[verb]
	if r.rejected(verb) {
		message = verb + "Rejected"
	} else {
		r.apply(verb, args)
	}

	s := r.status
	return fmt.Sprintf("%d;%v;%v;%v;_%s", s.Word(), s.Angle, s.ParallacticAngle, s.ParallacticRate, message), true
}

func (r *Rotator) apply(verb string, args []string) {
	s := &r.status
	var arg float64
	if len(args) == 1 {
		arg, _ = strconv.ParseFloat(args[0], 64)
	}
	switch verb {
	case "RotatorTrackingOn":
		s.Tracking = true
	case "RotatorTrackingOff":
		s.Tracking = false
	case "RotatorToAuto":
		s.Auto = true
	case "RotatorToBlinky":
		s.Auto = false
	case "ParkRotator", "UnParkRotator":
		s.Angle = 90
	case "JogRotatorDegs":
		s.Angle += arg
	case "MoveRotatorToAngle":
		s.Angle = arg
	case "MoveRotatorToParallacticAngle":
		s.Angle = s.ParallacticAngle
	}
}
