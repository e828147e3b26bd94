package driver

import (
	"fmt"

	v1 "github.com/lesedi-io/lesedi/api/v1"
)

// CommandError reports that a subsystem answered but refused the command.
type CommandError struct {
	Subsystem string
	Command   string
	Reply     string
	Message   string
}

func (e *CommandError) Error() string {
	return e.Message
}

// Unwrap classifies a refusal as a domain error.
func (e *CommandError) Unwrap() error {
	return v1.ErrDomain
}

// IOError reports that the subsystem could not be reached or the exchange
// was cut short.
type IOError struct {
	Subsystem string
	Command   string
	Err       error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Subsystem, e.Command, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{e.Err, v1.ErrHardware}
}

// ProtocolError reports a reply that does not follow the line grammar.
type ProtocolError struct {
	Reply  string
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("malformed reply %q: %s", e.Reply, e.Reason)
}

func (e *ProtocolError) Unwrap() error {
	return v1.ErrHardware
}
