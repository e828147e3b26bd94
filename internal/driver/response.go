package driver

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Semicolon separates reply parameters on most subsystems.
	Semicolon = ";"
	// Space separates reply parameters on the dome.
	Space = " "
)

// Response is a parsed reply of the form "p1;p2;...;_message".
type Response struct {
	Raw     string
	Params  []string
	Message string
}

// ParseResponse splits a reply into its parameters and trailing message.
func ParseResponse(reply, sep string) (*Response, error) {
	reply = strings.TrimSpace(reply)
	params, message, ok := strings.Cut(reply, "_")
	if !ok {
		return nil, &ProtocolError{Reply: reply, Reason: "missing message marker"}
	}

	params = strings.Trim(params, ";")
	var fields []string
	switch {
	case params == "":
	case sep == Space:
		fields = strings.Fields(params)
	default:
		fields = strings.Split(params, sep)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return &Response{Raw: reply, Params: fields, Message: message}, nil
}

// Expect fails unless the reply carries exactly n parameters.
func (r *Response) Expect(n int) error {
	if len(r.Params) != n {
		return &ProtocolError{Reply: r.Raw, Reason: fmt.Sprintf("want %d parameters, got %d", n, len(r.Params))}
	}
	return nil
}

// Float parses parameter i as a float.
func (r *Response) Float(i int) (float64, error) {
	if i >= len(r.Params) {
		return 0, &ProtocolError{Reply: r.Raw, Reason: fmt.Sprintf("no parameter %d", i)}
	}
	v, err := strconv.ParseFloat(r.Params[i], 64)
	if err != nil {
		return 0, &ProtocolError{Reply: r.Raw, Reason: err.Error()}
	}
	return v, nil
}

// Uint parses parameter i as an unsigned integer.
func (r *Response) Uint(i int) (uint64, error) {
	if i >= len(r.Params) {
		return 0, &ProtocolError{Reply: r.Raw, Reason: fmt.Sprintf("no parameter %d", i)}
	}
	v, err := strconv.ParseUint(r.Params[i], 10, 64)
	if err != nil {
		return 0, &ProtocolError{Reply: r.Raw, Reason: err.Error()}
	}
	return v, nil
}

// Floats parses every parameter from index from onwards.
func (r *Response) Floats(from int) ([]float64, error) {
	out := make([]float64, 0, len(r.Params)-from)
	for i := from; i < len(r.Params); i++ {
		v, err := r.Float(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Line issues commands over an Executor and parses the replies with the
// subsystem's separator.
type Line struct {
	exec      Executor
	subsystem string
	sep       string
}

func NewLine(exec Executor, subsystem, sep string) *Line {
	return &Line{exec: exec, subsystem: subsystem, sep: sep}
}

// Exec sends command and parses the reply without checking its message.
func (l *Line) Exec(ctx context.Context, command string) (*Response, error) {
	reply, err := l.exec.Execute(ctx, command)
	if err != nil {
		return nil, err
	}
	return ParseResponse(reply, l.sep)
}

// Expect sends command and requires the reply message to equal ack. Any other
// message is reported as a CommandError carrying failure.
func (l *Line) Expect(ctx context.Context, command, ack, failure string) (*Response, error) {
	resp, err := l.Exec(ctx, command)
	if err != nil {
		return nil, err
	}
	if resp.Message != ack {
		return nil, &CommandError{Subsystem: l.subsystem, Command: command, Reply: resp.Raw, Message: failure}
	}
	return resp, nil
}

// Close releases the underlying executor.
func (l *Line) Close() error {
	return l.exec.Close()
}
