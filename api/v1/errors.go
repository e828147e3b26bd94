package v1

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code classifies service errors.
type Code int

const (
	CodeUnknown Code = iota
	// CodeSafety means the interlock or the dome lockout blocked the command.
	CodeSafety
	// CodeDomain means a subsystem refused the command or a precondition failed.
	CodeDomain
	// CodeInvalidArgument means a parameter was out of range.
	CodeInvalidArgument
	// CodeBusy means the coordinator cannot accept the transition right now.
	CodeBusy
	// CodeHardware means a subsystem could not be reached or answered garbage.
	CodeHardware
)

func (c Code) String() string {
	switch c {
	case CodeSafety:
		return "safety violation"
	case CodeDomain:
		return "domain error"
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeBusy:
		return "busy"
	case CodeHardware:
		return "hardware error"
	}
	return "unknown"
}

var grpcCodes = map[Code]codes.Code{
	CodeSafety:          codes.PermissionDenied,
	CodeDomain:          codes.FailedPrecondition,
	CodeInvalidArgument: codes.InvalidArgument,
	CodeBusy:            codes.Aborted,
	CodeHardware:        codes.Internal,
}

// Error is a classified service error. Two errors match under errors.Is when
// their codes are equal, so the exported sentinels can be used as targets.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrSafety          = &Error{Code: CodeSafety}
	ErrDomain          = &Error{Code: CodeDomain}
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument}
	ErrBusy            = &Error{Code: CodeBusy}
	ErrHardware        = &Error{Code: CodeHardware}
)

func newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Safetyf(format string, args ...any) *Error { return newf(CodeSafety, format, args...) }
func Domainf(format string, args ...any) *Error { return newf(CodeDomain, format, args...) }
func Busyf(format string, args ...any) *Error   { return newf(CodeBusy, format, args...) }

func InvalidArgumentf(format string, args ...any) *Error {
	return newf(CodeInvalidArgument, format, args...)
}

// ToStatus converts err into a gRPC status error. The code comes from the
// first *Error in the chain and the message from the full error text.
// Unclassified errors become Internal.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}

	var e *Error
	if errors.As(err, &e) {
		if c, ok := grpcCodes[e.Code]; ok {
			return status.Error(c, err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}

// FromStatus turns a gRPC status error back into an *Error when its code is
// one the services produce. Transport codes such as Unavailable are returned
// unchanged.
func FromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return err
	}
	for code, gc := range grpcCodes {
		if st.Code() == gc {
			return &Error{Code: code, Message: st.Message()}
		}
	}
	return err
}
