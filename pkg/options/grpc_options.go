package options

import (
	"time"

	"github.com/spf13/pflag"
)

var _ IOptions = (*GrpcOptions)(nil)

// GrpcOptions configure an insecure gRPC listener.
type GrpcOptions struct {
	// Network with server network.
	Network string `json:"network" mapstructure:"network"`

	// Address with server address.
	Addr string `json:"addr" mapstructure:"addr"`

	// Timeout bounds each unary call handled by the server.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

// NewGrpcOptions returns defaults for a listener on addr.
func NewGrpcOptions(addr string) *GrpcOptions {
	return &GrpcOptions{
		Network: "tcp",
		Addr:    addr,
		Timeout: 10 * time.Second,
	}
}

// Validate is used to parse and validate the parameters entered by the user at
// the command line when the program starts.
func (o *GrpcOptions) Validate() []error {
	var errors []error

	if err := ValidateAddress(o.Addr); err != nil {
		errors = append(errors, err)
	}

	return errors
}

// AddFlags adds the gRPC server flags to fs.
func (o *GrpcOptions) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.Network, flagName("grpc.network", prefixes...), o.Network, "Specify the network for the gRPC server.")
	fs.StringVar(&o.Addr, flagName("grpc.addr", prefixes...), o.Addr, "Specify the gRPC server bind address and port.")
	fs.DurationVar(&o.Timeout, flagName("grpc.timeout", prefixes...), o.Timeout, "Deadline applied to each incoming call.")
}
